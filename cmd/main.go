package main

import (
	"context"
	"log"

	"foodietrail/config"
	"foodietrail/controllers"
	"foodietrail/routes"
	"foodietrail/services"
	"foodietrail/utils"

	"github.com/aws/aws-sdk-go-v2/service/rekognition"
)

func main() {
	cfg := config.Load()
	ctx := context.Background()

	status, err := config.InitDB(cfg)
	if err != nil {
		log.Fatalf("Database: %v", err)
	}

	var photos services.PhotoStore = services.InlinePhotoStore{}
	if cfg.S3Bucket != "" {
		s3Client, err := utils.NewS3Client(ctx, cfg.S3Region)
		if err != nil {
			log.Fatalf("S3: %v", err)
		}
		photos = services.NewS3PhotoStore(s3Client, cfg.S3Bucket, cfg.S3Region, cfg.CloudFrontURL)
		log.Printf("Storing photos in s3://%s", cfg.S3Bucket)
	}

	var rekClient *rekognition.Client
	if cfg.AWSRegion != "" {
		rekClient, err = utils.NewRekognitionClient(ctx, cfg.AWSRegion)
		if err != nil {
			log.Printf("Label detection disabled: %v", err)
		}
	}

	store := services.NewGormPlaceStore(config.DB)
	placeSvc := services.NewPlaceService(store, photos)
	searchSvc := services.NewPlacesSearchService(cfg.PlacesAPIKey, cfg.PlacesAPIURL)
	labelSvc := services.NewLabelService(rekClient)

	r := routes.SetupRouter(routes.Controllers{
		DBConnected: status == config.ConnectConnected,
		Places:      controllers.NewPlaceController(placeSvc),
		Search:      controllers.NewSearchController(searchSvc),
		Labels:      controllers.NewLabelController(labelSvc),
	})

	log.Printf("Server running at http://localhost:%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
