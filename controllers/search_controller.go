package controllers

import (
	"log"
	"net/http"
	"strings"

	"foodietrail/services"

	"github.com/gin-gonic/gin"
)

type SearchController struct {
	Search *services.PlacesSearchService
}

func NewSearchController(s *services.PlacesSearchService) *SearchController {
	return &SearchController{Search: s}
}

// GET /restaurants/search?query=ramen&location=Toronto
func (sc *SearchController) SearchRestaurants(c *gin.Context) {
	query := strings.TrimSpace(c.Query("query"))
	location := strings.TrimSpace(c.Query("location"))
	if query == "" && location == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing query or location parameter."})
		return
	}

	restaurants, err := sc.Search.Search(c.Request.Context(), services.BuildTextQuery(query, location))
	if err != nil {
		// provider detail stays in the logs
		log.Printf("Error searching restaurants: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to search restaurants."})
		return
	}
	c.JSON(http.StatusOK, restaurants)
}

// POST /restaurants/draft  { SearchResult }
func (sc *SearchController) Draft(c *gin.Context) {
	var result services.SearchResult
	if err := c.ShouldBindJSON(&result); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "a search result with a name is required"})
		return
	}
	c.JSON(http.StatusOK, services.DraftFromResult(result))
}
