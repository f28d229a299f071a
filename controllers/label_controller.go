package controllers

import (
	"errors"
	"log"
	"net/http"

	"foodietrail/services"

	"github.com/gin-gonic/gin"
)

type LabelRequest struct {
	ImageBase64 string `json:"image_base64" binding:"required"`
}

type LabelController struct {
	Labels *services.LabelService
}

func NewLabelController(l *services.LabelService) *LabelController {
	return &LabelController{Labels: l}
}

// POST /photos/labels  { "image_base64": "data:…"}
func (lc *LabelController) DetectLabels(c *gin.Context) {
	var req LabelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	labels, err := lc.Labels.DetectLabels(c.Request.Context(), req.ImageBase64)
	if err != nil {
		var verr *services.ValidationError
		switch {
		case errors.As(err, &verr):
			c.JSON(http.StatusBadRequest, gin.H{"error": verr.Msg})
		case errors.Is(err, services.ErrLabelsUnavailable):
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
		default:
			log.Printf("Error detecting labels: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to detect labels."})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"labels": labels})
}
