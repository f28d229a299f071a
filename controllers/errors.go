package controllers

import (
	"errors"
	"log"
	"net/http"

	"foodietrail/services"

	"github.com/gin-gonic/gin"
)

// respondError maps service errors onto status codes. Anything unknown is
// a store failure.
func respondError(c *gin.Context, err error) {
	var verr *services.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"error": verr.Msg})
	case errors.Is(err, services.ErrPlaceNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	case errors.Is(err, services.ErrStoreUnavailable):
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	default:
		log.Printf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
