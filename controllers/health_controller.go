package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Health answers GET / so deploy platforms can tell the process is up.
func Health(dbConnected bool) gin.HandlerFunc {
	message := "Backend is running without a database"
	if dbConnected {
		message = "Backend is running and connected to the database!"
	}
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": message})
	}
}
