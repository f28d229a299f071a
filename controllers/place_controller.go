package controllers

import (
	"net/http"

	"foodietrail/dto"
	"foodietrail/services"

	"github.com/gin-gonic/gin"
)

type PlaceController struct {
	Places *services.PlaceService
}

func NewPlaceController(p *services.PlaceService) *PlaceController {
	return &PlaceController{Places: p}
}

// POST /places
func (pc *PlaceController) Create(c *gin.Context) {
	var input dto.CreatePlaceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	place, err := pc.Places.Create(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, place)
}

// GET /places
func (pc *PlaceController) List(c *gin.Context) {
	places, err := pc.Places.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, places)
}

// GET /places/:id
func (pc *PlaceController) Get(c *gin.Context) {
	place, err := pc.Places.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, place)
}

// PUT /places/:id
func (pc *PlaceController) Update(c *gin.Context) {
	var input dto.UpdatePlaceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	place, err := pc.Places.Update(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, place)
}

// DELETE /places/:id
func (pc *PlaceController) Delete(c *gin.Context) {
	if err := pc.Places.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Deleted successfully"})
}
