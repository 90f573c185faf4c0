package catalog

import (
	"errors"
	"net/http"
	"strconv"

	"courtbook/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the public catalog endpoints.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/venues", h.ListVenues)
	rg.GET("/venues/:id", h.GetVenue)
}

// ListVenues handles GET /api/v1/venues?sport=&limit=&offset=
func (h *Handler) ListVenues(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	venues, total, err := h.service.ListVenues(c.Request.Context(), c.Query("sport"), limit, offset)
	if err != nil {
		if errors.Is(err, ErrValidation) {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load venues")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"venues": venues, "total": total})
}

func (h *Handler) GetVenue(c *gin.Context) {
	venue, err := h.service.GetVenue(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Venue not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load venue")
		return
	}
	response.Success(c, http.StatusOK, venue)
}
