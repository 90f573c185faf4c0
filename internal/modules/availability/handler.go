package availability

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

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/venues/:id/slots", h.GetSlots)
}

// GetSlots handles GET /api/v1/venues/:id/slots?sport=&date=&duration=
func (h *Handler) GetSlots(c *gin.Context) {
	venueID := c.Param("id")
	sport := c.Query("sport")
	date := c.Query("date")
	if sport == "" || date == "" {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "sport and date are required")
		return
	}

	duration := 1.0
	if raw := c.Query("duration"); raw != "" {
		val, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid duration")
			return
		}
		duration = val
	}

	courts, err := h.service.CourtSlots(c.Request.Context(), venueID, sport, date, duration)
	if err != nil {
		switch {
		case errors.Is(err, ErrValidation):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		case errors.Is(err, ErrSportFilter):
			response.Error(c, http.StatusBadRequest, "SPORT_NOT_OFFERED", "Venue does not offer this sport")
		case errors.Is(err, gorm.ErrRecordNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Venue not found")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to compute availability")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"courts": courts})
}
