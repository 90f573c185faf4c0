package booking

import (
	"errors"
	"net/http"
	"strconv"

	"courtbook/internal/domain"
	"courtbook/internal/middleware"
	"courtbook/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the player and owner booking endpoints. The rg
// group is expected to already carry the auth middleware.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/bookings", h.MyBookings)

	owner := rg.Group("/owner", middleware.RequireRole(string(domain.RoleOwner)))
	{
		owner.GET("/venues", h.OwnerVenues)
		owner.GET("/requests", h.PendingRequests)
		owner.POST("/requests/:id/approve", h.Approve)
		owner.POST("/requests/:id/decline", h.Decline)
	}
}

func (h *Handler) MyBookings(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	bookings, err := h.service.MyBookings(c.Request.Context(), c.GetString("user_id"), limit, offset)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load bookings")
		return
	}
	response.Success(c, http.StatusOK, ListResponse{Bookings: bookings})
}

func (h *Handler) OwnerVenues(c *gin.Context) {
	venues, err := h.service.OwnerVenues(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load venues")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"venues": venues})
}

func (h *Handler) PendingRequests(c *gin.Context) {
	bookings, err := h.service.PendingRequests(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load booking requests")
		return
	}
	response.Success(c, http.StatusOK, ListResponse{Bookings: bookings})
}

func (h *Handler) Approve(c *gin.Context) {
	h.handleRequest(c, true)
}

func (h *Handler) Decline(c *gin.Context) {
	h.handleRequest(c, false)
}

func (h *Handler) handleRequest(c *gin.Context, approve bool) {
	booking, err := h.service.HandleRequest(c.Request.Context(), c.GetString("user_id"), c.Param("id"), approve)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking not found")
		case errors.Is(err, ErrForbidden):
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "Booking belongs to another owner's venue")
		case errors.Is(err, ErrNotPending):
			response.Error(c, http.StatusConflict, "NOT_PENDING", "Booking was already handled")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update booking")
		}
		return
	}
	response.Success(c, http.StatusOK, booking)
}
