package wizard

import (
	"errors"
	"net/http"

	"courtbook/internal/domain"
	"courtbook/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the wizard under an authenticated group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	wz := rg.Group("/wizard")
	{
		wz.POST("", h.Start)
		wz.GET("/:id", h.Get)
		wz.POST("/:id/sport", h.PickSport)
		wz.POST("/:id/venue", h.PickVenue)
		wz.POST("/:id/schedule", h.SetSchedule)
		wz.POST("/:id/slot", h.PickSlot)
		wz.POST("/:id/back", h.Back)
		wz.POST("/:id/submit", h.Submit)
		wz.DELETE("/:id", h.Cancel)
	}
}

func (h *Handler) Start(c *gin.Context) {
	state := h.service.Start(c.GetString("user_id"))
	response.Success(c, http.StatusCreated, state)
}

func (h *Handler) Get(c *gin.Context) {
	state, err := h.service.Get(c.Param("id"), c.GetString("user_id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, state)
}

func (h *Handler) PickSport(c *gin.Context) {
	var req PickSportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	state, err := h.service.PickSport(c.Param("id"), c.GetString("user_id"), req.Sport)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, state)
}

func (h *Handler) PickVenue(c *gin.Context) {
	var req PickVenueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	state, err := h.service.PickVenue(c.Request.Context(), c.Param("id"), c.GetString("user_id"), req.VenueID)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, state)
}

func (h *Handler) SetSchedule(c *gin.Context) {
	var req SetScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if req.Date == nil && req.DurationHours == nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "date or duration_hours is required")
		return
	}
	state, err := h.service.SetSchedule(c.Param("id"), c.GetString("user_id"), req.Date, req.DurationHours)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, state)
}

func (h *Handler) PickSlot(c *gin.Context) {
	var req PickSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	state, err := h.service.PickSlot(c.Request.Context(), c.Param("id"), c.GetString("user_id"), req.CourtID, req.StartTime)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, state)
}

func (h *Handler) Back(c *gin.Context) {
	state, err := h.service.Back(c.Param("id"), c.GetString("user_id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, state)
}

func (h *Handler) Submit(c *gin.Context) {
	var req SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	state, booking, err := h.service.Submit(c.Request.Context(), c.Param("id"), c.GetString("user_id"), domain.PaymentMethod(req.PaymentMethod))
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, SubmitResponse{Session: state, Booking: booking})
}

func (h *Handler) Cancel(c *gin.Context) {
	if err := h.service.Cancel(c.Param("id"), c.GetString("user_id")); err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"cancelled": true})
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Session not found")
	case errors.Is(err, ErrValidation):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	case errors.Is(err, ErrOutOfRange):
		response.Error(c, http.StatusBadRequest, "OUT_OF_RANGE", "Date is outside the booking window")
	case errors.Is(err, ErrIncompleteSelection):
		response.Error(c, http.StatusConflict, "INCOMPLETE_SELECTION", "Earlier stages are missing required selections")
	case errors.Is(err, ErrInvalidStage):
		response.Error(c, http.StatusConflict, "INVALID_STAGE", "Event not allowed in the current stage")
	case errors.Is(err, ErrCourtMismatch):
		response.Error(c, http.StatusConflict, "COURT_MISMATCH", "Court does not host the selected sport")
	case errors.Is(err, ErrSlotTaken):
		response.Error(c, http.StatusConflict, "SLOT_TAKEN", "Slot is already booked")
	case errors.Is(err, ErrStaleSlot):
		response.Error(c, http.StatusConflict, "STALE_SLOT", "Slot was booked while you were checking out")
	case errors.Is(err, ErrSubmissionInFlight):
		response.Error(c, http.StatusConflict, "SUBMISSION_IN_FLIGHT", "A submission is already in progress")
	case errors.Is(err, ErrSubmissionFailed):
		response.Error(c, http.StatusBadGateway, "SUBMISSION_FAILED", "Booking creation failed, please retry")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Unexpected error")
	}
}
