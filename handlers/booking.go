package handlers

import (
	"errors"
	"net/http"
	"strings"

	"jojocolaresbeauty/services/booking"
	"jojocolaresbeauty/utils"

	"github.com/gin-gonic/gin"
)

// BookingHandler serves the public booking flow: availability lookup and
// appointment creation.
type BookingHandler struct {
	Svc booking.BookingService
}

// NewBookingHandler creates a new BookingHandler.
func NewBookingHandler(svc booking.BookingService) *BookingHandler {
	return &BookingHandler{Svc: svc}
}

// GetSlotsHandler returns bookable start times for a date and service
// selection. Services come as a comma-separated "services" query parameter.
func (h *BookingHandler) GetSlotsHandler(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		utils.JSONError(c, http.StatusBadRequest, "date is required", "expected YYYY-MM-DD")
		return
	}

	var serviceIDs []string
	if raw := c.Query("services"); raw != "" {
		for _, id := range strings.Split(raw, ",") {
			if id = strings.TrimSpace(id); id != "" {
				serviceIDs = append(serviceIDs, id)
			}
		}
	}

	result, err := h.Svc.GetAvailableSlots(c.Request.Context(), date, serviceIDs)
	if err != nil {
		var be *booking.BookingError
		if errors.As(err, &be) {
			utils.JSONError(c, http.StatusBadRequest, be.Message, be.Code)
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to compute availability", err.Error())
		return
	}

	c.JSON(http.StatusOK, result)
}

// CreateAppointmentHandler books a pending appointment.
func (h *BookingHandler) CreateAppointmentHandler(c *gin.Context) {
	var input booking.CreateAppointmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	appt, err := h.Svc.CreateAppointment(c.Request.Context(), input)
	if err != nil {
		var be *booking.BookingError
		if errors.As(err, &be) {
			status := http.StatusBadRequest
			if be.Code == "slotTaken" {
				status = http.StatusConflict
			}
			utils.JSONError(c, status, be.Message, be.Code)
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to create appointment", err.Error())
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"appointment": appt,
		"message":     "Agendamento solicitado! Aguarde a confirmação.",
	})
}
