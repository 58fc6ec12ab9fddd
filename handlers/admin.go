package handlers

import (
	"net/http"

	"jojocolaresbeauty/models"
	"jojocolaresbeauty/services/admin"
	"jojocolaresbeauty/utils"

	"github.com/gin-gonic/gin"
)

// AdminHandler encapsulates back-office operations: appointment management,
// dashboard stats and configuration.
type AdminHandler struct {
	Svc admin.AdminService
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(svc admin.AdminService) *AdminHandler {
	return &AdminHandler{Svc: svc}
}

// ListAppointmentsHandler returns appointments, newest first, optionally
// filtered by the "status" query parameter.
func (h *AdminHandler) ListAppointmentsHandler(c *gin.Context) {
	appts, err := h.Svc.ListAppointments(c.Request.Context(), c.Query("status"))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list appointments", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointments": appts})
}

// UpdateStatusHandler moves an appointment into a new status.
func (h *AdminHandler) UpdateStatusHandler(c *gin.Context) {
	var input struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	appt, err := h.Svc.UpdateStatus(c.Request.Context(), c.Param("id"), input.Status)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "failed to update status", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointment": appt})
}

// DeleteAppointmentHandler removes an appointment entirely.
func (h *AdminHandler) DeleteAppointmentHandler(c *gin.Context) {
	if err := h.Svc.DeleteAppointment(c.Request.Context(), c.Param("id")); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to delete appointment", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "appointment deleted"})
}

// DashboardStatsHandler returns appointment counts per status.
func (h *AdminHandler) DashboardStatsHandler(c *gin.Context) {
	stats, err := h.Svc.DashboardStats(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load stats", err.Error())
		return
	}
	c.JSON(http.StatusOK, stats)
}

// GetSettingsHandler returns the booking window configuration.
func (h *AdminHandler) GetSettingsHandler(c *gin.Context) {
	settings, err := h.Svc.GetSettings(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load settings", err.Error())
		return
	}
	c.JSON(http.StatusOK, settings)
}

// UpdateSettingsHandler persists the booking window configuration.
func (h *AdminHandler) UpdateSettingsHandler(c *gin.Context) {
	var settings models.Settings
	if err := c.ShouldBindJSON(&settings); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	if err := h.Svc.UpdateSettings(c.Request.Context(), settings); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "failed to update settings", err.Error())
		return
	}
	c.JSON(http.StatusOK, settings)
}
