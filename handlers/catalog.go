package handlers

import (
	"errors"
	"net/http"

	catalogRepo "jojocolaresbeauty/database/repository/catalog"
	"jojocolaresbeauty/models"
	"jojocolaresbeauty/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CatalogHandler manages the bookable services catalogue.
type CatalogHandler struct {
	Repo catalogRepo.ServiceRepository
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(repo catalogRepo.ServiceRepository) *CatalogHandler {
	return &CatalogHandler{Repo: repo}
}

// ListServicesHandler returns the full catalogue, sorted by name.
func (h *CatalogHandler) ListServicesHandler(c *gin.Context) {
	services, err := h.Repo.ListAll(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list services", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"services": services})
}

// CreateServiceHandler adds a service to the catalogue.
func (h *CatalogHandler) CreateServiceHandler(c *gin.Context) {
	var svc models.Service
	if err := c.ShouldBindJSON(&svc); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if svc.Name == "" || svc.Duration <= 0 {
		utils.JSONError(c, http.StatusBadRequest, "name and a positive duration are required", "")
		return
	}
	if err := validateFormFields(svc.FormFields); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error(), "")
		return
	}

	svc.ID = uuid.New().String()
	if _, err := h.Repo.Create(c.Request.Context(), svc); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to create service", err.Error())
		return
	}
	c.JSON(http.StatusCreated, svc)
}

// UpdateServiceHandler replaces a catalogue entry.
func (h *CatalogHandler) UpdateServiceHandler(c *gin.Context) {
	var svc models.Service
	if err := c.ShouldBindJSON(&svc); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if err := validateFormFields(svc.FormFields); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error(), "")
		return
	}

	svc.ID = c.Param("id")
	if err := h.Repo.Update(c.Request.Context(), svc); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to update service", err.Error())
		return
	}
	c.JSON(http.StatusOK, svc)
}

// DeleteServiceHandler removes a catalogue entry.
func (h *CatalogHandler) DeleteServiceHandler(c *gin.Context) {
	if err := h.Repo.DeleteByID(c.Request.Context(), c.Param("id")); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to delete service", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "service deleted"})
}

// validateFormFields checks admin-configured form fields.
func validateFormFields(fields []models.FormField) error {
	for _, f := range fields {
		if f.ID == "" || f.Label == "" {
			return errors.New("form fields need an id and a label")
		}
		switch f.Kind {
		case models.FieldText, models.FieldTextarea:
		case models.FieldSelect:
			if len(f.Options) == 0 {
				return errors.New("select fields need at least one option")
			}
		default:
			return errors.New("form field kind must be text, textarea or select")
		}
	}
	return nil
}
