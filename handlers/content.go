package handlers

import (
	"net/http"
	"time"

	contentRepo "jojocolaresbeauty/database/repository/content"
	"jojocolaresbeauty/models"
	"jojocolaresbeauty/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ContentHandler manages landing-page content: the portfolio gallery and
// client testimonials.
type ContentHandler struct {
	Repo contentRepo.ContentRepository
}

// NewContentHandler creates a new ContentHandler.
func NewContentHandler(repo contentRepo.ContentRepository) *ContentHandler {
	return &ContentHandler{Repo: repo}
}

// ListPortfolioHandler returns every gallery entry.
func (h *ContentHandler) ListPortfolioHandler(c *gin.Context) {
	items, err := h.Repo.ListPortfolio(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list portfolio", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"portfolio": items})
}

// CreatePortfolioItemHandler adds a gallery entry. The image must already be
// uploaded; the payload carries its URL.
func (h *ContentHandler) CreatePortfolioItemHandler(c *gin.Context) {
	var item models.PortfolioItem
	if err := c.ShouldBindJSON(&item); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if item.Title == "" || item.ImageURL == "" {
		utils.JSONError(c, http.StatusBadRequest, "title and imageUrl are required", "")
		return
	}

	item.ID = uuid.New().String()
	item.CreatedAt = time.Now()
	if _, err := h.Repo.CreatePortfolioItem(c.Request.Context(), item); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to create portfolio item", err.Error())
		return
	}
	c.JSON(http.StatusCreated, item)
}

// DeletePortfolioItemHandler removes a gallery entry.
func (h *ContentHandler) DeletePortfolioItemHandler(c *gin.Context) {
	if err := h.Repo.DeletePortfolioItem(c.Request.Context(), c.Param("id")); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to delete portfolio item", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "portfolio item deleted"})
}

// ListTestimonialsHandler returns every testimonial.
func (h *ContentHandler) ListTestimonialsHandler(c *gin.Context) {
	items, err := h.Repo.ListTestimonials(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list testimonials", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"testimonials": items})
}

// CreateTestimonialHandler adds a testimonial.
func (h *ContentHandler) CreateTestimonialHandler(c *gin.Context) {
	var tm models.Testimonial
	if err := c.ShouldBindJSON(&tm); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if tm.Name == "" || tm.Text == "" {
		utils.JSONError(c, http.StatusBadRequest, "name and text are required", "")
		return
	}

	tm.ID = uuid.New().String()
	tm.CreatedAt = time.Now()
	if _, err := h.Repo.CreateTestimonial(c.Request.Context(), tm); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to create testimonial", err.Error())
		return
	}
	c.JSON(http.StatusCreated, tm)
}

// GetLandingPageHandler returns the customizable landing content.
func (h *ContentHandler) GetLandingPageHandler(c *gin.Context) {
	page, err := h.Repo.GetLandingPage(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load landing page", err.Error())
		return
	}
	c.JSON(http.StatusOK, page)
}

// UpdateLandingPageHandler persists the customizable landing content.
func (h *ContentHandler) UpdateLandingPageHandler(c *gin.Context) {
	var page models.LandingPage
	if err := c.ShouldBindJSON(&page); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if page.Hero.Title == "" || page.Branding.BusinessName == "" {
		utils.JSONError(c, http.StatusBadRequest, "hero title and business name are required", "")
		return
	}

	if err := h.Repo.UpdateLandingPage(c.Request.Context(), page); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to update landing page", err.Error())
		return
	}
	c.JSON(http.StatusOK, page)
}

// DeleteTestimonialHandler removes a testimonial.
func (h *ContentHandler) DeleteTestimonialHandler(c *gin.Context) {
	if err := h.Repo.DeleteTestimonial(c.Request.Context(), c.Param("id")); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to delete testimonial", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "testimonial deleted"})
}
