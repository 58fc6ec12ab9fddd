package handlers

import (
	"net/http"

	"jojocolaresbeauty/services/storage"
	"jojocolaresbeauty/utils"

	"github.com/gin-gonic/gin"
)

// StorageHandler serves admin image uploads for services and portfolio entries.
type StorageHandler struct {
	StorageSvc storage.StorageService
}

// NewStorageHandler creates a new StorageHandler.
func NewStorageHandler(svc storage.StorageService) *StorageHandler {
	return &StorageHandler{StorageSvc: svc}
}

// allowedFolders defines permitted upload destinations.
var allowedFolders = map[string]bool{
	"services":  true,
	"portfolio": true,
}

// UploadImageHandler stores a multipart image and returns its public URL.
func (h *StorageHandler) UploadImageHandler(c *gin.Context) {
	folder := c.Param("folder")
	if !allowedFolders[folder] {
		utils.JSONError(c, http.StatusBadRequest, "invalid folder; allowed values are 'services' and 'portfolio'", "")
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "file not provided", err.Error())
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to read file", err.Error())
		return
	}
	defer file.Close()

	publicID, err := h.StorageSvc.UploadImage(c.Request.Context(), file, folder)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to upload image", err.Error())
		return
	}

	url, err := h.StorageSvc.ImageURL(publicID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to build image URL", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"publicId": publicID,
		"imageUrl": url,
	})
}

// DeleteImageHandler removes an uploaded image.
func (h *StorageHandler) DeleteImageHandler(c *gin.Context) {
	publicID := c.Query("publicId")
	if publicID == "" {
		utils.JSONError(c, http.StatusBadRequest, "publicId is required", "")
		return
	}
	if err := h.StorageSvc.DeleteImage(c.Request.Context(), publicID); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to delete image", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "image deleted"})
}
