package media

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pammu-27/sparsha-backend/internal/pkg/params"
	"github.com/pammu-27/sparsha-backend/internal/pkg/response"
)

// FormField is the multipart field carrying the uploaded file.
const FormField = "media"

// Handler serves media intake and the gallery catalog.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Upload godoc
// @Summary Upload a gallery file
// @Tags Gallery
// @Accept multipart/form-data
// @Produce json
// @Param media formData file true "File to upload"
// @Param alt formData string false "Alt text"
// @Param tags formData string false "Comma-separated tags"
// @Success 201 {object} Media
// @Failure 400,413,500,502 {object} map[string]interface{}
// @Router /upload [post]
func (h *Handler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile(FormField)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "No file uploaded")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Could not read uploaded file")
		return
	}
	defer file.Close()

	in := UploadInput{
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Size:        fileHeader.Size,
		Body:        file,
	}
	if alt, ok := c.GetPostForm("alt"); ok {
		in.Alt = &alt
	}
	if tags, ok := c.GetPostForm("tags"); ok {
		in.Tags = &tags
	}

	m, err := h.service.Upload(c.Request.Context(), in)
	if err != nil {
		var storageErr *StorageError
		switch {
		case errors.Is(err, ErrFileTooLarge):
			response.Error(c, http.StatusRequestEntityTooLarge, err.Error())
		case errors.As(err, &storageErr):
			slog.Error("upload storage error", "filename", in.Filename, "error", storageErr.Err)
			response.ErrorWithDetails(c, http.StatusBadGateway, "Failed to store file", storageErr.Err.Error())
		default:
			slog.Error("upload error", "filename", in.Filename, "error", err)
			response.Error(c, http.StatusInternalServerError, "Upload failed")
		}
		return
	}

	response.OK(c, http.StatusCreated, m)
}

// List godoc
// @Summary List gallery media, newest first
// @Tags Gallery
// @Produce json
// @Success 200 {array} Media
// @Failure 500 {object} map[string]interface{}
// @Router /gallery [get]
func (h *Handler) List(c *gin.Context) {
	items, err := h.service.List(c.Request.Context())
	if err != nil {
		slog.Error("list gallery", "error", err)
		response.Error(c, http.StatusInternalServerError, "Failed to fetch gallery")
		return
	}
	response.OK(c, http.StatusOK, items)
}

// Update godoc
// @Summary Update media alt text and tags
// @Tags Gallery
// @Accept json
// @Produce json
// @Param id path int true "Media ID"
// @Param request body UpdateMediaRequest true "Alt and tags"
// @Success 200 {object} Media
// @Failure 400,404,500 {object} map[string]interface{}
// @Router /media/{id} [put]
func (h *Handler) Update(c *gin.Context) {
	id, ok := params.ID(c)
	if !ok {
		response.Error(c, http.StatusBadRequest, "Invalid id")
		return
	}

	var req UpdateMediaRequest
	// an empty body is an update with no fields
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		response.Error(c, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	m, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, ErrMediaNotFound) {
			response.Error(c, http.StatusNotFound, "Media not found")
			return
		}
		slog.Error("update media", "id", id, "error", err)
		response.Error(c, http.StatusInternalServerError, "Failed to update media")
		return
	}
	response.OK(c, http.StatusOK, m)
}

// Delete godoc
// @Summary Delete media
// @Tags Gallery
// @Produce json
// @Param id path int true "Media ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400,404,500 {object} map[string]interface{}
// @Router /media/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	id, ok := params.ID(c)
	if !ok {
		response.Error(c, http.StatusBadRequest, "Invalid id")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, ErrMediaNotFound) {
			response.Error(c, http.StatusNotFound, "Media not found")
			return
		}
		slog.Error("delete media", "id", id, "error", err)
		response.Error(c, http.StatusInternalServerError, "Failed to delete media")
		return
	}
	response.Success(c)
}
