package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/wanderstay/wanderstay/internal/application"
	"github.com/wanderstay/wanderstay/pkg/response"
	"github.com/wanderstay/wanderstay/pkg/validation"
)

type MediaHandler struct {
	Svc    *application.MediaService
	Logger *logrus.Logger
}

func NewMediaHandler(svc *application.MediaService, logger *logrus.Logger) *MediaHandler {
	return &MediaHandler{Svc: svc, Logger: logger}
}

type uploadByLinkRequest struct {
	Link string `json:"link" binding:"required,url"`
}

// UploadByLink POST /upload-by-link (auth required)
func (h *MediaHandler) UploadByLink(c *gin.Context) {
	var req uploadByLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusUnprocessableEntity, "invalid payload", validation.ToDetails(err))
		return
	}
	name, err := h.Svc.IngestByLink(c.Request.Context(), req.Link)
	if err != nil {
		response.Error[any](c, http.StatusInternalServerError, "image download failed", nil)
		return
	}
	response.Success(c, http.StatusOK, name, "photo added", nil)
}

// Upload POST /upload (auth required) — multipart field "photos".
func (h *MediaHandler) Upload(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		response.Error[any](c, http.StatusUnprocessableEntity, "invalid multipart form", nil)
		return
	}
	files := form.File["photos"]
	names, err := h.Svc.IngestUpload(c.Request.Context(), files)
	if err != nil {
		if h.Logger != nil {
			h.Logger.WithError(err).Error("photo upload failed")
		}
		response.Error[any](c, http.StatusInternalServerError, "upload failed", nil)
		return
	}
	response.Success(c, http.StatusOK, names, "photos uploaded", nil)
}
