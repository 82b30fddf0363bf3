package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/barberia-cr/barberia-api/internal/storage"
)

// Limite do corpo da imagem enviada, antes do processamento.
const maxUploadBytes = 10 << 20

type UploadHandler struct {
	uploader *storage.Uploader
	log      *zap.Logger
}

func NewUploadHandler(uploader *storage.Uploader, log *zap.Logger) *UploadHandler {
	return &UploadHandler{uploader: uploader, log: log}
}

// UploadImage recebe multipart "file", reencoda em webp e grava no S3.
// A resposta traz a URL pública para usar como image_url no catálogo.
func (h *UploadHandler) UploadImage(c *gin.Context) {
	if h.uploader == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "uploads_disabled"})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing_file"})
		return
	}
	if fileHeader.Size > maxUploadBytes {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file_too_large"})
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_file"})
		return
	}
	defer f.Close()

	raw, err := io.ReadAll(io.LimitReader(f, maxUploadBytes))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_file"})
		return
	}

	processed, err := storage.ProcessImage(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unsupported_image"})
		return
	}

	url, err := h.uploader.UploadImage(c.Request.Context(), processed)
	if err != nil {
		h.log.Error("image upload failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "upload_failed"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"url": url})
}
