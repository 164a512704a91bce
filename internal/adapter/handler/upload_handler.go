package handler

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-insights/errors"
	uploaddto "github.com/johnquangdev/meeting-insights/internal/adapter/dto/upload"
	"github.com/johnquangdev/meeting-insights/internal/infrastructure/storage"
)

// Audio formats accepted for upload
var allowedExtensions = map[string]bool{
	".mp3": true, ".mp4": true, ".wav": true, ".m4a": true,
	".flac": true, ".webm": true, ".ogg": true,
}

// UploadHandler serves audio upload and presigned file access
type UploadHandler struct {
	store         *storage.MinIOClient
	presignExpiry time.Duration
	logger        *zap.Logger
}

// NewUploadHandler creates a new upload handler
func NewUploadHandler(store *storage.MinIOClient, presignExpiry time.Duration, logger *zap.Logger) *UploadHandler {
	if presignExpiry <= 0 {
		presignExpiry = time.Hour
	}
	return &UploadHandler{store: store, presignExpiry: presignExpiry, logger: logger}
}

// Upload godoc
// @Summary      Upload an audio file
// @Description  Stores the file in object storage and returns a media URI for transcription
// @Tags         uploads
// @Accept       multipart/form-data
// @Produce      json
// @Param        file formData file true "Audio file"
// @Success      200 {object} upload.UploadResponse
// @Failure      400 {object} map[string]interface{}
// @Router       /uploads [post]
func (h *UploadHandler) Upload(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("file is required"))
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !allowedExtensions[ext] {
		return HandleError(h.logger, c, errors.ErrFileTypeNotAllowed(ext))
	}

	src, err := fileHeader.Open()
	if err != nil {
		return HandleError(h.logger, c, errors.ErrStorageFailed("open upload", err))
	}
	defer src.Close()

	objectKey := fmt.Sprintf("meetings/%s_%s", uuid.New(), fileHeader.Filename)
	contentType := fileHeader.Header.Get("Content-Type")

	ctx := c.Request().Context()
	if err := h.store.UploadFile(ctx, objectKey, src, fileHeader.Size, contentType); err != nil {
		return HandleError(h.logger, c, errors.ErrStorageFailed("upload file", err))
	}

	mediaURI, err := h.store.GetFileURL(ctx, objectKey, h.presignExpiry)
	if err != nil {
		return HandleError(h.logger, c, errors.ErrStorageFailed("presign file", err))
	}

	if h.logger != nil {
		h.logger.Info("audio file uploaded",
			zap.String("object_key", objectKey),
			zap.Int64("size", fileHeader.Size),
		)
	}

	return HandleSuccess(h.logger, c, uploaddto.UploadResponse{
		Success:   true,
		ObjectKey: objectKey,
		MediaURI:  mediaURI,
	})
}

// GetFileURL godoc
// @Summary      Get a presigned URL for a stored object
// @Tags         uploads
// @Produce      json
// @Param        object path string true "Object key"
// @Success      200 {object} upload.FileURLResponse
// @Failure      500 {object} map[string]interface{}
// @Router       /files/{object} [get]
func (h *UploadHandler) GetFileURL(c echo.Context) error {
	objectKey := c.Param("object")
	if objectKey == "" {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("object key is required"))
	}

	url, err := h.store.GetFileURL(c.Request().Context(), objectKey, h.presignExpiry)
	if err != nil {
		return HandleError(h.logger, c, errors.ErrStorageFailed("presign file", err))
	}

	return HandleSuccess(h.logger, c, uploaddto.FileURLResponse{
		Success:   true,
		ObjectKey: objectKey,
		URL:       url,
	})
}

// ListFiles godoc
// @Summary      List stored objects
// @Tags         uploads
// @Produce      json
// @Param        prefix query string false "Key prefix filter"
// @Success      200 {object} upload.FileListResponse
// @Failure      500 {object} map[string]interface{}
// @Router       /files [get]
func (h *UploadHandler) ListFiles(c echo.Context) error {
	prefix := c.QueryParam("prefix")

	files, err := h.store.ListFiles(c.Request().Context(), prefix)
	if err != nil {
		return HandleError(h.logger, c, errors.ErrStorageFailed("list files", err))
	}
	if files == nil {
		files = []string{}
	}

	return HandleSuccess(h.logger, c, uploaddto.FileListResponse{
		Success: true,
		Prefix:  prefix,
		Files:   files,
	})
}
