package handler

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-insights/errors"
	transcribedto "github.com/johnquangdev/meeting-insights/internal/adapter/dto/transcribe"
	"github.com/johnquangdev/meeting-insights/internal/usecase/transcribe"
)

// TranscribeHandler serves transcription submission and status polling
type TranscribeHandler struct {
	service *transcribe.Service
	logger  *zap.Logger
}

// NewTranscribeHandler creates a new transcribe handler
func NewTranscribeHandler(service *transcribe.Service, logger *zap.Logger) *TranscribeHandler {
	return &TranscribeHandler{service: service, logger: logger}
}

// Transcribe godoc
// @Summary      Submit text or audio for transcription
// @Description  Direct text completes immediately; audio URLs create a job to poll
// @Tags         transcriptions
// @Accept       json
// @Produce      json
// @Param        request body transcribe.TranscribeRequest true "Text or audio URL"
// @Success      200 {object} transcribe.TranscribeResponse
// @Failure      400 {object} map[string]interface{}
// @Router       /transcriptions [post]
func (h *TranscribeHandler) Transcribe(c echo.Context) error {
	var req transcribedto.TranscribeRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}

	result, err := h.service.Transcribe(c.Request().Context(), req.Text, req.AudioURL, req.LanguageCode)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, transcribedto.TranscribeResponse{
		Success:          true,
		TranscriptID:     result.TranscriptID,
		Status:           result.Status,
		TranscribedText:  result.Text,
		StructuredOutput: result.Structured,
	})
}

// GetStatus godoc
// @Summary      Poll a transcription job
// @Tags         transcriptions
// @Produce      json
// @Param        id path string true "Transcript ID"
// @Success      200 {object} transcribe.StatusResponse
// @Failure      500 {object} map[string]interface{}
// @Router       /transcriptions/{id} [get]
func (h *TranscribeHandler) GetStatus(c echo.Context) error {
	result, err := h.service.GetStatus(c.Request().Context(), c.Param("id"))
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, transcribedto.StatusResponse{
		Success:          true,
		TranscriptID:     result.ID,
		Status:           result.Status,
		TranscribedText:  result.Text,
		StructuredOutput: result.Structured,
		Error:            result.ErrorReason,
	})
}
