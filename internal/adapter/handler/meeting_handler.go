package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-insights/errors"
	meetingdto "github.com/johnquangdev/meeting-insights/internal/adapter/dto/meeting"
	"github.com/johnquangdev/meeting-insights/internal/usecase/meeting"
)

// MeetingHandler serves meeting transcript processing
type MeetingHandler struct {
	service *meeting.Service
	logger  *zap.Logger
}

// NewMeetingHandler creates a new meeting handler
func NewMeetingHandler(service *meeting.Service, logger *zap.Logger) *MeetingHandler {
	return &MeetingHandler{service: service, logger: logger}
}

// ProcessMeeting godoc
// @Summary      Process a meeting transcript
// @Description  Extracts meeting insights and maps them to backlog-ready requirements
// @Tags         meetings
// @Accept       json
// @Produce      json
// @Param        request body meeting.ProcessMeetingRequest true "Transcript to process"
// @Success      200 {object} meeting.ProcessMeetingResponse
// @Failure      400 {object} map[string]interface{}
// @Router       /meetings/process [post]
func (h *MeetingHandler) ProcessMeeting(c echo.Context) error {
	var req meetingdto.ProcessMeetingRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("text is required"))
	}

	result, err := h.service.Process(c.Request().Context(), req.MeetingID, req.Text, req.UseBedrock)
	if err != nil {
		return HandleError(h.logger, c, errors.ErrProcessingFailed(err))
	}

	return HandleSuccess(h.logger, c, meetingdto.ProcessMeetingResponse{
		Success:          true,
		MeetingID:        result.MeetingID,
		MeetingSummary:   result.MeetingData,
		Requirements:     result.Requirements,
		ExtractionMethod: result.ExtractionMethod,
		BedrockUsed:      result.BedrockUsed,
		BedrockError:     result.BedrockError,
	})
}

// GetAnalysis godoc
// @Summary      Get a stored meeting analysis
// @Tags         meetings
// @Produce      json
// @Param        id path string true "Meeting ID"
// @Success      200 {object} meeting.AnalysisResponse
// @Failure      404 {object} map[string]interface{}
// @Router       /meetings/{id} [get]
func (h *MeetingHandler) GetAnalysis(c echo.Context) error {
	meetingID := c.Param("id")
	if meetingID == "" {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("meeting id is required"))
	}

	analysis, err := h.service.GetAnalysis(c.Request().Context(), meetingID)
	if err != nil {
		return HandleError(h.logger, c, errors.ErrDBQueryFailed("get meeting analysis", err))
	}
	if analysis == nil {
		return HandleError(h.logger, c, errors.ErrNotFound("meeting analysis"))
	}

	return HandleSuccess(h.logger, c, meetingdto.AnalysisResponse{
		Success:  true,
		Analysis: analysis,
	})
}

// ListAnalyses godoc
// @Summary      List recently processed meetings
// @Tags         meetings
// @Produce      json
// @Param        limit query int false "Maximum results (default 50)"
// @Success      200 {object} meeting.AnalysesResponse
// @Failure      500 {object} map[string]interface{}
// @Router       /meetings [get]
func (h *MeetingHandler) ListAnalyses(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	analyses, err := h.service.ListAnalyses(c.Request().Context(), limit)
	if err != nil {
		return HandleError(h.logger, c, errors.ErrDBQueryFailed("list meeting analyses", err))
	}

	return HandleSuccess(h.logger, c, meetingdto.AnalysesResponse{
		Success:  true,
		Analyses: analyses,
	})
}
