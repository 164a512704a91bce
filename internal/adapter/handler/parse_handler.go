package handler

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-insights/errors"
	parsedto "github.com/johnquangdev/meeting-insights/internal/adapter/dto/parse"
	"github.com/johnquangdev/meeting-insights/internal/usecase/parser"
)

// ParseHandler serves domain-agnostic text parsing
type ParseHandler struct {
	logger *zap.Logger
}

// NewParseHandler creates a new parse handler
func NewParseHandler(logger *zap.Logger) *ParseHandler {
	return &ParseHandler{logger: logger}
}

// ParseText godoc
// @Summary      Parse text into structured output
// @Description  Extracts entities, key phrases, action items, dates, and numbers from plain text
// @Tags         parse
// @Accept       json
// @Produce      json
// @Param        request body parse.ParseTextRequest true "Text to parse"
// @Success      200 {object} parse.ParseTextResponse
// @Failure      400 {object} map[string]interface{}
// @Router       /parse [post]
func (h *ParseHandler) ParseText(c echo.Context) error {
	var req parsedto.ParseTextRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("text is required"))
	}

	return HandleSuccess(h.logger, c, parsedto.ParseTextResponse{
		Success:          true,
		OriginalText:     req.Text,
		StructuredOutput: parser.ParseTextToStructured(req.Text),
	})
}
