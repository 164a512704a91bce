package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/johnquangdev/meeting-insights/pkg/config"
)

// Router holds all handlers
type Router struct {
	cfg               *config.Config
	parseHandler      *ParseHandler
	meetingHandler    *MeetingHandler
	transcribeHandler *TranscribeHandler
	uploadHandler     *UploadHandler
}

// NewRouter creates a new router with all handlers
func NewRouter(cfg *config.Config, parseHandler *ParseHandler, meetingHandler *MeetingHandler, transcribeHandler *TranscribeHandler, uploadHandler *UploadHandler) *Router {
	return &Router{
		cfg:               cfg,
		parseHandler:      parseHandler,
		meetingHandler:    meetingHandler,
		transcribeHandler: transcribeHandler,
		uploadHandler:     uploadHandler,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", rt.healthCheck)

	// Swagger documentation
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// API v1 group
	v1 := e.Group("/v1")

	v1.POST("/parse", rt.parseHandler.ParseText)

	meetings := v1.Group("/meetings")
	meetings.POST("/process", rt.meetingHandler.ProcessMeeting)
	meetings.GET("", rt.meetingHandler.ListAnalyses)
	meetings.GET("/:id", rt.meetingHandler.GetAnalysis)

	transcriptions := v1.Group("/transcriptions")
	transcriptions.POST("", rt.transcribeHandler.Transcribe)
	transcriptions.GET("/:id", rt.transcribeHandler.GetStatus)

	v1.POST("/uploads", rt.uploadHandler.Upload)
	v1.GET("/files", rt.uploadHandler.ListFiles)
	v1.GET("/files/:object", rt.uploadHandler.GetFileURL)
}

// healthCheck returns health status
func (rt *Router) healthCheck(c echo.Context) error {
	environment := "development"
	if rt.cfg != nil {
		environment = rt.cfg.Server.Environment
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":      "ok",
		"environment": environment,
	})
}
