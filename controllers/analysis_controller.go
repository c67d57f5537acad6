package controllers

import (
	"errors"
	"net/http"
	"strings"

	"contentguard/middlewares"
	"contentguard/models"
	"contentguard/services"
	"contentguard/views"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AnalysisController serves the analysis form and its JSON counterpart.
type AnalysisController struct {
	analyzer services.Analyzer
	logger   *zap.Logger
}

func NewAnalysisController(analyzer services.Analyzer, logger *zap.Logger) *AnalysisController {
	return &AnalysisController{analyzer: analyzer, logger: logger}
}

// ShowForm renders the empty form.
func (ac *AnalysisController) ShowForm(c *gin.Context) {
	c.HTML(http.StatusOK, views.PageTemplate, views.Page{State: services.NewSubmission("").Snapshot()})
}

// SubmitForm runs one submission for the posted content and renders the
// outcome. Blank content is rendered back without calling the analyzer.
func (ac *AnalysisController) SubmitForm(c *gin.Context) {
	sub := services.NewSubmission(c.PostForm("content"))

	err := sub.Submit(c.Request.Context(), ac.analyzer)
	if err != nil && !errors.Is(err, services.ErrEmptyContent) {
		ac.logger.Warn("analysis failed",
			zap.String("request_id", middlewares.GetRequestID(c)),
			zap.Error(err),
		)
	}

	c.HTML(http.StatusOK, views.PageTemplate, views.Page{State: sub.Snapshot()})
}

// AnalyzeAPI forwards a JSON request to the analyzer. Server-reported failures
// keep their status, transport failures become 502.
func (ac *AnalysisController) AnalyzeAPI(c *gin.Context) {
	var req models.AnalysisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request payload"})
		return
	}
	if strings.TrimSpace(req.Content) == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Content field is required"})
		return
	}

	report, err := ac.analyzer.Analyze(c.Request.Context(), req.Content)
	if err != nil {
		ac.logger.Warn("analysis failed",
			zap.String("request_id", middlewares.GetRequestID(c)),
			zap.Error(err),
		)

		status := http.StatusBadGateway
		var serverErr *services.ServerError
		if errors.As(err, &serverErr) {
			status = serverErr.StatusCode
		}
		c.JSON(status, models.ErrorResponse{Error: services.ErrorMessage(err)})
		return
	}

	if report.Issues == nil {
		report.Issues = []string{}
	}
	if report.Recommendations == nil {
		report.Recommendations = []string{}
	}
	c.JSON(http.StatusOK, report)
}

func (ac *AnalysisController) Health(c *gin.Context) {
	c.JSON(http.StatusOK, models.HealthResponse{Status: "OK"})
}
