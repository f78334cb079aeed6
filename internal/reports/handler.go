package reports

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"ideacheck-backend/internal/i18n"
	"ideacheck-backend/internal/llm"
	"ideacheck-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the reports service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches analysis routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/analyze", h.analyze)
	rg.GET("/reports/:id", h.getReport)
}

func (h *Handler) analyze(c *gin.Context) {
	var in AnalysisInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", i18n.T(in.Language, "error_validation"))
		return
	}
	lang := i18n.Normalize(in.Language)
	in.Language = lang

	report, err := h.Svc.Analyze(c.Request.Context(), in)
	if err != nil {
		switch {
		case errors.Is(err, llm.ErrRateLimited):
			respond.Error(c, http.StatusTooManyRequests, "rate_limited", i18n.T(lang, "error_rate_limited"))
		case errors.Is(err, llm.ErrUnavailable):
			respond.Error(c, http.StatusPaymentRequired, "upstream_unavailable", i18n.T(lang, "error_unavailable"))
		case errors.Is(err, ErrNotConfigured):
			respond.Error(c, http.StatusInternalServerError, "not_configured", "LLM credential is not configured")
		case errors.Is(err, ErrParse):
			respond.Error(c, http.StatusInternalServerError, "parse_error", "Failed to parse AI response")
		case errors.Is(err, ErrPersist):
			respond.Error(c, http.StatusInternalServerError, "storage_error", "Failed to save report")
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", i18n.T(lang, "error_generic"))
		}
		return
	}

	c.Set("reportId", report.ID)
	respond.OK(c, gin.H{"id": report.ID, "output": report.Output})
}

func (h *Handler) getReport(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "report id is required")
		return
	}

	report, err := h.Svc.Get(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "report not found")
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch report")
		}
		return
	}

	respond.OK(c, report)
}
