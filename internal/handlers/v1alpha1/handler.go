package v1alpha1

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	api "github.com/trendlens/insight-api/api/v1alpha1"
	"github.com/trendlens/insight-api/internal/service"
	"github.com/trendlens/insight-api/pkg/requestid"
)

type ServiceHandler struct {
	jobSrv *service.JobService
}

func NewServiceHandler(jobService *service.JobService) *ServiceHandler {
	return &ServiceHandler{
		jobSrv: jobService,
	}
}

// RegisterRoutes mounts the analysis API on the router.
func (h *ServiceHandler) RegisterRoutes(router chi.Router) {
	router.Post("/api/v1/analyses", h.CreateAnalysis)
	router.Get("/api/v1/analyses/{id}/status", h.GetAnalysisStatus)
	router.Get("/api/v1/analyses/{id}/results", h.GetAnalysisResults)
	router.Get("/health", h.Health)
}

func replyError(w http.ResponseWriter, r *http.Request, status int, message string) {
	render.Status(r, status)
	_ = render.Render(w, r, api.ErrorReply{Message: message, RequestId: requestid.FromContextPtr(r.Context())})
}
