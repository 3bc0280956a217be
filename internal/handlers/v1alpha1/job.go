package v1alpha1

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/google/uuid"
	"go.uber.org/zap"

	api "github.com/trendlens/insight-api/api/v1alpha1"
	"github.com/trendlens/insight-api/internal/handlers/v1alpha1/mappers"
	"github.com/trendlens/insight-api/internal/handlers/validator"
	"github.com/trendlens/insight-api/internal/service"
)

// (POST /api/v1/analyses)
func (h *ServiceHandler) CreateAnalysis(w http.ResponseWriter, r *http.Request) {
	logger := zap.S().Named("job_handler")

	form := &api.AnalyzeRequest{}
	if err := render.Bind(r, form); err != nil {
		replyError(w, r, http.StatusBadRequest, fmt.Sprintf("failed to decode body: %v", err))
		return
	}

	v := validator.NewValidator()
	v.Register(validator.NewAnalyzeValidationRules()...)
	if err := v.Struct(form); err != nil {
		replyError(w, r, http.StatusBadRequest, "Invalid Meesho URL")
		return
	}

	job, err := h.jobSrv.CreateJob(r.Context(), form.Url)
	if err != nil {
		logger.Errorw("failed to create analysis job", "error", err)
		switch err.(type) {
		case *service.ErrInvalidInput:
			replyError(w, r, http.StatusBadRequest, err.Error())
		default:
			replyError(w, r, http.StatusInternalServerError, fmt.Sprintf("failed to start analysis: %v", err))
		}
		return
	}

	render.Status(r, http.StatusCreated)
	_ = render.Render(w, r, api.AnalyzeReply{JobId: job.ID.String()})
}

// (GET /api/v1/analyses/{id}/status)
func (h *ServiceHandler) GetAnalysisStatus(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		replyError(w, r, http.StatusBadRequest, fmt.Sprintf("invalid job id: %v", err))
		return
	}

	job, err := h.jobSrv.GetJobStatus(r.Context(), id)
	if err != nil {
		switch err.(type) {
		case *service.ErrJobNotFound:
			replyError(w, r, http.StatusNotFound, err.Error())
		default:
			replyError(w, r, http.StatusInternalServerError, fmt.Sprintf("failed to get job: %v", err))
		}
		return
	}

	_ = render.Render(w, r, mappers.JobToStatusReply(job))
}

// (GET /api/v1/analyses/{id}/results)
func (h *ServiceHandler) GetAnalysisResults(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		replyError(w, r, http.StatusBadRequest, fmt.Sprintf("invalid job id: %v", err))
		return
	}

	timeRange := service.NormalizeRange(r.URL.Query().Get("range"))

	results, err := h.jobSrv.GetJobResults(r.Context(), id, timeRange)
	if err != nil {
		switch err.(type) {
		case *service.ErrJobNotFound:
			replyError(w, r, http.StatusNotFound, err.Error())
		case *service.ErrJobNotCompleted:
			replyError(w, r, http.StatusConflict, err.Error())
		default:
			replyError(w, r, http.StatusInternalServerError, fmt.Sprintf("failed to get results: %v", err))
		}
		return
	}

	_ = render.Render(w, r, mappers.ResultsToReply(results))
}
