// Package v1alpha1 holds the wire types of the analysis API.
package v1alpha1

import (
	"net/http"

	"github.com/trendlens/insight-api/internal/store/model"
)

type AnalyzeRequest struct {
	Url string `json:"url" validate:"required,product_url"`
}

func (a *AnalyzeRequest) Bind(r *http.Request) error {
	return nil
}

type AnalyzeReply struct {
	JobId string `json:"jobId"`
}

type JobStatusReply struct {
	Id          string  `json:"id"`
	Status      string  `json:"status"`
	Progress    int     `json:"progress"`
	Message     string  `json:"message"`
	StartedAt   string  `json:"startedAt"`
	CompletedAt *string `json:"completedAt,omitempty"`
}

type ResultsReply struct {
	Product      model.Product      `json:"product"`
	Reviews      []model.Review     `json:"reviews"`
	Insights     model.Insights     `json:"insights"`
	PriceHistory []model.PricePoint `json:"priceHistory"`
	Sentiment    model.Sentiment    `json:"sentiment"`
}

type HealthReply struct {
	Status string `json:"status"`
}

type ErrorReply struct {
	Message   string  `json:"message"`
	RequestId *string `json:"requestId,omitempty"`
}

func (a AnalyzeReply) Render(w http.ResponseWriter, r *http.Request) error {
	return nil
}

func (s JobStatusReply) Render(w http.ResponseWriter, r *http.Request) error {
	return nil
}

func (s ResultsReply) Render(w http.ResponseWriter, r *http.Request) error {
	return nil
}

func (h HealthReply) Render(w http.ResponseWriter, r *http.Request) error {
	return nil
}

func (e ErrorReply) Render(w http.ResponseWriter, r *http.Request) error {
	return nil
}
