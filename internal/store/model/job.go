package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type JobStatus string

// Job status constants
const (
	JobStatusPending   JobStatus = "pending"
	JobStatusRunning   JobStatus = "running"
	JobStatusCompleted JobStatus = "completed"
	JobStatusFailed    JobStatus = "failed"
)

// Job is one analysis request and its evolving state. The store owns every
// record; the pipeline mutates records only through Store.Update.
type Job struct {
	ID          uuid.UUID
	SourceURL   string
	Status      JobStatus
	Progress    int
	Message     string
	StartedAt   time.Time
	CompletedAt *time.Time
	Error       string
	Results     *ResultBundle
}

// Terminal reports whether the job reached a final state.
func (j Job) Terminal() bool {
	return j.Status == JobStatusCompleted || j.Status == JobStatusFailed
}

func (j Job) String() string {
	val, _ := json.Marshal(j)
	return string(val)
}

// ResultBundle is the payload attached to a completed job.
type ResultBundle struct {
	Product      Product      `json:"product"`
	Reviews      []Review     `json:"reviews"`
	Insights     Insights     `json:"insights"`
	PriceHistory []PricePoint `json:"priceHistory"`
	Sentiment    Sentiment    `json:"sentiment"`
}

// Product is a snapshot of the scraped product attributes.
type Product struct {
	Title         string  `json:"title"`
	Price         int     `json:"price"`
	OriginalPrice int     `json:"originalPrice"`
	Discount      int     `json:"discount"`
	Rating        float64 `json:"rating"`
	ReviewCount   int     `json:"reviewCount"`
	Seller        string  `json:"seller"`
	Category      string  `json:"category"`
	Stock         string  `json:"stock"`
	Image         string  `json:"image"`
}

type Review struct {
	Text     string `json:"text"`
	Rating   int    `json:"rating"`
	Date     string `json:"date"`
	Verified bool   `json:"verified"`
}

// Insights holds the derived narrative fields.
type Insights struct {
	Summary          string   `json:"summary"`
	BuyingStyle      string   `json:"buyingStyle"`
	SalesBehavior    string   `json:"salesBehavior"`
	KeyTopics        []string `json:"keyTopics"`
	EstimatedRevenue int      `json:"estimatedRevenue"`
}

type PricePoint struct {
	Date  time.Time `json:"date"`
	Price int       `json:"price"`
}

type Sentiment struct {
	Positive int `json:"positive"`
	Neutral  int `json:"neutral"`
	Negative int `json:"negative"`
}
