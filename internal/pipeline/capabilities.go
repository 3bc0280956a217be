package pipeline

import (
	"context"

	"github.com/trendlens/insight-api/internal/store/model"
)

// Scraper acquires product data from a marketplace page. The shipped
// implementation returns canned data; a real collector can be substituted
// without touching the runner's state machine.
type Scraper interface {
	FetchProduct(ctx context.Context, url string) (model.Product, error)
	FetchReviews(ctx context.Context, url string) ([]model.Review, error)
}

// Analyzer derives narrative insights from product data and reviews.
type Analyzer interface {
	DeriveInsights(ctx context.Context, product model.Product, reviews []model.Review) (model.Insights, error)
}

type MockScraper struct{}

func NewMockScraper() *MockScraper {
	return &MockScraper{}
}

func (s *MockScraper) FetchProduct(ctx context.Context, url string) (model.Product, error) {
	return model.Product{
		Title:         "Premium Cotton T-Shirt for Men",
		Price:         299,
		OriginalPrice: 999,
		Discount:      70,
		Rating:        4.3,
		ReviewCount:   1247,
		Seller:        "Fashion Hub",
		Category:      "Men's Clothing",
		Stock:         "In Stock",
		Image:         "https://images.meesho.com/images/products/example.jpg",
	}, nil
}

func (s *MockScraper) FetchReviews(ctx context.Context, url string) ([]model.Review, error) {
	return []model.Review{
		{Text: "Great quality! Worth the price. Fits perfectly.", Rating: 5, Date: "2025-10-15", Verified: true},
		{Text: "Good product but color slightly different from image.", Rating: 4, Date: "2025-10-10", Verified: true},
		{Text: "Material is nice but size runs small.", Rating: 3, Date: "2025-10-05", Verified: false},
		{Text: "Excellent! Buying again for my brother.", Rating: 5, Date: "2025-09-28", Verified: true},
		{Text: "Delivery was fast. Product quality is decent.", Rating: 4, Date: "2025-09-20", Verified: true},
	}, nil
}

type MockAnalyzer struct{}

func NewMockAnalyzer() *MockAnalyzer {
	return &MockAnalyzer{}
}

func (a *MockAnalyzer) DeriveInsights(ctx context.Context, product model.Product, reviews []model.Review) (model.Insights, error) {
	return model.Insights{
		Summary:          "Overall this product is trending positively with consistent pricing and repeat purchases. Customers appreciate the quality and fit.",
		BuyingStyle:      "Mix of first-time and repeat buyers, with some bulk purchases for gifting",
		SalesBehavior:    "Steady upward trend with seasonal peaks in festive months",
		KeyTopics:        []string{"Quality", "Fit", "Delivery", "Value for Money", "Color Accuracy"},
		EstimatedRevenue: 372750,
	}, nil
}
