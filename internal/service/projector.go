package service

import (
	"time"

	"github.com/thoas/go-funk"

	"github.com/trendlens/insight-api/internal/store/model"
)

type TimeRange string

const (
	RangeOneMonth  TimeRange = "1m"
	RangeSixMonths TimeRange = "6m"
	RangeLifetime  TimeRange = "life"
)

var knownRanges = []TimeRange{RangeOneMonth, RangeSixMonths, RangeLifetime}

// NormalizeRange maps unrecognized or absent values to the one-month
// window. A bad range is a permissive fallback, not an error.
func NormalizeRange(s string) TimeRange {
	r := TimeRange(s)
	if !funk.Contains(knownRanges, r) {
		return RangeOneMonth
	}
	return r
}

// Project derives a view of a completed job's results with the price
// history restricted to the requested lookback window, measured from the
// current time on every call. The stored bundle is never mutated.
func Project(results *model.ResultBundle, timeRange TimeRange) model.ResultBundle {
	projected := *results

	now := time.Now()
	switch timeRange {
	case RangeOneMonth:
		projected.PriceHistory = filterSince(results.PriceHistory, now.AddDate(0, -1, 0))
	case RangeSixMonths:
		projected.PriceHistory = filterSince(results.PriceHistory, now.AddDate(0, -6, 0))
	case RangeLifetime:
		projected.PriceHistory = append([]model.PricePoint(nil), results.PriceHistory...)
	}

	return projected
}

func filterSince(history []model.PricePoint, since time.Time) []model.PricePoint {
	filtered := make([]model.PricePoint, 0, len(history))
	for _, point := range history {
		if !point.Date.Before(since) {
			filtered = append(filtered, point)
		}
	}
	return filtered
}
