package pipeline

import (
	"math"
	"math/rand"
	"time"

	"github.com/trendlens/insight-api/internal/store/model"
)

const (
	priceHistoryDays  = 30
	basePrice         = 299
	priceJitterSpread = 50
)

// GeneratePriceHistory produces one sample per day for the trailing 30 days
// plus today, around the base price with bounded random jitter.
func GeneratePriceHistory(now time.Time) []model.PricePoint {
	history := make([]model.PricePoint, 0, priceHistoryDays+1)

	for i := priceHistoryDays; i >= 0; i-- {
		variance := rand.Float64()*priceJitterSpread - priceJitterSpread/2
		history = append(history, model.PricePoint{
			Date:  now.AddDate(0, 0, -i),
			Price: int(math.Round(basePrice + variance)),
		})
	}

	return history
}

// CalculateSentiment tallies review ratings into sentiment buckets:
// rating >= 4 is positive, rating 3 is neutral, anything lower negative.
func CalculateSentiment(reviews []model.Review) model.Sentiment {
	var sentiment model.Sentiment

	for _, review := range reviews {
		switch {
		case review.Rating >= 4:
			sentiment.Positive++
		case review.Rating == 3:
			sentiment.Neutral++
		default:
			sentiment.Negative++
		}
	}

	return sentiment
}
