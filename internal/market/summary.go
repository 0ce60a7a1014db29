package market

import (
	"math"
	"strconv"

	"github.com/agrisaarthi/assistant-platform/internal/model"
)

// Summarize derives the dashboard numbers from a set of price records:
// rounded average modal price, lowest minimum, highest maximum. Records
// with unparseable prices contribute zero, matching the upstream's
// all-strings schema tolerance.
func Summarize(records []model.MarketRecord) model.MarketSummary {
	if len(records) == 0 {
		return model.MarketSummary{}
	}

	var modalSum float64
	lowest := math.Inf(1)
	highest := math.Inf(-1)

	for _, rec := range records {
		modalSum += parsePrice(rec.ModalPrice)
		if min := parsePrice(rec.MinPrice); min < lowest {
			lowest = min
		}
		if max := parsePrice(rec.MaxPrice); max > highest {
			highest = max
		}
	}

	return model.MarketSummary{
		AverageModalPrice: int(math.Round(modalSum / float64(len(records)))),
		LowestMinPrice:    lowest,
		HighestMaxPrice:   highest,
		Markets:           len(records),
	}
}

func parsePrice(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}
