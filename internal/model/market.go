package model

import (
	"time"
)

// MarketRecord is one mandi price row from the data.gov.in commodity
// price resource. The upstream API returns every field as a string.
type MarketRecord struct {
	State       string `json:"state"`
	District    string `json:"district"`
	Market      string `json:"market"`
	Commodity   string `json:"commodity"`
	Variety     string `json:"variety"`
	Grade       string `json:"grade"`
	ArrivalDate string `json:"arrival_date"`
	MinPrice    string `json:"min_price"`
	MaxPrice    string `json:"max_price"`
	ModalPrice  string `json:"modal_price"`
}

// MarketResponse is the upstream API envelope.
type MarketResponse struct {
	Status  string         `json:"status"`
	Total   int            `json:"total"`
	Records []MarketRecord `json:"records"`
}

// MarketSummary is a derived view over a set of market records.
type MarketSummary struct {
	AverageModalPrice int     `json:"average_modal_price"`
	LowestMinPrice    float64 `json:"lowest_min_price"`
	HighestMaxPrice   float64 `json:"highest_max_price"`
	Markets           int     `json:"markets"`
}

// MarketPricesResponse is what the prices endpoint returns to clients.
type MarketPricesResponse struct {
	Records   []MarketRecord `json:"records"`
	Summary   MarketSummary  `json:"summary"`
	FetchedAt time.Time      `json:"fetched_at"`
}
