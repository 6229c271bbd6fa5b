package services

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"ebaypricing/models"
)

const findingResponseField = "findCompletedItemsResponse"

// findingResponse mirrors the parts of a findCompletedItems JSON response we read.
// The Finding API wraps every value in a single-element array.
type findingResponse struct {
	Ack          []string `json:"ack"`
	ErrorMessage []struct {
		Error []struct {
			Message []string `json:"message"`
		} `json:"error"`
	} `json:"errorMessage"`
	SearchResult []struct {
		Item []struct {
			SellingStatus []struct {
				CurrentPrice []struct {
					CurrencyID string `json:"@currencyId"`
					Value      string `json:"__value__"`
				} `json:"currentPrice"`
			} `json:"sellingStatus"`
		} `json:"item"`
	} `json:"searchResult"`
}

// SummarizeListings reduces a Finding API document to sold-price statistics.
// Items without a parseable price are skipped.
func SummarizeListings(keyword string, doc models.FindingDocument) (*models.ListingSummary, error) {
	summary := &models.ListingSummary{Keyword: keyword}

	raw, ok := doc[findingResponseField]
	if !ok {
		return summary, nil
	}

	var responses []findingResponse
	if err := json.Unmarshal(raw, &responses); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", findingResponseField, err)
	}
	if len(responses) == 0 {
		return summary, nil
	}

	resp := responses[0]
	if len(resp.Ack) > 0 {
		summary.Ack = resp.Ack[0]
	}
	if summary.Ack == "Failure" {
		return nil, fmt.Errorf("eBay API reported failure: %s", resp.firstErrorMessage())
	}
	if len(resp.SearchResult) == 0 {
		return summary, nil
	}

	var total float64
	summary.Min = math.Inf(1)
	for _, item := range resp.SearchResult[0].Item {
		if len(item.SellingStatus) == 0 || len(item.SellingStatus[0].CurrentPrice) == 0 {
			continue
		}
		price := item.SellingStatus[0].CurrentPrice[0]
		value, err := strconv.ParseFloat(price.Value, 64)
		if err != nil {
			continue
		}

		if summary.Currency == "" {
			summary.Currency = price.CurrencyID
		}
		summary.Count++
		total += value
		summary.Min = math.Min(summary.Min, value)
		summary.Max = math.Max(summary.Max, value)
	}

	if summary.Count == 0 {
		summary.Min = 0
		return summary, nil
	}
	summary.Average = math.Round(total/float64(summary.Count)*100) / 100

	return summary, nil
}

func (r findingResponse) firstErrorMessage() string {
	if len(r.ErrorMessage) > 0 && len(r.ErrorMessage[0].Error) > 0 && len(r.ErrorMessage[0].Error[0].Message) > 0 {
		return r.ErrorMessage[0].Error[0].Message[0]
	}
	return "unknown error"
}

// FormatSummary renders a summary as a short human readable report.
func FormatSummary(s *models.ListingSummary) string {
	if s.Count == 0 {
		return fmt.Sprintf("No sold listings found for %q", s.Keyword)
	}
	return fmt.Sprintf("%d sold listings for %q: avg %.2f %s (min %.2f, max %.2f)",
		s.Count, s.Keyword, s.Average, s.Currency, s.Min, s.Max)
}
