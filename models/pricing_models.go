package models

import "encoding/json"

// PricingRequest is the body accepted by the pricing endpoint.
// Either SearchQuery or AnalysisText drives the keyword; APIKey is always required.
type PricingRequest struct {
	SearchQuery  string `json:"searchQuery,omitempty"`
	AnalysisText string `json:"analysisText,omitempty"`
	ManualBrand  string `json:"manualBrand,omitempty"`
	ManualModel  string `json:"manualModel,omitempty"`
	APIKey       string `json:"apiKey,omitempty" validate:"required"`

	// EbayAppID is the field name older clients send for the credential
	EbayAppID string `json:"ebayAppId,omitempty"`
}

// Credential returns the eBay App ID, preferring apiKey over ebayAppId.
func (r PricingRequest) Credential() string {
	if r.APIKey != "" {
		return r.APIKey
	}
	return r.EbayAppID
}

// FindingDocument is an eBay Finding API response kept as raw JSON fields,
// so upstream values are relayed without re-encoding.
type FindingDocument map[string]json.RawMessage

// SearchQueryField is the field added to relayed documents holding the keyword used.
const SearchQueryField = "searchQuery"

// ListingSummary condenses the sold prices of a Finding API result.
type ListingSummary struct {
	Keyword  string  `json:"keyword"`
	Ack      string  `json:"ack,omitempty"`
	Count    int     `json:"count"`
	Currency string  `json:"currency,omitempty"`
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
	Average  float64 `json:"average"`
}
