package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"ebaypricing/apperr"
	"ebaypricing/models"
)

// Error texts returned to callers
const (
	ErrMissingAppID     = "Missing eBay App ID"
	ErrUnresolved       = "Could not determine product from analysis"
	ErrUnresolvedDetail = "Please provide brand and model manually in the form"
)

// LookupResult is a relayed Finding API document and the keyword that produced it
type LookupResult struct {
	Keyword  string
	Document models.FindingDocument
}

// PricingService resolves a search keyword and fetches sold listings for it
type PricingService struct {
	finder   Finder
	validate *validator.Validate
}

// NewPricingService creates a pricing service backed by finder
func NewPricingService(finder Finder) *PricingService {
	return &PricingService{
		finder:   finder,
		validate: validator.New(),
	}
}

// Lookup validates req, resolves its keyword and queries the marketplace.
// The returned document carries the keyword under models.SearchQueryField.
func (s *PricingService) Lookup(ctx context.Context, req models.PricingRequest) (*LookupResult, error) {
	req.APIKey = req.Credential()
	if err := s.validate.Struct(req); err != nil {
		LookupsTotal.WithLabelValues(OutcomeMissingCredential).Inc()
		return nil, apperr.Wrap(apperr.KindValidation, ErrMissingAppID, err)
	}

	keyword := ResolveKeyword(req.SearchQuery, req.AnalysisText, req.ManualBrand, req.ManualModel)
	if keyword == "" {
		LookupsTotal.WithLabelValues(OutcomeUnresolved).Inc()
		return nil, apperr.Unresolved(ErrUnresolved).WithDetail(ErrUnresolvedDetail)
	}

	zerolog.Ctx(ctx).Info().Str("keyword", keyword).Msg("Searching eBay")

	doc, err := s.finder.FindCompletedItems(ctx, req.APIKey, keyword)
	if err != nil {
		if apperr.Is(err, apperr.KindUpstream) {
			LookupsTotal.WithLabelValues(OutcomeUpstreamError).Inc()
		} else {
			LookupsTotal.WithLabelValues(OutcomeError).Inc()
		}
		return nil, err
	}

	encoded, err := json.Marshal(keyword)
	if err != nil {
		LookupsTotal.WithLabelValues(OutcomeError).Inc()
		return nil, fmt.Errorf("failed to encode search query: %w", err)
	}
	doc[models.SearchQueryField] = encoded

	LookupsTotal.WithLabelValues(OutcomeOK).Inc()
	return &LookupResult{Keyword: keyword, Document: doc}, nil
}
