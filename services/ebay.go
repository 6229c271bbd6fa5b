package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	"ebaypricing/apperr"
	"ebaypricing/models"
)

// Fixed Finding API request parameters
const (
	findingOperation      = "findCompletedItems"
	findingVersion        = "1.0.0"
	findingFormat         = "JSON"
	findingSortOrder      = "EndTimeSoonest"
	findingEntriesPerPage = "20"
)

// Finder looks up completed listings for a keyword
type Finder interface {
	FindCompletedItems(ctx context.Context, appID, keywords string) (models.FindingDocument, error)
}

// EbayClient calls the eBay Finding API
type EbayClient struct {
	baseURL    string
	httpClient *resty.Client
}

var _ Finder = (*EbayClient)(nil)

// NewEbayClient creates a Finding API client. A zero timeout leaves requests
// bounded only by their context.
func NewEbayClient(baseURL string, timeout time.Duration) *EbayClient {
	client := resty.New().
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", "eBay-Pricing/1.0")
	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &EbayClient{
		baseURL:    baseURL,
		httpClient: client,
	}
}

// FindingParams returns the query parameters of a sold, used-condition
// completed-items search.
func FindingParams(appID, keywords string) map[string]string {
	return map[string]string{
		"OPERATION-NAME":                 findingOperation,
		"SERVICE-VERSION":                findingVersion,
		"SECURITY-APPNAME":               appID,
		"RESPONSE-DATA-FORMAT":           findingFormat,
		"REST-PAYLOAD":                   "",
		"keywords":                       keywords,
		"itemFilter(0).name":             "Condition",
		"itemFilter(0).value":            "Used",
		"itemFilter(1).name":             "SoldItemsOnly",
		"itemFilter(1).value":            "true",
		"sortOrder":                      findingSortOrder,
		"paginationInput.entriesPerPage": findingEntriesPerPage,
	}
}

// FindCompletedItems runs a completed-items search and returns the decoded
// response document. Any non-2xx status is an error. Keywords are sent
// unchanged.
func (c *EbayClient) FindCompletedItems(ctx context.Context, appID, keywords string) (models.FindingDocument, error) {
	if appID == "" {
		return nil, apperr.Validation(ErrMissingAppID)
	}
	if keywords == "" {
		return nil, apperr.Unresolved(ErrUnresolved).WithDetail(ErrUnresolvedDetail)
	}

	start := time.Now()
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetQueryParams(FindingParams(appID, keywords)).
		Get(c.baseURL)
	UpstreamDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		return nil, apperr.Wrap(apperr.KindUpstream, "eBay request failed", err).WithOp("FindCompletedItems")
	}

	if resp.StatusCode() < http.StatusOK || resp.StatusCode() >= http.StatusMultipleChoices {
		return nil, apperr.Upstream(fmt.Sprintf("eBay API returned status %d", resp.StatusCode()))
	}

	var doc models.FindingDocument
	if err := json.Unmarshal(resp.Body(), &doc); err != nil {
		return nil, fmt.Errorf("failed to parse eBay response: %w", err)
	}
	if doc == nil {
		return nil, fmt.Errorf("failed to parse eBay response: expected a JSON object")
	}

	return doc, nil
}
