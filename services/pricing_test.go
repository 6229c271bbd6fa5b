package services

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ebaypricing/apperr"
	"ebaypricing/models"
)

type fakeFinder struct {
	calls    int
	appID    string
	keywords string
	doc      models.FindingDocument
	err      error
}

func (f *fakeFinder) FindCompletedItems(_ context.Context, appID, keywords string) (models.FindingDocument, error) {
	f.calls++
	f.appID = appID
	f.keywords = keywords
	if f.err != nil {
		return nil, f.err
	}
	doc := models.FindingDocument{}
	for k, v := range f.doc {
		doc[k] = v
	}
	return doc, nil
}

func TestLookup_MissingCredential(t *testing.T) {
	finder := &fakeFinder{}
	svc := NewPricingService(finder)

	requests := []models.PricingRequest{
		{},
		{SearchQuery: "Sony S089"},
		{AnalysisText: "Brand: Sony\nModel: S089", ManualBrand: "Sony", ManualModel: "S089"},
	}
	for _, req := range requests {
		_, err := svc.Lookup(context.Background(), req)
		require.Error(t, err)

		var appErr *apperr.Error
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, apperr.KindValidation, appErr.Kind)
		assert.Equal(t, ErrMissingAppID, appErr.Message)
	}
	assert.Zero(t, finder.calls)
}

func TestLookup_AcceptsLegacyCredentialField(t *testing.T) {
	finder := &fakeFinder{}
	svc := NewPricingService(finder)

	_, err := svc.Lookup(context.Background(), models.PricingRequest{SearchQuery: "Sony", EbayAppID: "legacy"})
	require.NoError(t, err)
	assert.Equal(t, "legacy", finder.appID)

	_, err = svc.Lookup(context.Background(), models.PricingRequest{SearchQuery: "Sony", APIKey: "new", EbayAppID: "legacy"})
	require.NoError(t, err)
	assert.Equal(t, "new", finder.appID)
}

func TestLookup_Unresolved(t *testing.T) {
	finder := &fakeFinder{}
	svc := NewPricingService(finder)

	for _, req := range []models.PricingRequest{
		{APIKey: "app", AnalysisText: "a wooden chair"},
		{APIKey: "app"},
	} {
		_, err := svc.Lookup(context.Background(), req)
		require.Error(t, err)

		var appErr *apperr.Error
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, apperr.KindUnresolved, appErr.Kind)
		assert.Equal(t, ErrUnresolved, appErr.Message)
		assert.Equal(t, ErrUnresolvedDetail, appErr.Detail)
	}
	assert.Zero(t, finder.calls)
}

func TestLookup_AnnotatesDocument(t *testing.T) {
	finder := &fakeFinder{doc: models.FindingDocument{
		"findCompletedItemsResponse": json.RawMessage(`[{"ack":["Success"]}]`),
	}}
	svc := NewPricingService(finder)

	result, err := svc.Lookup(context.Background(), models.PricingRequest{
		APIKey:       "app",
		AnalysisText: "Brand: Sony\nModel: S089",
	})
	require.NoError(t, err)

	assert.Equal(t, "Sony S089", result.Keyword)
	assert.Equal(t, "Sony S089", finder.keywords)
	assert.Equal(t, "app", finder.appID)
	assert.JSONEq(t, `"Sony S089"`, string(result.Document[models.SearchQueryField]))
	assert.JSONEq(t, `[{"ack":["Success"]}]`, string(result.Document["findCompletedItemsResponse"]))
}

func TestLookup_PropagatesFinderError(t *testing.T) {
	finder := &fakeFinder{err: apperr.Upstream("eBay API returned status 503")}
	svc := NewPricingService(finder)

	_, err := svc.Lookup(context.Background(), models.PricingRequest{APIKey: "app", SearchQuery: "Sony"})
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.KindUpstream))
}

func TestLookup_AgainstStubbedUpstream(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Nintendo A1234", r.URL.Query().Get("keywords"))
		w.Write([]byte(`{"findCompletedItemsResponse":[{"ack":["Success"],"searchResult":[{"@count":"0"}]}]}`))
	}))
	defer server.Close()

	svc := NewPricingService(NewEbayClient(server.URL, 0))
	result, err := svc.Lookup(context.Background(), models.PricingRequest{
		APIKey:       "app",
		AnalysisText: "Nintendo console, unit A1234",
	})
	require.NoError(t, err)

	body, err := json.Marshal(result.Document)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"findCompletedItemsResponse":[{"ack":["Success"],"searchResult":[{"@count":"0"}]}],
		"searchQuery":"Nintendo A1234"
	}`, string(body))
}
