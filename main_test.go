package main

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ebaypricing/config"
	"ebaypricing/controllers"
	"ebaypricing/services"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("LOG_LEVEL", "disabled")

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestLookupCommand_DryRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "analysis.txt")
	require.NoError(t, os.WriteFile(path, []byte("Brand: Sony\nModel: S089\n"), 0o600))

	out, err := runCLI(t, "lookup", "--dry-run", "--text-file", path)
	require.NoError(t, err)
	assert.Equal(t, "Sony S089\n", out)
}

func TestLookupCommand_Summary(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "cli-app", r.URL.Query().Get("SECURITY-APPNAME"))
		w.Write([]byte(`{"findCompletedItemsResponse":[{"ack":["Success"],"searchResult":[{"item":[
			{"sellingStatus":[{"currentPrice":[{"@currencyId":"USD","__value__":"99.99"}]}]}
		]}]}]}`))
	}))
	defer upstream.Close()
	t.Setenv("EBAY_FINDING_URL", upstream.URL)

	out, err := runCLI(t, "lookup", "--dry-run=false", "--text-file", "", "--app-id", "cli-app", "Dell", "XPS")
	require.NoError(t, err)
	assert.Equal(t, "1 sold listings for \"Dell XPS\": avg 99.99 USD (min 99.99, max 99.99)\n", out)
}

func TestServerRun_ShutsDownOnCancel(t *testing.T) {
	pricing := services.NewPricingService(services.NewEbayClient("http://127.0.0.1:0", 0))
	controller := controllers.NewController(pricing, controllers.Options{ServiceName: "ebay-pricing"}, zerolog.Nop())
	server := NewServer("127.0.0.1:0", controller, time.Second, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- server.Run(ctx, false) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestDiscordRequested(t *testing.T) {
	var logs bytes.Buffer
	logger := zerolog.New(&logs)
	configured := &config.Config{DiscordToken: "token", EbayAppID: "app"}

	assert.True(t, discordRequested(configured, true, logger))
	assert.False(t, discordRequested(configured, false, logger))
	assert.Empty(t, logs.String())

	assert.False(t, discordRequested(&config.Config{DiscordToken: "token"}, true, logger))
	assert.Contains(t, logs.String(), "Discord service requested but not configured")
}
