package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"ebaypricing/config"
	"ebaypricing/controllers"
	"ebaypricing/logging"
	"ebaypricing/services"
	"ebaypricing/utils"
)

var version = "1.0.0"

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pricing",
	Short: "eBay sold-listing pricing lookup",
	Long: `pricing looks up recently sold, used eBay listings for a product.

The product is given as a search query, or inferred from a free-text
description by extracting a brand and model number.

Examples:
  pricing serve --discord
  pricing lookup --app-id MyApp-123 "Sony S089"
  pricing lookup --text-file analysis.txt --brand Sony`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP pricing service",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().Bool("discord", false, "Start the Discord price bot alongside the HTTP server")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(lookupCmd)
}

// setup loads .env files and configuration and installs the global logger
func setup() (*config.Config, zerolog.Logger, error) {
	if err := utils.LoadEnvWithFallback(); err != nil {
		return nil, zerolog.Logger{}, err
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, zerolog.Logger{}, err
	}

	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return nil, zerolog.Logger{}, fmt.Errorf("configure logger: %w", err)
	}
	log.Logger = logger

	return cfg, logger, nil
}

// discordRequested reports whether the bot should start, warning when the
// flag is set without the credentials it needs
func discordRequested(cfg *config.Config, requested bool, logger zerolog.Logger) bool {
	if requested && !cfg.DiscordEnabled() {
		logger.Warn().Msg("Discord service requested but not configured (DISCORD_BOT_TOKEN and EBAY_APP_ID are required)")
		return false
	}
	return requested
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, logger, err := setup()
	if err != nil {
		return err
	}
	requested, _ := cmd.Flags().GetBool("discord")
	enableDiscord := discordRequested(cfg, requested, logger)

	pricing := services.NewPricingService(services.NewEbayClient(cfg.FindingURL, cfg.EbayTimeout))
	controller := controllers.NewController(pricing, controllers.Options{
		ServiceName: cfg.ServiceName,
		Version:     version,
		Discord: services.DiscordOptions{
			Token:         cfg.DiscordToken,
			CommandPrefix: cfg.DiscordPrefix,
			AppID:         cfg.EbayAppID,
		},
	}, logger)

	logger.Info().
		Str("environment", cfg.Environment).
		Str("finding_url", cfg.FindingURL).
		Bool("discord", enableDiscord).
		Msg("eBay pricing service configured")

	return NewServer(cfg.Addr(), controller, cfg.ShutdownTimeout, logger).Run(cmd.Context(), enableDiscord)
}
