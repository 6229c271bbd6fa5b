package controllers

import (
	"github.com/rs/zerolog"

	"ebaypricing/services"
)

// Controller handles the HTTP surface of the pricing service
type Controller struct {
	pricing        *services.PricingService
	discordService *services.DiscordService
	logger         zerolog.Logger
	serviceName    string
	version        string
}

// Options configures a Controller
type Options struct {
	ServiceName string
	Version     string
	Discord     services.DiscordOptions
}

// NewController creates a new controller instance
func NewController(pricing *services.PricingService, opts Options, logger zerolog.Logger) *Controller {
	return &Controller{
		pricing:        pricing,
		discordService: services.NewDiscordService(pricing, opts.Discord, logger),
		logger:         logger,
		serviceName:    opts.ServiceName,
		version:        opts.Version,
	}
}

// StartServices starts all background services (Discord bot)
func (c *Controller) StartServices(enableDiscord bool) error {
	if !enableDiscord || !c.discordService.IsEnabled() {
		c.logger.Info().Msg("Discord service disabled")
		return nil
	}

	if err := c.discordService.Start(); err != nil {
		c.logger.Error().Err(err).Msg("Failed to start Discord service")
		return err
	}

	return nil
}

// StopServices stops all background services
func (c *Controller) StopServices() error {
	if c.discordService != nil {
		return c.discordService.Stop()
	}
	return nil
}
