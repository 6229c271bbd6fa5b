package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog"

	"ebaypricing/apperr"
	"ebaypricing/models"
)

// discordMessageLimit is Discord's maximum message length
const discordMessageLimit = 2000

// DiscordOptions configures the Discord price bot
type DiscordOptions struct {
	Token         string
	CommandPrefix string
	AppID         string // eBay App ID used for every bot lookup
}

// DiscordService answers price commands in Discord channels
type DiscordService struct {
	session       *discordgo.Session
	pricing       *PricingService
	appID         string
	commandPrefix string
	enabled       bool
	startTime     time.Time
	logger        zerolog.Logger
}

// NewDiscordService creates a Discord service. It stays disabled when the bot
// token or eBay App ID is missing.
func NewDiscordService(pricing *PricingService, opts DiscordOptions, logger zerolog.Logger) *DiscordService {
	commandPrefix := opts.CommandPrefix
	if commandPrefix == "" {
		commandPrefix = "!price "
	}

	service := &DiscordService{
		pricing:       pricing,
		appID:         opts.AppID,
		commandPrefix: commandPrefix,
		startTime:     time.Now(),
		logger:        logger.With().Str("component", "discord").Logger(),
	}

	if opts.Token == "" {
		service.logger.Info().Msg("Discord bot disabled: DISCORD_BOT_TOKEN not set")
		return service
	}
	if opts.AppID == "" {
		service.logger.Info().Msg("Discord bot disabled: EBAY_APP_ID not set")
		return service
	}

	session, err := discordgo.New("Bot " + opts.Token)
	if err != nil {
		service.logger.Error().Err(err).Msg("Error creating Discord session")
		return service
	}

	service.session = session

	session.AddHandler(func(s *discordgo.Session, event *discordgo.Ready) {
		service.logger.Info().
			Str("user", event.User.Username).
			Int("guilds", len(event.Guilds)).
			Msg("Bot is online")
	})
	session.AddHandler(service.messageCreate)

	session.Identify.Intents = discordgo.IntentsGuildMessages | discordgo.IntentsMessageContent

	service.enabled = true
	service.logger.Info().Str("prefix", commandPrefix).Msg("Discord service initialized")

	return service
}

// Start opens the Discord gateway connection
func (d *DiscordService) Start() error {
	if !d.enabled {
		return fmt.Errorf("Discord service not enabled (missing bot token or eBay App ID)")
	}

	if err := d.session.Open(); err != nil {
		return fmt.Errorf("error opening Discord connection: %w", err)
	}

	d.logger.Info().Msgf("Discord bot started, use '%s<product>' in Discord", d.commandPrefix)
	return nil
}

// Stop closes the Discord connection
func (d *DiscordService) Stop() error {
	if d.session != nil {
		return d.session.Close()
	}
	return nil
}

// ParsePriceCommand extracts the product query from a bot command.
// ok is false when content is not addressed to the bot.
func ParsePriceCommand(content, prefix string) (query string, ok bool) {
	if !strings.HasPrefix(content, prefix) {
		// "!price" with nothing after it still addresses the bot
		if strings.TrimSpace(content) == strings.TrimSpace(prefix) {
			return "", true
		}
		return "", false
	}
	return strings.TrimSpace(content[len(prefix):]), true
}

func (d *DiscordService) messageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot {
		return
	}

	query, ok := ParsePriceCommand(m.Content, d.commandPrefix)
	if !ok {
		return
	}
	if query == "" {
		d.sendMessage(s, m.ChannelID, fmt.Sprintf("Please provide a product after `%s`", strings.TrimSpace(d.commandPrefix)))
		return
	}

	if err := s.ChannelTyping(m.ChannelID); err != nil {
		d.logger.Debug().Err(err).Str("channel_id", m.ChannelID).Msg("Error sending Discord typing indicator")
	}

	logger := d.logger.With().
		Str("channel_id", m.ChannelID).
		Str("author_id", m.Author.ID).
		Logger()
	ctx := logger.WithContext(context.Background())

	d.sendMessage(s, m.ChannelID, d.answer(ctx, query))
}

// answer looks up query and renders the reply text
func (d *DiscordService) answer(ctx context.Context, query string) string {
	result, err := d.pricing.Lookup(ctx, models.PricingRequest{
		SearchQuery: query,
		APIKey:      d.appID,
	})
	if err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Str("query", query).Msg("Discord price lookup failed")
		if apperr.Is(err, apperr.KindUpstream) {
			return "eBay is not answering right now, try again later."
		}
		return "Sorry, I could not look that up."
	}

	summary, err := SummarizeListings(result.Keyword, result.Document)
	if err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Str("query", query).Msg("Could not summarize listings")
		return "Sorry, eBay returned something I could not read."
	}

	return FormatSummary(summary)
}

// sendMessage sends a message to Discord, handling length limits
func (d *DiscordService) sendMessage(s *discordgo.Session, channelID, message string) {
	if len(message) <= discordMessageLimit {
		if _, err := s.ChannelMessageSend(channelID, message); err != nil {
			d.logger.Error().Err(err).Msg("Error sending Discord message")
		}
		return
	}

	chunks := splitMessage(message, discordMessageLimit-100)
	for i, chunk := range chunks {
		if i > 0 {
			chunk = fmt.Sprintf("...continued:\n%s", chunk)
		}
		if i < len(chunks)-1 {
			chunk = chunk + "\n..."
		}

		if _, err := s.ChannelMessageSend(channelID, chunk); err != nil {
			d.logger.Error().Err(err).Msg("Error sending Discord message chunk")
		}

		time.Sleep(200 * time.Millisecond)
	}
}

// splitMessage splits a message into chunks respecting word boundaries
func splitMessage(message string, maxLength int) []string {
	if len(message) <= maxLength {
		return []string{message}
	}

	var chunks []string
	for len(message) > maxLength {
		splitIndex := maxLength
		if spaceIndex := strings.LastIndex(message[:maxLength], " "); spaceIndex > maxLength/2 {
			splitIndex = spaceIndex
		}

		chunks = append(chunks, message[:splitIndex])
		message = strings.TrimPrefix(message[splitIndex:], " ")
	}

	if len(message) > 0 {
		chunks = append(chunks, message)
	}

	return chunks
}

// IsEnabled returns whether the Discord service is enabled
func (d *DiscordService) IsEnabled() bool {
	return d.enabled
}

// GetStatus returns the current status of the Discord service
func (d *DiscordService) GetStatus() *models.DiscordStatus {
	status := &models.DiscordStatus{
		Enabled:       d.enabled,
		CommandPrefix: d.commandPrefix,
		Uptime:        time.Since(d.startTime).Round(time.Second).String(),
	}

	switch {
	case d.enabled && d.session != nil && d.session.State != nil && d.session.State.User != nil:
		status.Status = "connected"
		status.User = &models.DiscordUser{
			ID:       d.session.State.User.ID,
			Username: d.session.State.User.Username,
		}
		status.Guilds = len(d.session.State.Guilds)
	case d.enabled:
		status.Status = "initialized_not_started"
	default:
		status.Status = "disabled"
		status.Note = "Set DISCORD_BOT_TOKEN and EBAY_APP_ID to enable"
	}

	return status
}
