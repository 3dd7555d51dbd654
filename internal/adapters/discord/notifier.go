package discord

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"strings"

	"github.com/bwmarrin/discordgo"

	"sportsnews/internal/domain/entities"
	"sportsnews/internal/ports/output"
)

var _ output.AuditNotifier = (*AuditNotifier)(nil)

// webhookExecutor is the part of *discordgo.Session the notifier uses.
type webhookExecutor interface {
	WebhookExecute(webhookID, token string, wait bool, data *discordgo.WebhookParams, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// AuditNotifier posts audit summaries to a channel webhook.
type AuditNotifier struct {
	session   webhookExecutor
	webhookID string
	token     string
	t         output.T
	locale    string
}

// NewAuditNotifier parses a webhook URL of the form
// https://discord.com/api/webhooks/<id>/<token>.
func NewAuditNotifier(webhookURL string, t output.T, locale string) (*AuditNotifier, error) {
	id, token, err := ParseWebhookURL(webhookURL)
	if err != nil {
		return nil, err
	}
	// Webhook execution needs no bot token.
	s, err := discordgo.New("")
	if err != nil {
		return nil, fmt.Errorf("discord: create session: %w", err)
	}
	return &AuditNotifier{session: s, webhookID: id, token: token, t: t, locale: locale}, nil
}

func (n *AuditNotifier) NotifyAudit(ctx context.Context, report *entities.AuditReport) error {
	embed := BuildAuditEmbed(report, n.t, n.locale)
	_, err := n.session.WebhookExecute(n.webhookID, n.token, false, &discordgo.WebhookParams{
		Username: "newsctl",
		Embeds:   []*discordgo.MessageEmbed{embed},
	}, discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("discord: execute webhook: %w", err)
	}
	log.Println("✅ Audit summary posted to Discord.")
	return nil
}

// ParseWebhookURL extracts the webhook id and token.
func ParseWebhookURL(raw string) (id, token string, err error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return "", "", fmt.Errorf("discord: invalid webhook url: %w", err)
	}
	parts := strings.Split(strings.Trim(u.Path, "/"), "/")
	// api/webhooks/<id>/<token>, optionally api/v10/webhooks/<id>/<token>
	for i := 0; i+2 < len(parts); i++ {
		if parts[i] == "webhooks" && parts[i+1] != "" && parts[i+2] != "" {
			return parts[i+1], parts[i+2], nil
		}
	}
	return "", "", fmt.Errorf("discord: webhook url %q lacks /webhooks/<id>/<token>", raw)
}
