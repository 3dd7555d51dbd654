package discord

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"sportsnews/internal/domain/entities"
	"sportsnews/internal/ports/output"
)

const (
	colorComplete = 0x57F287
	colorMissing  = 0xED4245

	// Discord rejects embeds above these limits.
	maxFields     = 25
	maxFieldValue = 1024
	maxKeysShown  = 15
)

// BuildAuditEmbed renders an audit report as a single embed: one field per
// language with gaps, listing the first missing keys.
func BuildAuditEmbed(report *entities.AuditReport, t output.T, locale string) *discordgo.MessageEmbed {
	missing := report.MissingCount()

	embed := &discordgo.MessageEmbed{
		Title: t.T(locale, "audit_header", map[string]any{
			"Reference": report.Reference,
			"Count":     report.ReferenceKeys,
		}),
		Color: colorComplete,
	}
	if missing == 0 {
		embed.Description = t.T(locale, "audit_summary_ok", nil)
		return embed
	}

	embed.Color = colorMissing
	embed.Description = t.T(locale, "audit_summary_missing", map[string]any{"Count": missing})
	for _, l := range report.Languages {
		if len(l.Missing) == 0 {
			continue
		}
		if len(embed.Fields) == maxFields {
			break
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   t.T(locale, "audit_language_missing", map[string]any{"Language": l.Language, "Count": len(l.Missing)}),
			Value:  formatKeys(l.Missing),
			Inline: false,
		})
	}
	return embed
}

func formatKeys(keys []string) string {
	var b strings.Builder
	for i, k := range keys {
		if i == maxKeysShown {
			b.WriteString(fmt.Sprintf("… +%d", len(keys)-i))
			break
		}
		line := fmt.Sprintf("`%s`\n", k)
		if b.Len()+len(line) > maxFieldValue-16 {
			b.WriteString(fmt.Sprintf("… +%d", len(keys)-i))
			break
		}
		b.WriteString(line)
	}
	return strings.TrimRight(b.String(), "\n")
}
