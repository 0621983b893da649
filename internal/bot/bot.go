// Package bot routes inbound chat commands to the report service and
// long-polls Telegram for new messages. Unrecognized text is ignored
// silently; only the configured chat is honored.
package bot

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/surfwatch/surfbot/internal/report"
	"github.com/surfwatch/surfbot/internal/telegram"
)

const (
	pollTimeoutSeconds = 30
	errorBackoff       = 5 * time.Second
)

type Bot struct {
	tg      *telegram.Client
	reports *report.Service

	// lastUpdateID is the in-memory cursor that keeps a command from being
	// handled twice within one process lifetime. Nothing persists it.
	lastUpdateID int64
}

func New(tg *telegram.Client, reports *report.Service) *Bot {
	return &Bot{tg: tg, reports: reports}
}

// Listen long-polls for updates until the context is cancelled. Poll
// failures are logged and retried after a short backoff.
func (b *Bot) Listen(ctx context.Context) {
	for {
		if ctx.Err() != nil {
			return
		}

		updates, err := b.tg.GetUpdates(ctx, b.lastUpdateID+1, pollTimeoutSeconds)
		if err != nil {
			log.Error().Err(err).Msg("Polling for updates failed")
			select {
			case <-time.After(errorBackoff):
			case <-ctx.Done():
				return
			}
			continue
		}

		for _, u := range updates {
			b.lastUpdateID = u.UpdateID
			if u.Message == nil {
				continue
			}
			if strconv.FormatInt(u.Message.Chat.ID, 10) != b.tg.ChatID() {
				continue
			}

			text := strings.ToLower(strings.TrimSpace(u.Message.Text))
			b.Handle(ctx, text)
		}
	}
}

// Handle dispatches one inbound command. At most one message goes out per
// command; unknown input produces no reply.
func (b *Bot) Handle(ctx context.Context, text string) {
	switch {
	case text == "/":
		b.tg.Send(ctx, commandList)

	case text == "/surf" || text == "/now":
		b.send(ctx, b.reports.SurfNow(ctx))

	case text == "/week" || text == "/forecast":
		b.send(ctx, b.reports.Daily(ctx))

	case text == "/local":
		b.send(ctx, b.reports.LocalOverview(ctx))

	case strings.HasPrefix(text, "/beach"):
		code := ""
		if parts := strings.Fields(text); len(parts) > 1 {
			code = parts[1]
		}
		b.send(ctx, b.reports.BeachReport(ctx, code))

	case text == "/coast":
		b.send(ctx, b.reports.CoastOverview(ctx))

	case text == "/help":
		b.tg.Send(ctx, helpText)

	case text == "/ping":
		b.tg.Send(ctx, "🏄 SurfBot alive!")
	}
}

func (b *Bot) send(ctx context.Context, msg string) {
	if msg == "" {
		return
	}
	b.tg.Send(ctx, msg)
}

const commandList = `<b>🏄 SurfBot Commands</b>

<b>SURF (LA County)</b>
/surf - Top 10 right now
/week - 7-day forecast

<b>BEACH</b>
/local - Your SoCal favorites
/beach [code] - Specific beach
/coast - CA coast road trip

<b>Beach Codes</b>
Travel: spo, van
Local: pedro, paradise, belmont, fletcher, piedra, oxnard, carp, east

<b>INFO</b>
/help - How to read reports
/ping - Health check`

const helpText = `<b>📖 Reading the Reports</b>

<b>SURF MODE (LA)</b>
• Height in feet
• Period in seconds (16s=powerful, 10s=weak)
• ⭐1-10 quality rating
• calm / light wind / windy

<b>When to Go:</b>
⭐5+ = drop everything
⭐3-4 = worth the drive
⭐2 = meh
⭐0-1 = don't bother

<b>BEACH MODE (Travel)</b>
• Tide times + current level
• Water temp
• Wind speed/direction
• Air temp

Type / for all commands`
