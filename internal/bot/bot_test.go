package bot

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/surfwatch/surfbot/internal/commute"
	"github.com/surfwatch/surfbot/internal/config"
	"github.com/surfwatch/surfbot/internal/forecast"
	"github.com/surfwatch/surfbot/internal/report"
	"github.com/surfwatch/surfbot/internal/telegram"
	"github.com/surfwatch/surfbot/internal/tide"
	"github.com/surfwatch/surfbot/internal/weather"
	"github.com/surfwatch/surfbot/pkg/httpx"
)

// telegramStub records outbound sendMessage texts and serves canned
// getUpdates responses.
type telegramStub struct {
	mu       sync.Mutex
	sent     []string
	updates  []string // JSON result arrays, one per poll
	pollSeen int
	cancel   context.CancelFunc
}

func (s *telegramStub) handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		defer s.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		switch {
		case strings.HasSuffix(r.URL.Path, "/sendMessage"):
			var req struct {
				Text string `json:"text"`
			}
			_ = json.NewDecoder(r.Body).Decode(&req)
			s.sent = append(s.sent, req.Text)
			fmt.Fprint(w, `{"ok":true}`)

		case strings.HasSuffix(r.URL.Path, "/getUpdates"):
			if s.pollSeen < len(s.updates) {
				fmt.Fprintf(w, `{"ok":true,"result":%s}`, s.updates[s.pollSeen])
				s.pollSeen++
				return
			}
			if s.cancel != nil {
				s.cancel()
			}
			fmt.Fprint(w, `{"ok":true,"result":[]}`)
		}
	}
}

func (s *telegramStub) sentTexts() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.sent...)
}

func newTestBot(t *testing.T, stub *telegramStub) *Bot {
	t.Helper()
	server := httptest.NewServer(stub.handler())
	t.Cleanup(server.Close)

	tg := telegram.NewClient(httpx.New(httpx.Options{BaseURL: server.URL}), "test-token", "12345")

	// The safe commands exercised here never reach the fetchers, so the
	// report service can point at the same stub server.
	cfg := config.New(config.WithTelegram("test-token", "12345"))
	httpClient := httpx.New(httpx.Options{BaseURL: server.URL})
	reports := report.NewService(cfg,
		forecast.NewService(httpClient),
		weather.NewClient(httpClient),
		tide.NewClient(httpClient),
		commute.NewService(httpClient, "", ""),
	)

	return New(tg, reports)
}

func TestHandlePing(t *testing.T) {
	stub := &telegramStub{}
	b := newTestBot(t, stub)

	b.Handle(context.Background(), "/ping")

	require.Len(t, stub.sentTexts(), 1)
	assert.Equal(t, "🏄 SurfBot alive!", stub.sentTexts()[0])
}

func TestHandleStaticReplies(t *testing.T) {
	stub := &telegramStub{}
	b := newTestBot(t, stub)

	b.Handle(context.Background(), "/")
	b.Handle(context.Background(), "/help")

	sent := stub.sentTexts()
	require.Len(t, sent, 2)
	assert.Contains(t, sent[0], "SurfBot Commands")
	assert.Contains(t, sent[1], "Reading the Reports")
}

func TestHandleUnknownInputIsSilent(t *testing.T) {
	stub := &telegramStub{}
	b := newTestBot(t, stub)

	b.Handle(context.Background(), "hello there")
	b.Handle(context.Background(), "/unknown")
	b.Handle(context.Background(), "")

	assert.Empty(t, stub.sentTexts())
}

func TestHandleBeachUnknownCode(t *testing.T) {
	stub := &telegramStub{}
	b := newTestBot(t, stub)

	b.Handle(context.Background(), "/beach xyz")

	sent := stub.sentTexts()
	require.Len(t, sent, 1)
	assert.Contains(t, sent[0], "Unknown location: xyz")
}

func TestHandleBareBeachListsCodes(t *testing.T) {
	stub := &telegramStub{}
	b := newTestBot(t, stub)

	b.Handle(context.Background(), "/beach")

	sent := stub.sentTexts()
	require.Len(t, sent, 1)
	assert.Contains(t, sent[0], "Beach Locations")
}

func TestListenFiltersChatAndAdvancesCursor(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	stub := &telegramStub{
		cancel: cancel,
		updates: []string{
			`[{"update_id":7,"message":{"text":" /PING ","chat":{"id":12345}}},
			  {"update_id":8,"message":{"text":"/ping","chat":{"id":99999}}},
			  {"update_id":9}]`,
		},
	}
	b := newTestBot(t, stub)

	b.Listen(ctx)

	sent := stub.sentTexts()
	require.Len(t, sent, 1, "only the configured chat gets a reply")
	assert.Equal(t, "🏄 SurfBot alive!", sent[0])
	assert.Equal(t, int64(9), b.lastUpdateID, "the cursor covers every update, replied or not")
}
