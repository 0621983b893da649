// Package telegram is a minimal Telegram Bot API client: push a formatted
// HTML message to one chat, long-poll for inbound commands. Nothing else of
// the API surface is needed.
package telegram

import (
	"context"
	"fmt"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog/log"
)

type Client struct {
	client *resty.Client
	token  string
	chatID string
}

func NewClient(client *resty.Client, token, chatID string) *Client {
	return &Client{
		client: client,
		token:  token,
		chatID: chatID,
	}
}

// ChatID is the configured destination chat, as Telegram sends it back in
// updates.
func (c *Client) ChatID() string {
	return c.chatID
}

// SendMessage delivers one HTML-formatted message to the configured chat.
func (c *Client) SendMessage(ctx context.Context, text string) error {
	var result apiResponse
	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(sendMessageRequest{
			ChatID:    c.chatID,
			Text:      text,
			ParseMode: "HTML",
		}).
		SetResult(&result).
		Post(fmt.Sprintf("/bot%s/sendMessage", c.token))
	if err != nil {
		return fmt.Errorf("sending message: %w", err)
	}
	if resp.IsError() || !result.OK {
		return fmt.Errorf("sending message: status %d: %s", resp.StatusCode(), result.Description)
	}
	return nil
}

// Send is SendMessage with the error logged and swallowed, for callers that
// fire-and-forget scheduled pushes.
func (c *Client) Send(ctx context.Context, text string) {
	if err := c.SendMessage(ctx, text); err != nil {
		log.Error().Err(err).Msg("Telegram send failed")
	}
}

// GetUpdates long-polls for inbound updates past the given offset.
func (c *Client) GetUpdates(ctx context.Context, offset int64, timeoutSeconds int) ([]Update, error) {
	var result updatesResponse
	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParam("offset", fmt.Sprintf("%d", offset)).
		SetQueryParam("timeout", fmt.Sprintf("%d", timeoutSeconds)).
		SetResult(&result).
		Get(fmt.Sprintf("/bot%s/getUpdates", c.token))
	if err != nil {
		return nil, fmt.Errorf("getting updates: %w", err)
	}
	if resp.IsError() || !result.OK {
		return nil, fmt.Errorf("getting updates: status %d", resp.StatusCode())
	}
	return result.Result, nil
}
