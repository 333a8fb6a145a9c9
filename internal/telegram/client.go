// Package telegram is a thin client for the Bot API methods this service
// needs: long-poll updates, message/photo sends with inline keyboards,
// callback acks and webhook registration.
package telegram

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const defaultBaseURL = "https://api.telegram.org"

type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

// NewClient builds a client for the given bot token. baseURL overrides
// the production API host, used in tests.
func NewClient(token string, opts ...Option) *Client {
	c := &Client{
		baseURL: defaultBaseURL,
		token:   token,
		// No global timeout: getUpdates long-polls, so deadlines come
		// from the per-call context.
		http: &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type Option func(*Client)

func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = strings.TrimRight(u, "/") }
}

func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

type apiResponse struct {
	OK          bool            `json:"ok"`
	Result      json.RawMessage `json:"result"`
	Description string          `json:"description"`
}

func (c *Client) call(ctx context.Context, method string, params url.Values, out any) error {
	endpoint := fmt.Sprintf("%s/bot%s/%s", c.baseURL, c.token, method)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(params.Encode()))
	if err != nil {
		return fmt.Errorf("build request %s: %w", method, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("call %s: %w", method, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read %s response: %w", method, err)
	}

	var envelope apiResponse
	if err := json.Unmarshal(body, &envelope); err != nil {
		return fmt.Errorf("decode %s response: %w", method, err)
	}
	if !envelope.OK {
		return fmt.Errorf("%s failed: %s", method, envelope.Description)
	}
	if out != nil {
		if err := json.Unmarshal(envelope.Result, out); err != nil {
			return fmt.Errorf("decode %s result: %w", method, err)
		}
	}
	return nil
}

// GetUpdates long-polls for the next batch of updates at or after offset.
// The server holds the request up to timeout; the call's own deadline is
// the context's.
func (c *Client) GetUpdates(ctx context.Context, offset int64, timeout time.Duration) ([]Update, error) {
	params := url.Values{}
	if offset > 0 {
		params.Set("offset", strconv.FormatInt(offset, 10))
	}
	params.Set("timeout", strconv.Itoa(int(timeout.Seconds())))

	var updates []Update
	if err := c.call(ctx, "getUpdates", params, &updates); err != nil {
		return nil, err
	}
	return updates, nil
}

func (c *Client) SendMessage(ctx context.Context, chatID int64, text string, keyboard *InlineKeyboardMarkup) error {
	params := url.Values{}
	params.Set("chat_id", strconv.FormatInt(chatID, 10))
	params.Set("text", text)
	if err := attachKeyboard(params, keyboard); err != nil {
		return err
	}
	return c.call(ctx, "sendMessage", params, nil)
}

func (c *Client) SendPhoto(ctx context.Context, chatID int64, photo, caption string, keyboard *InlineKeyboardMarkup) error {
	params := url.Values{}
	params.Set("chat_id", strconv.FormatInt(chatID, 10))
	params.Set("photo", photo)
	if caption != "" {
		params.Set("caption", caption)
	}
	if err := attachKeyboard(params, keyboard); err != nil {
		return err
	}
	return c.call(ctx, "sendPhoto", params, nil)
}

func (c *Client) AnswerCallbackQuery(ctx context.Context, callbackID string) error {
	params := url.Values{}
	params.Set("callback_query_id", callbackID)
	return c.call(ctx, "answerCallbackQuery", params, nil)
}

// SetWebhook points the provider at url. Registering supersedes any
// previous registration for this bot.
func (c *Client) SetWebhook(ctx context.Context, webhookURL string, dropPending bool) error {
	params := url.Values{}
	params.Set("url", webhookURL)
	params.Set("drop_pending_updates", strconv.FormatBool(dropPending))
	return c.call(ctx, "setWebhook", params, nil)
}

func (c *Client) DeleteWebhook(ctx context.Context, dropPending bool) error {
	params := url.Values{}
	params.Set("drop_pending_updates", strconv.FormatBool(dropPending))
	return c.call(ctx, "deleteWebhook", params, nil)
}

func attachKeyboard(params url.Values, keyboard *InlineKeyboardMarkup) error {
	if keyboard == nil || len(keyboard.InlineKeyboard) == 0 {
		return nil
	}
	raw, err := json.Marshal(keyboard)
	if err != nil {
		return fmt.Errorf("marshal keyboard: %w", err)
	}
	params.Set("reply_markup", string(raw))
	return nil
}
