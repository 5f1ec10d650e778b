package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	apperrors "portal-backend/internal/common/errors"
	"portal-backend/internal/common/logger"
)

const defaultBaseURL = "https://api.telegram.org"

// ErrNoToken is returned when the bot token is not configured.
var ErrNoToken = errors.New("telegram: bot token not configured")

// APIError is a non-OK answer from the Bot API. Body is the raw response.
type APIError struct {
	StatusCode  int
	Body        string
	Description string
}

func (e *APIError) Error() string {
	if e.Description != "" {
		return fmt.Sprintf("telegram API error %d: %s", e.StatusCode, e.Description)
	}
	return fmt.Sprintf("telegram API error %d", e.StatusCode)
}

type tgResponse struct {
	Ok          bool   `json:"ok"`
	Description string `json:"description,omitempty"`
}

type sendMessageRequest struct {
	ChatID    int64  `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode,omitempty"`
}

// Client is a minimal Bot API client: it only sends text messages.
type Client struct {
	httpClient *http.Client
	token      string
	baseURL    string
	log        zerolog.Logger
}

type Option func(*Client)

// WithBaseURL points the client at another Bot API server (tests, local
// bot-api deployments).
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = strings.TrimSuffix(u, "/") }
}

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

func NewClient(token string, opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		token:      token,
		baseURL:    defaultBaseURL,
		log:        logger.Component("telegram"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// HasToken reports whether messages can be dispatched at all.
func (c *Client) HasToken() bool {
	return c.token != ""
}

// SendMessage delivers text to chatID. parseMode may be empty.
func (c *Client) SendMessage(ctx context.Context, chatID int64, text, parseMode string) error {
	if c.token == "" {
		return ErrNoToken
	}

	payload, err := json.Marshal(sendMessageRequest{ChatID: chatID, Text: text, ParseMode: parseMode})
	if err != nil {
		return fmt.Errorf("encode sendMessage: %w", err)
	}

	endpoint := fmt.Sprintf("%s/bot%s/sendMessage", c.baseURL, c.token)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build sendMessage: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// the URL embeds the token; never surface it
		return fmt.Errorf("sendMessage: %w", redactToken(err, c.token))
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))

	var result tgResponse
	_ = json.Unmarshal(body, &result)

	if resp.StatusCode < 200 || resp.StatusCode > 299 || !result.Ok {
		c.log.Warn().
			Int64("chat_id", chatID).
			Int("status", resp.StatusCode).
			Str("description", result.Description).
			Msg("sendMessage rejected")
		return &APIError{StatusCode: resp.StatusCode, Body: string(body), Description: result.Description}
	}

	c.log.Debug().Int64("chat_id", chatID).Msg("Message sent")
	return nil
}

// DispatchError converts a SendMessage failure into the API error shape:
// a missing token is a configuration problem, anything else is upstream.
func DispatchError(err error, message string) *apperrors.AppError {
	if errors.Is(err, ErrNoToken) {
		return apperrors.NewConfigError("Bot token not configured")
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apperrors.NewUpstreamError(message, apiErr.StatusCode, apiErr.Body, err)
	}
	return apperrors.NewUpstreamError(message, 0, err.Error(), err)
}

func redactToken(err error, token string) error {
	if token == "" {
		return err
	}
	return errors.New(strings.ReplaceAll(err.Error(), token, "<redacted>"))
}
