package whatsapp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/fiadoapp/backend/internal/entity"
	"github.com/fiadoapp/backend/pkg/config"
	"github.com/fiadoapp/backend/pkg/transport"
)

const (
	retryMax     = 3
	retryWaitMax = 5 * time.Second
)

// Client sends text messages through the WhatsApp Cloud API.
type Client struct {
	http          *http.Client
	baseURL       string
	phoneNumberID string
	accessToken   string
}

func New(cfg config.WhatsApp) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = retryMax
	retryClient.RetryWaitMin = time.Second
	retryClient.RetryWaitMax = retryWaitMax
	retryClient.HTTPClient.Timeout = 10 * time.Second
	retryClient.HTTPClient.Transport = transport.NewLoggingRoundTripper(http.DefaultTransport)
	retryClient.Logger = nil

	return &Client{
		http:          retryClient.StandardClient(),
		baseURL:       cfg.BaseURL,
		phoneNumberID: cfg.PhoneNumberID,
		accessToken:   cfg.AccessToken,
	}
}

type textMessage struct {
	MessagingProduct string `json:"messaging_product"`
	RecipientType    string `json:"recipient_type"`
	To               string `json:"to"`
	Type             string `json:"type"`
	Text             struct {
		PreviewURL bool   `json:"preview_url"`
		Body       string `json:"body"`
	} `json:"text"`
}

type sendResponse struct {
	Messages []struct {
		ID string `json:"id"`
	} `json:"messages"`
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (c *Client) Send(ctx context.Context, destination, body string) error {
	if c.phoneNumberID == "" || c.accessToken == "" {
		return fmt.Errorf("%w: whatsapp credentials are not configured", entity.ErrDelivery)
	}

	msg := textMessage{
		MessagingProduct: "whatsapp",
		RecipientType:    "individual",
		To:               normalizePhone(destination),
		Type:             "text",
	}
	msg.Text.Body = body

	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}

	url := fmt.Sprintf("%s/%s/messages", c.baseURL, c.phoneNumberID)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.accessToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s", entity.ErrDelivery, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	var parsed sendResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("unmarshal response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		cause := parsed.Error.Message
		if cause == "" {
			cause = fmt.Sprintf("status %d", resp.StatusCode)
		}

		return fmt.Errorf("%w: %s", entity.ErrDelivery, cause)
	}

	return nil
}

// normalizePhone strips everything but digits, the format the Cloud API
// expects.
func normalizePhone(phone string) string {
	var b strings.Builder

	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}

	return b.String()
}
