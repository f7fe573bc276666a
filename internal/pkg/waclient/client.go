package waclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Client talks to the WhatsApp provider's REST API. Credentials are
// per shop: every call carries the shop's instance id and token.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// NewWithHTTPClient is used by tests to inject a transport.
func NewWithHTTPClient(baseURL string, hc *http.Client) *Client {
	c := New(baseURL)
	c.httpClient = hc
	return c
}

type sendTextRequest struct {
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

// SendText posts a plain text message through the shop's instance.
// The phone is used exactly as received from the inbound webhook; it is
// expected to already carry the country code.
func (c *Client) SendText(ctx context.Context, instanceID, token, phone, text string) error {
	body, err := json.Marshal(sendTextRequest{Phone: phone, Message: text})
	if err != nil {
		return fmt.Errorf("waclient: marshal send-text body: %w", err)
	}

	url := fmt.Sprintf("%s/message/sendText/%s", c.baseURL, instanceID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("waclient: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("waclient: send text: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("waclient: provider returned %d: %s", resp.StatusCode, string(snippet))
	}
	return nil
}
