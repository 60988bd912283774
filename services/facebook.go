package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

const defaultGraphAPI = "https://graph.facebook.com/v18.0"

// FacebookClient sends replies through the Facebook Graph API. A failed send
// is logged and surfaced as an error; it is never retried.
type FacebookClient struct {
	baseURL         string
	pageAccessToken string
	httpClient      *http.Client
}

// NewFacebookClient builds a Graph API client with a bounded request timeout.
func NewFacebookClient(pageAccessToken string) *FacebookClient {
	return &FacebookClient{
		baseURL:         defaultGraphAPI,
		pageAccessToken: pageAccessToken,
		httpClient:      &http.Client{Timeout: 10 * time.Second},
	}
}

// SendMessengerReply sends a text message to a Messenger user.
func (f *FacebookClient) SendMessengerReply(ctx context.Context, recipientID, message string) error {
	url := fmt.Sprintf("%s/me/messages?access_token=%s", f.baseURL, f.pageAccessToken)

	payload := map[string]interface{}{
		"recipient": map[string]string{
			"id": recipientID,
		},
		"message": map[string]string{
			"text": message,
		},
	}

	if err := f.post(ctx, url, payload, nil); err != nil {
		return fmt.Errorf("failed to send messenger reply: %w", err)
	}
	return nil
}

// SendPrivateReply sends a direct message to the author of a comment, visible
// only to them. Uses bearer auth rather than the access-token query parameter.
func (f *FacebookClient) SendPrivateReply(ctx context.Context, commentID, message string) error {
	url := fmt.Sprintf("%s/%s/private_replies", f.baseURL, commentID)

	payload := map[string]string{
		"message": message,
	}

	if err := f.post(ctx, url, payload, map[string]string{
		"Authorization": "Bearer " + f.pageAccessToken,
	}); err != nil {
		return fmt.Errorf("failed to send private reply: %w", err)
	}
	return nil
}

func (f *FacebookClient) post(ctx context.Context, url string, payload interface{}, headers map[string]string) error {
	jsonData, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(jsonData))
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		slog.Error("Graph API call failed", "status", resp.StatusCode, "body", string(body))
		return fmt.Errorf("graph API returned %s", resp.Status)
	}

	return nil
}
