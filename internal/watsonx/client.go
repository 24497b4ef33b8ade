// Package watsonx provides the HTTP client for IBM watsonx.ai chat
// inference and the translation between the API's inbound chat messages and
// the watsonx chat schema.
//
// Credentials are read from the environment every time a client is built, so
// rotating WATSONX_API_KEY does not require a restart.
package watsonx

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"
)

const (
	modelID     = "ibm/granite-3-8b-instruct"
	maxTokens   = 500
	temperature = 0.7
	apiVersion  = "2024-10-08"

	defaultIAMURL = "https://iam.cloud.ibm.com/identity/token"
)

// ChatMessage is one inbound role-tagged message, oldest first.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// message is one outbound watsonx chat message. Content is a plain string
// for system and assistant roles and a list of text parts for user roles;
// that asymmetry is the watsonx chat API schema, not a local choice.
type message struct {
	Role    string      `json:"role"`
	Content interface{} `json:"content"`
}

type textPart struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// Client is the HTTP client for watsonx.ai chat inference.
type Client struct {
	httpClient *http.Client
	baseURL    string
	projectID  string
	token      string
}

// NewClientFromEnv builds a client from WATSONX_URL, WATSONX_API_KEY, and
// WATSONX_PROJECT_ID, exchanging the API key for an IAM access token. TLS
// certificate verification is disabled on the transport, matching how the
// upstream deployment is addressed.
func NewClientFromEnv() (*Client, error) {
	baseURL := os.Getenv("WATSONX_URL")
	if baseURL == "" {
		return nil, fmt.Errorf("WATSONX_URL is not set")
	}
	apiKey := os.Getenv("WATSONX_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("WATSONX_API_KEY is not set")
	}

	httpClient := &http.Client{
		Timeout: 60 * time.Second,
		Transport: &http.Transport{
			TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
		},
	}

	token, err := fetchIAMToken(httpClient, apiKey)
	if err != nil {
		return nil, fmt.Errorf("authenticate with IAM: %w", err)
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		projectID:  os.Getenv("WATSONX_PROJECT_ID"),
		token:      token,
	}, nil
}

// fetchIAMToken exchanges an IBM Cloud API key for a bearer token. The IAM
// endpoint can be overridden via WATSONX_IAM_URL.
func fetchIAMToken(httpClient *http.Client, apiKey string) (string, error) {
	iamURL := os.Getenv("WATSONX_IAM_URL")
	if iamURL == "" {
		iamURL = defaultIAMURL
	}

	form := url.Values{}
	form.Set("grant_type", "urn:ibm:params:oauth:grant-type:apikey")
	form.Set("apikey", apiKey)

	req, err := http.NewRequest(http.MethodPost, iamURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("create token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("token request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read token response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("IAM returned %d: %s", resp.StatusCode, truncate(body, 200))
	}

	var tokenResp struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.Unmarshal(body, &tokenResp); err != nil {
		return "", fmt.Errorf("decode token response: %w", err)
	}
	if tokenResp.AccessToken == "" {
		return "", fmt.Errorf("IAM response contained no access token")
	}
	return tokenResp.AccessToken, nil
}

// chatRequest is the watsonx.ai chat inference request body.
type chatRequest struct {
	ModelID     string    `json:"model_id"`
	ProjectID   string    `json:"project_id"`
	Messages    []message `json:"messages"`
	MaxTokens   int       `json:"max_tokens"`
	Temperature float64   `json:"temperature"`
}

// Chat translates the inbound messages and invokes chat inference, returning
// the extracted reply text. The outbound request is deliberately not tied to
// the inbound request context: a caller disconnect lets the in-flight call
// finish, and the result is simply discarded.
func (c *Client) Chat(messages []ChatMessage) (string, error) {
	payload := chatRequest{
		ModelID:     modelID,
		ProjectID:   c.projectID,
		Messages:    translateMessages(messages),
		MaxTokens:   maxTokens,
		Temperature: temperature,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("encode chat request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/ml/v1/text/chat?version=%s", c.baseURL, apiVersion)
	req, err := http.NewRequestWithContext(context.Background(), http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create chat request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("chat request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read chat response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("watsonx returned %d: %s", resp.StatusCode, truncate(raw, 200))
	}

	return ExtractReply(raw), nil
}

// translateMessages maps inbound messages onto the watsonx chat schema.
// System and assistant content stays a plain string; user content is wrapped
// in a text-part list. Messages with any other role are dropped.
func translateMessages(messages []ChatMessage) []message {
	out := make([]message, 0, len(messages))
	for _, m := range messages {
		switch m.Role {
		case "system":
			out = append(out, message{Role: "system", Content: m.Content})
		case "user":
			out = append(out, message{Role: "user", Content: []textPart{{Type: "text", Text: m.Content}}})
		case "assistant":
			out = append(out, message{Role: "assistant", Content: m.Content})
		}
	}
	return out
}

// truncate returns a truncated string for error messages.
func truncate(b []byte, maxLen int) string {
	if len(b) <= maxLen {
		return string(b)
	}
	return string(b[:maxLen]) + "..."
}
