// Package gemini calls a generative-language API to answer free-text
// questions about a movie. The call is best effort: every failure mode
// degrades to a fixed fallback message so the caller never sees an
// error and booking correctness cannot be affected.
package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"movie-booking/pkg/utils"

	"go.uber.org/zap"
)

const (
	// UnavailableMessage is returned when no API key is configured.
	UnavailableMessage = "AI services are currently unavailable. Please check your API configuration."

	// ConnectionMessage is returned on any transport or API error.
	ConnectionMessage = "Sorry, I'm having trouble connecting to the AI brain right now."

	// EmptyMessage is returned when the API answers with no text.
	EmptyMessage = "I couldn't generate a response at this time."
)

const promptTemplate = `You are a helpful cinema assistant for a movie booking website.
The user is looking at the movie: %q.

User Query: %q

Provide a concise, engaging answer (max 100 words).
Focus on helping them decide if they want to watch it.
If asking for recommendations, suggest similar movies based on genre and tone.`

type Client struct {
	config utils.AssistantConfig
	client *http.Client
	log    *zap.Logger
}

func NewClient(config utils.AssistantConfig, log *zap.Logger) *Client {
	timeout := time.Duration(config.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	return &Client{
		config: config,
		client: &http.Client{Timeout: timeout},
		log:    log.With(zap.String("client", "gemini")),
	}
}

type generateRequest struct {
	Contents []requestContent `json:"contents"`
}

type requestContent struct {
	Parts []contentPart `json:"parts"`
}

type contentPart struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content requestContent `json:"content"`
	} `json:"candidates"`
}

// Ask answers a free-text question about the movie. It never fails:
// any problem yields one of the fixed fallback messages.
func (c *Client) Ask(ctx context.Context, movieTitle, question string) string {
	if c.config.APIKey == "" {
		return UnavailableMessage
	}

	prompt := fmt.Sprintf(promptTemplate, movieTitle, question)

	body, err := json.Marshal(generateRequest{
		Contents: []requestContent{
			{Parts: []contentPart{{Text: prompt}}},
		},
	})
	if err != nil {
		c.log.Error("Failed to marshal request", zap.Error(err))
		return ConnectionMessage
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s",
		c.config.BaseURL, c.config.Model, c.config.APIKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		c.log.Error("Failed to build request", zap.Error(err))
		return ConnectionMessage
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		c.log.Warn("Assistant request failed", zap.Error(err))
		return ConnectionMessage
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.log.Warn("Assistant returned non-OK status",
			zap.Int("status", resp.StatusCode),
			zap.String("model", c.config.Model),
		)
		return ConnectionMessage
	}

	var result generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		c.log.Warn("Failed to decode assistant response", zap.Error(err))
		return ConnectionMessage
	}

	text := ""
	if len(result.Candidates) > 0 && len(result.Candidates[0].Content.Parts) > 0 {
		text = result.Candidates[0].Content.Parts[0].Text
	}
	if text == "" {
		return EmptyMessage
	}

	return text
}
