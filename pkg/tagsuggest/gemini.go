package tagsuggest

import (
	"context"
	"fmt"

	"screenix/pkg/utils"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

const baseURL = "https://generativelanguage.googleapis.com/v1beta"

// GeminiClient suggests movie tags through the Gemini REST API.
type GeminiClient struct {
	client *resty.Client
	apiKey string
	model  string
	log    *zap.Logger
}

func NewGeminiClient(config utils.GeminiConfig, log *zap.Logger) *GeminiClient {
	return &GeminiClient{
		client: resty.New().SetBaseURL(baseURL),
		apiKey: config.APIKey,
		model:  config.Model,
		log:    log.With(zap.String("client", "tagsuggest")),
	}
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// SuggestTags returns a comma-separated tag list for the movie.
func (c *GeminiClient) SuggestTags(ctx context.Context, title, description string) (string, error) {
	prompt := fmt.Sprintf(`Based on the following movie description: "%s", and title: "%s" please suggest relevant tags for the movie. The tags should be formatted as a comma-separated list, without any additional headings or bullet points. The tags should reflect the themes, genres, and significant elements of the movie, providing useful suggestions for users who may be interested in this film. Please limit your suggestions to no more than 8 tags. Answer in Polish.`, description, title)

	var result generateResponse
	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParam("key", c.apiKey).
		SetBody(generateRequest{Contents: []content{{Parts: []part{{Text: prompt}}}}}).
		SetResult(&result).
		Post(fmt.Sprintf("/models/%s:generateContent", c.model))

	if err != nil {
		return "", fmt.Errorf("generate tags for %q: %w", title, err)
	}
	if resp.IsError() {
		c.log.Error("Tag suggestion request failed",
			zap.Int("status", resp.StatusCode()),
			zap.String("title", title),
		)
		return "", fmt.Errorf("generate tags for %q: status %d", title, resp.StatusCode())
	}
	if len(result.Candidates) == 0 || len(result.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("generate tags for %q: empty response", title)
	}

	return result.Candidates[0].Content.Parts[0].Text, nil
}
