// Package classifier calls the standalone learning-style predictor. The
// predictor is an opaque external service; the planner only needs its label
// and degrades to a neutral style when it is unreachable.
package classifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/studybuddy/studybuddy-backend/internal/model"
)

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

var styleByLabel = map[string]model.LearningStyle{
	"visual":      model.LearningStyleVisual,
	"auditory":    model.LearningStyleAuditory,
	"kinesthetic": model.LearningStyleKinesthetic,
	"reading":     model.LearningStyleReading,
}

func (c *Client) Classify(ctx context.Context, userID int64) (model.LearningStyle, error) {
	body, err := json.Marshal(map[string]int64{"user_id": userID})
	if err != nil {
		return model.LearningStyleUnknown, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/classify", bytes.NewReader(body))
	if err != nil {
		return model.LearningStyleUnknown, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return model.LearningStyleUnknown, fmt.Errorf("classifier request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return model.LearningStyleUnknown, fmt.Errorf("classifier request: code %d", resp.StatusCode)
	}

	res := &struct {
		Style string `json:"style"`
	}{}
	if err := json.NewDecoder(resp.Body).Decode(res); err != nil {
		return model.LearningStyleUnknown, fmt.Errorf("decode classifier response: %w", err)
	}

	style, ok := styleByLabel[res.Style]
	if !ok {
		return model.LearningStyleUnknown, nil
	}

	return style, nil
}
