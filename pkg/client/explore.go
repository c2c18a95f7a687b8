package client

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/url"
	"time"
)

// Submission is a program that can be sent to the API.
// *datarelease.Attempt and *Translation implement it.
type Submission interface {
	SourceLanguage() string
	SourceText() (string, error)
	// ChallengeID identifies the puzzle the program is meant to solve.
	ChallengeID() (string, error)
}

// Program is the program part of exploration and translation requests.
type Program struct {
	Language string `json:"language"`
	Text     string `json:"text"`
}

type explorationRequest struct {
	Program     Program `json:"program"`
	ChallengeID string  `json:"challengeId"`
}

// Explore runs sub against its puzzle. The result is one of: errors
// (compilation or otherwise), a winning set of test cases, or failing test
// cases with counterexamples.
//
// The exploration is fetched once. Attempts from the data release are
// cached by the service and complete immediately. With wait set, Explore
// polls until the service reports completion; there is no limit on the
// number of polls, only ctx can stop it.
func (c *Client) Explore(ctx context.Context, sub Submission, wait bool) (*Exploration, error) {
	text, err := sub.SourceText()
	if err != nil {
		return nil, err
	}
	challengeID, err := sub.ChallengeID()
	if err != nil {
		return nil, err
	}

	resp, err := c.postJSON(ctx, "/explorations", explorationRequest{
		Program: Program{
			Language: sub.SourceLanguage(),
			Text:     text,
		},
		ChallengeID: challengeID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create exploration: %w", err)
	}

	var created struct {
		ID json.RawMessage `json:"id"`
	}
	if err := json.Unmarshal(resp, &created); err != nil {
		return nil, fmt.Errorf("failed to unmarshal exploration id: %w", err)
	}
	id, err := rawID(created.ID)
	if err != nil {
		return nil, err
	}

	path := "/explorations/" + url.PathEscape(id)
	data, complete, err := c.getExploration(ctx, path)
	if err != nil {
		return nil, err
	}

	if wait && !complete {
		ticker := time.NewTicker(c.pollInterval)
		defer ticker.Stop()

		polls := 1
		for !complete {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-ticker.C:
			}

			data, complete, err = c.getExploration(ctx, path)
			if err != nil {
				return nil, err
			}
			polls++
		}
		slog.Debug("exploration complete", "id", id, "polls", polls)
	}

	return decodeExploration(sub, data)
}

func (c *Client) getExploration(ctx context.Context, path string) ([]byte, bool, error) {
	data, err := c.doRequest(ctx, "GET", path, "", nil)
	if err != nil {
		return nil, false, fmt.Errorf("failed to get exploration: %w", err)
	}

	var env explorationEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, false, fmt.Errorf("failed to unmarshal exploration: %w", err)
	}
	return data, env.IsComplete, nil
}

// rawID accepts the exploration id as either a JSON string or number.
func rawID(raw json.RawMessage) (string, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return "", fmt.Errorf("exploration response has no id")
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s, nil
	}

	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return "", fmt.Errorf("failed to unmarshal exploration id: %w", err)
	}
	return n.String(), nil
}
