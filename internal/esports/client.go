// Package esports talks to the third-party match/stats/schedule/stream
// APIs the chat gateway draws live answers from. Every call is bounded
// by a short timeout and any failure surfaces as an error the caller
// downgrades to "no data".
package esports

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

type Match struct {
	Opponent   string    `json:"opponent"`
	Tournament string    `json:"tournament"`
	StartsAt   time.Time `json:"starts_at"`
	Live       bool      `json:"live"`
	Score      string    `json:"score,omitempty"`
}

type TeamStats struct {
	Wins       int     `json:"wins"`
	Losses     int     `json:"losses"`
	WinRate    float64 `json:"win_rate"`
	WorldRank  int     `json:"world_rank"`
	RecentForm string  `json:"recent_form"`
}

type ScheduleEvent struct {
	Tournament string    `json:"tournament"`
	StartsAt   time.Time `json:"starts_at"`
	Location   string    `json:"location"`
}

type Stream struct {
	Live    bool   `json:"live"`
	Title   string `json:"title"`
	Viewers int    `json:"viewers"`
	URL     string `json:"url"`
}

type Client struct {
	http          *http.Client
	baseURL       string
	streamBaseURL string
	teamSlug      string
}

func NewClient(baseURL, streamBaseURL, teamSlug string) *Client {
	return &Client{
		http:          &http.Client{Timeout: 3 * time.Second},
		baseURL:       baseURL,
		streamBaseURL: streamBaseURL,
		teamSlug:      teamSlug,
	}
}

func (c *Client) FetchMatches(ctx context.Context) ([]Match, error) {
	var matches []Match
	url := fmt.Sprintf("%s/teams/%s/matches", c.baseURL, c.teamSlug)
	if err := c.getJSON(ctx, url, &matches); err != nil {
		return nil, err
	}
	return matches, nil
}

func (c *Client) FetchTeamStats(ctx context.Context) (*TeamStats, error) {
	var stats TeamStats
	url := fmt.Sprintf("%s/teams/%s/stats", c.baseURL, c.teamSlug)
	if err := c.getJSON(ctx, url, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (c *Client) FetchSchedule(ctx context.Context) ([]ScheduleEvent, error) {
	var events []ScheduleEvent
	url := fmt.Sprintf("%s/teams/%s/schedule", c.baseURL, c.teamSlug)
	if err := c.getJSON(ctx, url, &events); err != nil {
		return nil, err
	}
	return events, nil
}

func (c *Client) FetchStream(ctx context.Context) (*Stream, error) {
	var stream Stream
	url := fmt.Sprintf("%s/streams/%s", c.streamBaseURL, c.teamSlug)
	if err := c.getJSON(ctx, url, &stream); err != nil {
		return nil, err
	}
	return &stream, nil
}

func (c *Client) getJSON(ctx context.Context, url string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request to %s failed: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("unexpected status %d from %s", resp.StatusCode, url)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response from %s: %w", url, err)
	}
	return nil
}
