package fdc

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"fdcreport/internal"
	"fdcreport/internal/config"
)

// MaxBatchSize is the largest identifier list the /foods endpoint accepts in
// one request. Callers are expected to pre-chunk; exceeding it is a
// programmer error.
const MaxBatchSize = 20

var ErrBatchTooLarge = errors.New("id batch exceeds FDC limit")

type Client struct {
	cfg        config.Config
	httpClient *http.Client
	limiter    *RateLimiter
}

type foodsRequest struct {
	FdcIDs []int  `json:"fdcIds"`
	Format string `json:"format"`
}

func NewClient(cfg config.Config) *Client {
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: time.Duration(cfg.FDCTimeoutMs) * time.Millisecond},
		limiter:    NewRateLimiter(cfg.FDCRateLimitRPS),
	}
}

// FetchFoods posts one batch of ids to the abridged /foods endpoint and
// returns the parsed records sorted ascending by fdcId. The remote ordering
// is unspecified and never trusted. Any transport, status or parse failure
// is returned as-is; there is no retry.
func (c *Client) FetchFoods(ctx context.Context, ids []int) ([]internal.FoodRecord, error) {
	if len(ids) > MaxBatchSize {
		return nil, fmt.Errorf("%w: %d ids, limit %d", ErrBatchTooLarge, len(ids), MaxBatchSize)
	}
	if strings.TrimSpace(c.cfg.FDCAPIKey) == "" {
		return nil, errors.New("missing FDC_API_KEY")
	}

	u, err := url.Parse(strings.TrimRight(c.cfg.FDCAPIBaseURL, "/") + "/foods")
	if err != nil {
		return nil, err
	}
	q := u.Query()
	q.Set("api_key", c.cfg.FDCAPIKey)
	u.RawQuery = q.Encode()

	payload, err := json.Marshal(foodsRequest{FdcIDs: ids, Format: "abridged"})
	if err != nil {
		return nil, err
	}

	c.limiter.WaitTurn()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.String(), bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	body, readErr := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if readErr != nil {
		return nil, readErr
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("fdc api error: status=%d body=%s", resp.StatusCode, string(body))
	}

	var foods []internal.FoodRecord
	if err := json.Unmarshal(body, &foods); err != nil {
		return nil, fmt.Errorf("fdc response parse: %w", err)
	}

	sort.Slice(foods, func(i, j int) bool { return foods[i].FdcID < foods[j].FdcID })
	return foods, nil
}
