package source

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"TrendSentry/internal/model"
)

// RESTSource fetches candle history from a klines-style REST API.
type RESTSource struct {
	BaseURL string
	APIKey  string
	Limit   int
	Client  *http.Client
}

// NewRESTSource creates a REST source with optional proxy support.
func NewRESTSource(baseURL, apiKey, proxyURL string, limit int) *RESTSource {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	if limit <= 0 {
		limit = 200
	}
	return &RESTSource{
		BaseURL: baseURL,
		APIKey:  apiKey,
		Limit:   limit,
		Client: &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		},
	}
}

func (f *RESTSource) Name() string { return "rest" }

// kline is the expected JSON shape of one bar from the API.
type kline struct {
	Timestamp int64   `json:"timestamp"`
	Open      float64 `json:"open"`
	High      float64 `json:"high"`
	Low       float64 `json:"low"`
	Close     float64 `json:"close"`
	Volume    float64 `json:"volume"`
}

func (f *RESTSource) Fetch(ctx context.Context, symbol, timeframe string) (*model.PriceSeries, error) {
	endpoint := fmt.Sprintf("%s/api/v1/klines?symbol=%s&interval=%s&limit=%d",
		f.BaseURL, url.QueryEscape(symbol), url.QueryEscape(timeframe), f.Limit)

	req, err := http.NewRequestWithContext(ctx, "GET", endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %v", ErrDataUnavailable, err)
	}
	if f.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+f.APIKey)
	}

	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDataUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("%w: status %d, body: %s", ErrDataUnavailable, resp.StatusCode, string(body))
	}

	var bars []kline
	if err := json.NewDecoder(resp.Body).Decode(&bars); err != nil {
		return nil, fmt.Errorf("%w: decode response: %v", ErrDataUnavailable, err)
	}

	prices := make([]float64, len(bars))
	for i, b := range bars {
		prices[i] = b.Close
	}

	return &model.PriceSeries{
		Symbol:    symbol,
		Timeframe: timeframe,
		Prices:    prices,
		FetchedAt: time.Now(),
	}, nil
}
