// file: service/holiday_calendar.go

package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"accounts-api/logger"
	"accounts-api/model"
)

// HolidayCalendar supplies the blocked dates for a given year. The transfer
// engine depends only on this interface; any error from it is treated as
// fail-closed by the caller.
type HolidayCalendar interface {
	GetHolidays(ctx context.Context, year int) ([]model.Holiday, error)
}

// BrasilAPICalendar fetches national holidays from BrasilAPI and keeps a
// per-year TTL cache so the feed is not hit on every transfer. A cache
// failure only costs a fresh HTTP call, never a wrong answer.
type BrasilAPICalendar struct {
	baseURL    string
	httpClient *http.Client
	cache      ICacheClient
	cacheTTL   time.Duration
}

func NewBrasilAPICalendar(baseURL string, timeout time.Duration, cache ICacheClient, cacheTTL time.Duration) *BrasilAPICalendar {
	return &BrasilAPICalendar{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		cache:    cache,
		cacheTTL: cacheTTL,
	}
}

// GetHolidays returns the holiday list for the year, from cache when fresh.
func (c *BrasilAPICalendar) GetHolidays(ctx context.Context, year int) ([]model.Holiday, error) {
	log := logger.Log.WithField("year", year)
	cacheKey := fmt.Sprintf("holidays:%d", year)

	if c.cache != nil {
		cached, err := c.cache.Get(ctx, cacheKey).Result()
		if err == nil {
			var holidays []model.Holiday
			if err := json.Unmarshal([]byte(cached), &holidays); err == nil {
				return holidays, nil
			}
		}
	}

	url := fmt.Sprintf("%s/feriados/v1/%d", c.baseURL, year)
	log.WithField("url", url).Info("Fetching holiday calendar")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create holiday request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.WithError(err).Warn("Holiday calendar request failed")
		return nil, fmt.Errorf("failed to fetch holidays: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		log.WithField("status", resp.StatusCode).Warn("Holiday calendar returned non-OK status")
		return nil, fmt.Errorf("holiday API returned status %d: %s", resp.StatusCode, string(body))
	}

	var holidays []model.Holiday
	if err := json.NewDecoder(resp.Body).Decode(&holidays); err != nil {
		return nil, fmt.Errorf("failed to decode holiday response: %w", err)
	}

	if c.cache != nil {
		if data, err := json.Marshal(holidays); err == nil {
			c.cache.Set(ctx, cacheKey, data, c.cacheTTL)
		}
	}

	return holidays, nil
}
