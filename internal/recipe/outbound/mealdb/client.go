// Package mealdb is the outbound client for TheMealDB public API.
package mealdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/anshy0304/veggiefinder/internal/pkg/config"
	"github.com/anshy0304/veggiefinder/internal/pkg/instrument"
	"github.com/anshy0304/veggiefinder/internal/recipe/entity"
	"github.com/redis/go-redis/v9"
	"github.com/sethvargo/go-retry"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/atomic"
)

// ErrUnavailable is returned when the upstream keeps failing after
// retries, or while the client is cooling down from such a failure.
var ErrUnavailable = errors.New("mealdb: upstream unavailable")

type Client struct {
	httpc      *http.Client
	cache      *redis.Client
	ins        instrument.Instrumentation
	baseURL    string
	cacheTTL   time.Duration
	maxRetries uint64
	cooldown   time.Duration

	// degradedUntil gates upstream calls after exhausted retries so an
	// outage does not multiply request latency for every browser.
	degradedUntil atomic.Time
}

func New(cfg config.Config, cache *redis.Client, ins instrument.Instrumentation) *Client {
	return &Client{
		httpc:      &http.Client{Timeout: cfg.GetSecond("mealdb.timeout_seconds")},
		cache:      cache,
		ins:        ins,
		baseURL:    strings.TrimRight(cfg.GetString("mealdb.base_url"), "/"),
		cacheTTL:   cfg.GetMinute("mealdb.cache_ttl_minutes"),
		maxRetries: uint64(cfg.GetInt("mealdb.max_retries")), //nolint:gosec // config value, small
		cooldown:   cfg.GetSecond("mealdb.cooldown_seconds"),
	}
}

type mealRecord struct {
	IDMeal          string `json:"idMeal"`
	StrMeal         string `json:"strMeal"`
	StrMealThumb    string `json:"strMealThumb"`
	StrCategory     string `json:"strCategory"`
	StrInstructions string `json:"strInstructions"`
}

type mealsResponse struct {
	Meals []mealRecord `json:"meals"`
}

// Search queries search.php?s= and keeps only vegetarian records.
func (c *Client) Search(ctx context.Context, query string) ([]entity.Meal, error) {
	query = strings.ToLower(strings.TrimSpace(query))

	records, err := c.fetch(ctx, "search:"+query, "/search.php?s="+url.QueryEscape(query))
	if err != nil {
		return nil, err
	}

	meals := make([]entity.Meal, 0, len(records))
	for _, rec := range records {
		if rec.StrCategory != entity.CuisineVegetarian {
			continue
		}
		meals = append(meals, entity.Meal{
			ID:           rec.IDMeal,
			Name:         rec.StrMeal,
			Thumbnail:    rec.StrMealThumb,
			Category:     rec.StrCategory,
			Instructions: rec.StrInstructions,
		})
	}

	return meals, nil
}

// FilterByCategory queries filter.php?c=. The endpoint returns partial
// records; the category comes from the request.
func (c *Client) FilterByCategory(ctx context.Context, category string) ([]entity.Meal, error) {
	category = strings.TrimSpace(category)

	records, err := c.fetch(ctx, "category:"+strings.ToLower(category), "/filter.php?c="+url.QueryEscape(category))
	if err != nil {
		return nil, err
	}

	meals := make([]entity.Meal, 0, len(records))
	for _, rec := range records {
		meals = append(meals, entity.Meal{
			ID:        rec.IDMeal,
			Name:      rec.StrMeal,
			Thumbnail: rec.StrMealThumb,
			Category:  category,
		})
	}

	return meals, nil
}

func (c *Client) fetch(ctx context.Context, cacheKey, path string) (_ []mealRecord, err error) {
	ctx, span := c.ins.Tracer("recipe.outbound.mealdb").Start(ctx, "fetch")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	span.SetAttributes(attribute.String("mealdb.path", path))

	fullKey := "mealdb:" + cacheKey
	if cached, cErr := c.cache.Get(ctx, fullKey).Bytes(); cErr == nil {
		var records []mealRecord
		if uErr := json.Unmarshal(cached, &records); uErr == nil {
			span.SetAttributes(attribute.Bool("mealdb.cache_hit", true))
			return records, nil
		}
	} else if !errors.Is(cErr, redis.Nil) {
		slog.WarnContext(ctx, "mealdb cache read failed", "key", fullKey, "error", cErr)
	}

	if time.Now().Before(c.degradedUntil.Load()) {
		err = ErrUnavailable
		return nil, err
	}

	records, err := c.fetchUpstream(ctx, path)
	if err != nil {
		c.degradedUntil.Store(time.Now().Add(c.cooldown))
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}

	if payload, mErr := json.Marshal(records); mErr == nil {
		if sErr := c.cache.Set(ctx, fullKey, payload, c.cacheTTL).Err(); sErr != nil {
			slog.WarnContext(ctx, "mealdb cache write failed", "key", fullKey, "error", sErr)
		}
	}

	return records, nil
}

func (c *Client) fetchUpstream(ctx context.Context, path string) ([]mealRecord, error) {
	var records []mealRecord

	b := retry.NewFibonacci(200 * time.Millisecond)
	b = retry.WithCappedDuration(2*time.Second, b)
	b = retry.WithMaxRetries(c.maxRetries, b)

	err := retry.Do(ctx, b, func(ctx context.Context) error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
		if err != nil {
			return err
		}

		res, err := c.httpc.Do(req)
		if err != nil {
			return retry.RetryableError(err)
		}
		defer func() {
			_, _ = io.Copy(io.Discard, res.Body)
			_ = res.Body.Close()
		}()

		if res.StatusCode >= http.StatusInternalServerError {
			return retry.RetryableError(fmt.Errorf("mealdb: upstream status %d", res.StatusCode))
		}
		if res.StatusCode != http.StatusOK {
			return fmt.Errorf("mealdb: upstream status %d", res.StatusCode)
		}

		var payload mealsResponse
		if err := json.NewDecoder(res.Body).Decode(&payload); err != nil {
			return retry.RetryableError(err)
		}

		records = payload.Meals
		return nil
	})
	if err != nil {
		return nil, err
	}

	return records, nil
}
