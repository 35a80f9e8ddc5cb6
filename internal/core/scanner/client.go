package scanner

import (
	"context"
	"fmt"
	"net/http"

	"nutriplan-api/internal/infrastructure/config"
	"nutriplan-api/internal/pkg/common"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Client fetches product records from the external food-facts service.
// Outbound calls are rate limited; the public database asks clients to stay
// polite.
type Client struct {
	config  *config.Config
	http    *resty.Client
	limiter *rate.Limiter
	cache   *ProductCache
}

// NewClient creates a food-facts client. cache may be nil.
func NewClient(cfg *config.Config, cache *ProductCache) *Client {
	httpClient := resty.New().
		SetBaseURL(cfg.FoodFacts.BaseURL).
		SetTimeout(cfg.FoodFacts.Timeout).
		SetHeader("User-Agent", cfg.FoodFacts.UserAgent).
		SetHeader("Accept", "application/json")

	return &Client{
		config:  cfg,
		http:    httpClient,
		limiter: rate.NewLimiter(rate.Limit(cfg.FoodFacts.RequestsPerSec), cfg.FoodFacts.Burst),
		cache:   cache,
	}
}

type productResponse struct {
	Status  int      `json:"status"`
	Product *Product `json:"product"`
}

type searchResponse struct {
	Products []Product `json:"products"`
	Count    int       `json:"count"`
}

// GetProduct fetches one product by barcode, consulting the cache first.
// A missing product surfaces as ErrProductNotFound; transport and non-OK
// responses as ErrExternalService.
func (c *Client) GetProduct(ctx context.Context, barcode string) (*Product, error) {
	if c.cache != nil {
		if product, err := c.cache.Get(ctx, barcode); err == nil {
			common.LogCacheHit("product", barcode)
			return product, nil
		}
		common.LogCacheMiss("product", barcode)
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, common.NewError(common.ErrCodeRequestTimeout, "request cancelled", http.StatusRequestTimeout, err)
	}

	var result productResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&result).
		Get(fmt.Sprintf("/api/v2/product/%s.json", barcode))
	if err != nil {
		common.LogError("food facts fetch failed",
			zap.Error(err),
			zap.String("barcode", barcode),
		)
		return nil, common.ErrExternalService
	}

	if resp.StatusCode() == http.StatusNotFound {
		return nil, common.ErrProductNotFound
	}
	if resp.StatusCode() != http.StatusOK {
		common.LogError("food facts returned non-OK status",
			zap.Int("status", resp.StatusCode()),
			zap.String("barcode", barcode),
		)
		return nil, common.ErrExternalService
	}
	if result.Status == 0 || result.Product == nil {
		return nil, common.ErrProductNotFound
	}

	if c.cache != nil {
		_ = c.cache.Set(ctx, barcode, result.Product)
	}

	return result.Product, nil
}

// Search queries products by free text.
func (c *Client) Search(ctx context.Context, query string, pageSize int) ([]Product, int, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, 0, common.NewError(common.ErrCodeRequestTimeout, "request cancelled", http.StatusRequestTimeout, err)
	}

	var result searchResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"search_terms":  query,
			"search_simple": "1",
			"action":        "process",
			"json":          "1",
			"page_size":     fmt.Sprintf("%d", pageSize),
		}).
		SetResult(&result).
		Get("/cgi/search.pl")
	if err != nil {
		common.LogError("food facts search failed",
			zap.Error(err),
			zap.String("query", query),
		)
		return nil, 0, common.ErrExternalService
	}

	if resp.StatusCode() != http.StatusOK {
		return nil, 0, common.ErrExternalService
	}

	return result.Products, result.Count, nil
}
