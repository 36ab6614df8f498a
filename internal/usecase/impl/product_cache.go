package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode"

	"beautymarket/internal/domain/service"

	"github.com/google/uuid"
)

const (
	productListPattern = "products:*"
	categoriesKey      = "categories"
	popularProductsKey = "popular_products"
)

// Cache names reported to the metrics recorder.
const (
	cacheProductList   = "product_list"
	cacheProductDetail = "product_detail"
	cacheCategories    = "categories"
	cachePopular       = "popular_products"
)

func productDetailKey(id uuid.UUID) string {
	return "product_detail:" + id.String()
}

// productListKey builds products[:category_<id>][:search_<q>][:sort_<s>]:page_<n>.
func productListKey(categoryID *uuid.UUID, search, sort string, page int) string {
	var b strings.Builder
	b.WriteString("products")
	if categoryID != nil {
		b.WriteString(":category_" + categoryID.String())
	}
	if q := sanitizeKeyPart(search); q != "" {
		b.WriteString(":search_" + q)
	}
	if sort != "" {
		b.WriteString(":sort_" + sort)
	}
	fmt.Fprintf(&b, ":page_%d", page)

	return b.String()
}

// sanitizeKeyPart lowercases s, joins its words with '_' and percent-encodes
// every rune that is neither a letter nor a digit.
func sanitizeKeyPart(s string) string {
	var b strings.Builder
	for i, word := range strings.Fields(strings.ToLower(s)) {
		if i > 0 {
			b.WriteByte('_')
		}
		for _, r := range word {
			if unicode.IsLetter(r) || unicode.IsDigit(r) {
				b.WriteRune(r)

				continue
			}
			for _, c := range []byte(string(r)) {
				fmt.Fprintf(&b, "%%%02X", c)
			}
		}
	}

	return b.String()
}

// productCache wraps the cache with hit/miss metrics. Cache failures are logged and treated as misses.
type productCache struct {
	cache   service.Cache
	metrics service.MetricsRecorder
	logger  *slog.Logger
}

func (c productCache) get(ctx context.Context, name, key string, dest any) bool {
	found, err := c.cache.Get(ctx, key, dest)
	if err != nil {
		c.logger.WarnContext(ctx, "Cache read failed", slog.String("key", key), slog.Any("error", err))
		found = false
	}
	c.metrics.CacheLookup(name, found)

	return found
}

func (c productCache) set(ctx context.Context, key string, value any, ttl time.Duration) {
	if err := c.cache.Set(ctx, key, value, ttl); err != nil {
		c.logger.WarnContext(ctx, "Cache write failed", slog.String("key", key), slog.Any("error", err))
	}
}

// invalidateProduct drops every entry a product write can make stale.
func (c productCache) invalidateProduct(ctx context.Context, productID uuid.UUID, categoryChanged bool) {
	keys := []string{productDetailKey(productID), popularProductsKey}
	if categoryChanged {
		keys = append(keys, categoriesKey)
	}

	if err := c.cache.Delete(ctx, keys...); err != nil {
		c.logger.WarnContext(ctx, "Cache delete failed", slog.Any("keys", keys), slog.Any("error", err))
	}
	if err := c.cache.DeletePattern(ctx, productListPattern); err != nil {
		c.logger.WarnContext(ctx, "Cache pattern delete failed", slog.String("pattern", productListPattern), slog.Any("error", err))
	}
}

func (c productCache) invalidateCategories(ctx context.Context) {
	if err := c.cache.Delete(ctx, categoriesKey); err != nil {
		c.logger.WarnContext(ctx, "Cache delete failed", slog.String("key", categoriesKey), slog.Any("error", err))
	}
}
