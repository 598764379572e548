package shared

import (
	"context"
	"fmt"
	"math"
	"net/url"
	"slices"
	"strconv"
	"strings"
	"travel/shared/cache"
	"travel/shared/dto"
	"travel/shared/failure"

	"github.com/rs/zerolog/log"
)

const cacheKeySeparator = ":"

func ConvertStringToBool(value string) *bool {
	if value == "" {
		return nil
	}

	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		log.Error().Err(err).Msg("failed to convert string to bool")

		return nil
	}

	return &boolValue
}

// ParseID reads a positive integer identifier from a path or query value.
func ParseID(name, value string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil || id <= 0 {
		return 0, failure.BadRequestFromString(fmt.Sprintf("invalid %s %q", name, value)) //nolint:wrapcheck
	}

	return id, nil
}

func CalculateTotalPage(total, limit int) (res int) {
	if total == 0 || limit <= 0 {
		res = 1
	} else {
		res = int(math.Ceil(float64(total) / float64(limit)))
	}

	return res
}

func FilterByID(id any, fieldID, table string) dto.FilterGroup {
	return dto.FilterGroup{
		Filters: []any{
			dto.Filter{
				Field:    fieldID,
				Value:    id,
				Operator: dto.FilterOperatorEq,
				Table:    table,
			},
		},
	}
}

// BuildCacheKey joins the parts with ":".
func BuildCacheKey(parts ...string) string {
	return strings.Join(parts, cacheKeySeparator)
}

// BuildCacheKeyWithQuery appends the parameters in key order so equal
// parameter sets share one cache entry.
func BuildCacheKeyWithQuery(prefix string, params map[string]string) string {
	if len(params) == 0 {
		return prefix
	}

	keys := make([]string, 0, len(params))
	for key := range params {
		keys = append(keys, key)
	}

	slices.Sort(keys)

	values := url.Values{}
	for _, key := range keys {
		values.Set(key, params[key])
	}

	return prefix + cacheKeySeparator + values.Encode()
}

// InvalidateCaches clears each prefix in a detached goroutine so a caller's
// cancelled context does not leave stale entries behind.
func InvalidateCaches(ctx context.Context, redisCache cache.RedisCache, prefixes ...string) {
	go func() {
		c := context.WithoutCancel(ctx)

		for _, prefix := range prefixes {
			if err := redisCache.Clear(c, prefix); err != nil {
				log.Error().Err(err).Str("prefix", prefix).Msg("failed to invalidate cache")
			}
		}
	}()
}
