package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/maxaizer/vacancy-saver/internal/entities"
	"github.com/maxaizer/vacancy-saver/internal/normalizer"
	gocache "github.com/patrickmn/go-cache"
	log "github.com/sirupsen/logrus"
)

// CachedProvider remembers successful searches so a repeated query within one session
// is answered without another network round trip.
type CachedProvider struct {
	provider Provider
	cache    *gocache.Cache
}

func NewCachedProvider(provider Provider, ttl time.Duration) *CachedProvider {
	return &CachedProvider{provider: provider, cache: gocache.New(ttl, 2*ttl)}
}

func (c *CachedProvider) Name() entities.Provider {
	return c.provider.Name()
}

func (c *CachedProvider) Search(ctx context.Context, keyword string, quantity int) (normalizer.Result, error) {
	key := fmt.Sprintf("%s|%s|%d", c.provider.Name(), strings.TrimSpace(keyword), quantity)

	if cached, found := c.cache.Get(key); found {
		log.Debugf("using cached %s results for %q", c.provider.Name(), keyword)
		return cached.(normalizer.Result), nil
	}

	result, err := c.provider.Search(ctx, keyword, quantity)
	if err != nil {
		return result, err
	}

	c.cache.Set(key, result, gocache.DefaultExpiration)
	return result, nil
}
