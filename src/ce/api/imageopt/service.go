package imageopt

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/ogomesoffensivesec/catalogo-client-bmimports/src/lib/config"
	"github.com/ogomesoffensivesec/catalogo-client-bmimports/src/lib/rediscache"
	"github.com/ogomesoffensivesec/catalogo-client-bmimports/src/lib/slog"
	"github.com/ogomesoffensivesec/catalogo-client-bmimports/src/lib/tracking"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// CacheKeyPrefix prefixes every optimized image stored in redis.
const CacheKeyPrefix = "storefront:image:"

// Service fetches source images and optimizes them.
type Service struct {
	Fetcher   Fetcher
	Optimizer ImageOptimizer
	Options   Options

	// Cache is optional. When nil every request hits the upstream.
	Cache    *redis.Client
	CacheTTL time.Duration

	group singleflight.Group
}

// ServiceOpts configures NewService.
type ServiceOpts struct {
	// FailFast connects to redis with a single attempt instead of
	// waiting for the retries.
	FailFast bool
}

// NewService returns a service configured from the environment.
func NewService(opts ServiceOpts) *Service {
	cnf := config.Get()

	s := &Service{
		Fetcher:   HTTPFetcher{},
		Optimizer: NewImageOptimizer(),
		Options:   DefaultOptions(),
	}

	if cnf.Image != nil && cnf.Image.CacheEnabled {
		if opts.FailFast {
			s.Cache = rediscache.TryClient()
		} else {
			s.Cache = rediscache.Client()
		}

		s.CacheTTL = cnf.Image.CacheTTL
	}

	return s
}

// CacheKey returns the content address of the optimized image.
func CacheKey(url string, opts Options) string {
	sum := sha256.Sum256(fmt.Appendf(nil, "%s|%dx%d|q%d|crop=%t", url, opts.Width, opts.Height, opts.Quality, opts.Crop))
	return CacheKeyPrefix + hex.EncodeToString(sum[:])
}

// Optimize returns the optimized version of the image behind url.
func (s *Service) Optimize(ctx context.Context, url string) ([]byte, error) {
	start := time.Now()

	if url == "" {
		tracking.ImageOptimization(tracking.OutcomeMissingParameter, start)
		return nil, ErrMissingParameter
	}

	key := CacheKey(url, s.Options)

	if content := s.cached(ctx, key); content != nil {
		tracking.ImageOptimization(tracking.OutcomeCacheHit, start)
		return content, nil
	}

	// Identical concurrent requests share one fetch and one transform.
	v, err, _ := s.group.Do(key, func() (any, error) {
		return s.optimize(context.WithoutCancel(ctx), key, url)
	})

	switch {
	case err == nil:
		tracking.ImageOptimization(tracking.OutcomeOK, start)
	case errors.Is(err, ErrUpstreamFetchFailed):
		tracking.ImageOptimization(tracking.OutcomeFetchFailed, start)
	default:
		tracking.ImageOptimization(tracking.OutcomeTransformFailed, start)
	}

	if err != nil {
		return nil, err
	}

	return v.([]byte), nil
}

func (s *Service) optimize(ctx context.Context, key, url string) ([]byte, error) {
	content, err := s.Fetcher.Fetch(ctx, url)

	if err != nil {
		return nil, err
	}

	optimized, err := s.Optimizer.Optimize(content, s.Options)

	if err != nil {
		if !errors.Is(err, ErrTransformFailed) {
			err = errors.Wrap(ErrTransformFailed, err.Error())
		}

		return nil, err
	}

	if s.Cache != nil {
		if err := s.Cache.Set(ctx, key, optimized, s.CacheTTL).Err(); err != nil {
			logCacheError("write", err)
		}
	}

	return optimized, nil
}

func (s *Service) cached(ctx context.Context, key string) []byte {
	if s.Cache == nil {
		return nil
	}

	content, err := s.Cache.Get(ctx, key).Bytes()

	if err != nil {
		if err != redis.Nil {
			logCacheError("read", err)
		}

		return nil
	}

	slog.Debug(slog.LogOpts{
		Msg:     "optimized image served from cache",
		Level:   slog.DL3,
		Payload: []zap.Field{zap.String("key", key)},
	})

	return content
}

func logCacheError(op string, err error) {
	if rediscache.IsConnectionError(err) {
		slog.Warn("image cache unreachable", zap.String("op", op), zap.Error(err))
		return
	}

	slog.Error("image cache error", zap.String("op", op), zap.Error(err))
}
