package config

import (
	"os"
	"strings"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"github.com/ogomesoffensivesec/catalogo-client-bmimports/src/lib/slog"
	"github.com/ogomesoffensivesec/catalogo-client-bmimports/src/lib/utils"
)

// Allowed environments
const (
	EnvProd  = "prod"
	EnvLocal = "local"
)

const (
	DefaultHTTPPort       = "8080"
	DefaultSalesEmail     = "vendas@bmimports.com.br"
	DefaultPageSize       = 12
	DefaultImagePath      = "/api/optimize-image"
	DefaultPlaceholder    = "/placeholder.svg"
	DefaultImageCacheTTL  = 7 * 24 * time.Hour
	DefaultPrometheusPort = "2112"
)

// These are set by the build
var (
	hash    string // git hash
	version string // tag like v1.2.0
)

type HttpTimeoutsConfig struct {
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// CatalogConfig holds the settings for talking to the catalog backend.
type CatalogConfig struct {
	// APIBaseURL is the base URL of the catalog backend. Backend-relative
	// image paths are resolved against it as well.
	APIBaseURL string

	// SalesEmail receives the checkout email drafts.
	SalesEmail string

	// PageSize is the number of products per page.
	PageSize int
}

// ImageConfig holds the settings of the image optimization service.
type ImageConfig struct {
	// ServicePath is the same-origin path the optimization service is served on.
	ServicePath string

	// Placeholder is the local image used when a product has no images.
	Placeholder string

	// CacheEnabled turns on the redis cache for optimized images.
	CacheEnabled bool
	CacheTTL     time.Duration
}

type UIConfig struct {
	Dir string
}

type TrackingConfig struct {
	Prometheus     bool
	PrometheusPort string
}

type VersionConfig struct {
	Hash string
	Tag  string
}

// Config is the root object for the configuration.
type Config struct {
	Catalog      *CatalogConfig
	Image        *ImageConfig
	UI           *UIConfig
	Tracking     *TrackingConfig
	HTTPTimeouts *HttpTimeoutsConfig
	Env          string
	HTTPPort     string
	RedisAddr    string
	Version      VersionConfig
}

var c *Config

func init() {
	// A missing .env file is fine, the environment is used as is.
	_ = godotenv.Load()

	slog.SetConfig(&slog.Config{
		Disabled: IsTest(),
		Colorful: IsDevelopment(),
	})
}

// New returns a new Config instance.
func New() *Config {
	return &Config{
		Env:       Env(),
		HTTPPort:  get(os.Getenv("STOREFRONT_HTTP_PORT"), DefaultHTTPPort),
		RedisAddr: os.Getenv("REDIS_ADDR"),

		Catalog: &CatalogConfig{
			APIBaseURL: get(os.Getenv("STOREFRONT_API_BASE_URL"), os.Getenv("VITE_API_BASE_URL")),
			SalesEmail: get(os.Getenv("STOREFRONT_SALES_EMAIL"), DefaultSalesEmail),
			PageSize:   getInt(os.Getenv("STOREFRONT_PAGE_SIZE"), DefaultPageSize),
		},

		Image: &ImageConfig{
			ServicePath:  get(os.Getenv("STOREFRONT_IMAGE_PATH"), DefaultImagePath),
			Placeholder:  get(os.Getenv("STOREFRONT_PLACEHOLDER"), DefaultPlaceholder),
			CacheEnabled: utils.IsTrueString(os.Getenv("STOREFRONT_IMAGE_CACHE")),
			CacheTTL:     utils.ParseDuration(os.Getenv("STOREFRONT_IMAGE_CACHE_TTL"), DefaultImageCacheTTL),
		},

		UI: &UIConfig{
			Dir: os.Getenv("STOREFRONT_UI_DIR"),
		},

		Tracking: &TrackingConfig{
			Prometheus:     utils.IsTrueString(os.Getenv("PROMETHEUS_METRICS")),
			PrometheusPort: get(os.Getenv("PROMETHEUS_PORT"), DefaultPrometheusPort),
		},

		// No write timeout: the image endpoint waits on the upstream fetch
		// for as long as the hosting environment allows.
		HTTPTimeouts: &HttpTimeoutsConfig{
			ReadTimeout: 30 * time.Second,
			IdleTimeout: 60 * time.Second,
		},

		Version: VersionConfig{
			Hash: hash,
			Tag:  version,
		},
	}
}

var cnfMutex sync.Mutex

// Get returns the config object.
func Get() *Config {
	cnfMutex.Lock()
	defer cnfMutex.Unlock()

	if c == nil {
		Set(New())

		slog.Infof("storefront environment: %s", c.Env)
		slog.Infof("storefront version: %s", utils.GetString(c.Version.Tag, "dev"))
	}

	return c
}

// Set enables manipulating the Config package.
func Set(config *Config) *Config {
	c = validate(config)
	return c
}

// Reset resets the config.
func Reset() {
	cnfMutex.Lock()
	defer cnfMutex.Unlock()
	c = nil
}

// Env returns the environment.
func Env() string {
	if strings.EqualFold(os.Getenv("STOREFRONT_ENV"), EnvProd) {
		return EnvProd
	}

	return EnvLocal
}

func IsProduction() bool {
	return Env() == EnvProd
}

// IsDevelopment returns true when it is the local environment.
func IsDevelopment() bool {
	return !IsProduction()
}

// IsTest returns true when the running binary is a test binary.
func IsTest() bool {
	return strings.Contains(os.Args[0], "_test") || strings.Contains(os.Args[0], ".test")
}

func validate(c *Config) *Config {
	if c.Catalog != nil && c.Catalog.APIBaseURL == "" {
		slog.Debug(slog.LogOpts{
			Msg:   "Warning: STOREFRONT_API_BASE_URL is empty. Backend-relative images and catalog calls will not resolve.",
			Level: slog.DL1,
		})
	}

	if c.Catalog != nil && c.Catalog.PageSize <= 0 {
		c.Catalog.PageSize = DefaultPageSize
	}

	if c.Image != nil {
		if c.Image.ServicePath == "" {
			c.Image.ServicePath = DefaultImagePath
		}

		if c.Image.Placeholder == "" {
			c.Image.Placeholder = DefaultPlaceholder
		}

		if c.Image.CacheTTL <= 0 {
			c.Image.CacheTTL = DefaultImageCacheTTL
		}
	}

	return c
}

// get is a helper function to get one of the two values.
func get(vals ...string) string {
	return utils.GetString(vals...)
}

func getInt(val string, def int) int {
	if val == "" {
		return def
	}

	valInt := utils.StringToInt(val)

	if valInt == 0 {
		return def
	}

	return valInt
}
