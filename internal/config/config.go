package config

import (
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type HTTPServer struct {
	Addr            string        `yaml:"address" env:"HTTP_ADDR" env-default:":8080"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"HTTP_SHUTDOWN_TIMEOUT" env-default:"5s"`
}

// WooCommerce holds the three upstream surfaces: the public store API, the
// keyed REST API, and the webhook shared secret used by the revalidation
// receiver. Presence is the only validation performed.
type WooCommerce struct {
	StoreURL       string `yaml:"WC_STORE_URL" env:"WC_STORE_URL" env-required:"true"`
	RestURL        string `yaml:"WC_REST_URL" env:"WC_REST_URL" env-required:"true"`
	ConsumerKey    string `yaml:"WC_CONSUMER_KEY" env:"WC_CONSUMER_KEY" env-required:"true"`
	ConsumerSecret string `yaml:"WC_CONSUMER_SECRET" env:"WC_CONSUMER_SECRET" env-required:"true"`
	WebhookSecret  string `yaml:"WC_WEBHOOK_SECRET" env:"WC_WEBHOOK_SECRET" env-required:"true"`
}

type RedisConnect struct {
	URL string `yaml:"REDIS_URL" env:"REDIS_URL" env-required:"true"`
}

type CacheConfig struct {
	ProductListTTL   time.Duration `yaml:"PRODUCT_LIST_TTL" env:"PRODUCT_LIST_TTL" env-default:"60s"`
	ProductDetailTTL time.Duration `yaml:"PRODUCT_DETAIL_TTL" env:"PRODUCT_DETAIL_TTL" env-default:"300s"`
	CategoriesTTL    time.Duration `yaml:"CATEGORIES_TTL" env:"CATEGORIES_TTL" env-default:"3600s"`
}

type Tracing struct {
	OTLPEndpoint string `yaml:"OTEL_EXPORTER_OTLP_ENDPOINT" env:"OTEL_EXPORTER_OTLP_ENDPOINT" env-default:""`
}

type Config struct {
	Env          string       `yaml:"env" env:"ENV" env-default:"development"`
	SiteURL      string       `yaml:"SITE_URL" env:"SITE_URL" env-default:"http://localhost:3000"`
	HTTPServer   HTTPServer   `yaml:"http_server"`
	WooCommerce  WooCommerce  `yaml:"woocommerce"`
	RedisConnect RedisConnect `yaml:"redis"`
	Cache        CacheConfig  `yaml:"cache"`
	Tracing      Tracing      `yaml:"tracing"`
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// MustLoad reads configuration from the environment, or from a YAML file when
// CONFIG_PATH is set, and exits the process when a required value is missing.
func MustLoad() *Config {

	var cfg Config

	if configPath := os.Getenv("CONFIG_PATH"); configPath != "" {

		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			log.Fatalf("config file does not exist: %s", configPath)
		}

		if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
			log.Fatalf("can not read config file: %s", err.Error())
		}

		return &cfg
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		log.Fatalf("can not read config from environment: %s", err.Error())
	}

	return &cfg
}
