package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

var singleConfig *Config = nil

type Config struct {
	Service  *svcConfig
	Pipeline *pipelineConfig
}

type svcConfig struct {
	Address        string   `envconfig:"INSIGHT_API_ADDRESS" default:":3443"`
	MetricsAddress string   `envconfig:"INSIGHT_API_METRICS_ADDRESS" default:":8080"`
	BaseUrl        string   `envconfig:"INSIGHT_API_BASE_URL" default:"http://localhost:3443"`
	LogLevel       string   `envconfig:"INSIGHT_API_LOG_LEVEL" default:"info"`
	CorsOrigins    []string `envconfig:"INSIGHT_API_CORS_ORIGINS" default:"http://localhost:3000"`
}

type pipelineConfig struct {
	// Workers bounds the number of analysis pipelines running at once.
	Workers int `envconfig:"INSIGHT_API_PIPELINE_WORKERS" default:"4"`
	// StageDelay simulates the latency of scraping and inference stages.
	StageDelay time.Duration `envconfig:"INSIGHT_API_STAGE_DELAY" default:"2s"`
	// JobTTL is how long terminal jobs are kept before the reaper evicts
	// them. Zero disables eviction.
	JobTTL       time.Duration `envconfig:"INSIGHT_API_JOB_TTL" default:"24h"`
	ReapInterval time.Duration `envconfig:"INSIGHT_API_REAP_INTERVAL" default:"1h"`
}

func New() (*Config, error) {
	if singleConfig == nil {
		singleConfig = new(Config)
		if err := envconfig.Process("", singleConfig); err != nil {
			return nil, err
		}
	}
	return singleConfig, nil
}
