package autodns

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

const ServerConfigName = "autodns.json"

type LogFormat string

const (
	LogFormatDefault LogFormat = ""
	LogFormatConsole LogFormat = "console"
	LogFormatJSON    LogFormat = "json"
)

type LogLevel string

const (
	LogLevelDefault LogLevel = ""
	LogLevelDebug   LogLevel = "debug"
	LogLevelInfo    LogLevel = "info"
)

// Config is constructed once at process start and passed into
// NewSynchronizer. There is no ambient global configuration.
type Config struct {
	// Domain is the parent DNS domain, e.g. "example.com". Required.
	Domain string `json:"domain"`

	// ZoneID identifies the hosted zone holding the records. Required.
	ZoneID string `json:"zoneID"`

	// Region selects the provider API region. Empty defers to the
	// environment's default.
	Region string `json:"region,omitempty"`

	// RecordPrefix is placed ahead of the dns tag in every record name,
	// e.g. "autodns-". Usually empty.
	RecordPrefix string `json:"recordPrefix,omitempty"`

	Log LogConfig `json:"log,omitempty"`
}

type LogConfig struct {
	Format LogFormat `json:"format,omitempty"`
	Level  LogLevel  `json:"level,omitempty"`
}

// RecordName builds the fully-qualified record name for a dns tag value,
// without a trailing dot.
func (c Config) RecordName(tag string) string {
	return c.RecordPrefix + tag + "." + c.Domain
}

func (c Config) validate() error {
	if c.Domain == "" {
		return errors.New("missing domain")
	}
	if c.ZoneID == "" {
		return errors.New("missing zone id")
	}
	return nil
}

func ParseConfig(configPath string) (Config, error) {
	var conf Config
	byt, err := os.ReadFile(configPath)
	if err != nil {
		return conf, fmt.Errorf("read file: %w", err)
	}
	if err := json.Unmarshal(byt, &conf); err != nil {
		return conf, fmt.Errorf("unmarshal: %w", err)
	}
	if err := conf.validate(); err != nil {
		return conf, fmt.Errorf("validate: %w", err)
	}
	return conf, nil
}

// ConfigFromEnv reads configuration from the environment, the form used when
// running as an event handler.
func ConfigFromEnv() (Config, error) {
	conf := Config{
		Domain:       os.Getenv("DOMAIN_NAME"),
		ZoneID:       os.Getenv("ROUTE53_ZONE_ID"),
		Region:       os.Getenv("AWS_PRIMARY_REGION"),
		RecordPrefix: os.Getenv("RECORD_PREFIX"),
		Log: LogConfig{
			Format: LogFormat(os.Getenv("LOG_FORMAT")),
			Level:  LogLevel(os.Getenv("LOG_LEVEL")),
		},
	}
	if err := conf.validate(); err != nil {
		return conf, fmt.Errorf("validate: %w", err)
	}
	return conf, nil
}
