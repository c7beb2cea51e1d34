package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	API          APIConfig     `yaml:"api"`
	Sheets       SheetsConfig  `yaml:"sheets"`
	Report       ReportConfig  `yaml:"report"`
	Sync         SyncConfig    `yaml:"sync"`
	Destinations []Destination `yaml:"destinations"`
	LogLevel     string        `yaml:"log_level"`
}

type APIConfig struct {
	BaseURL    string `yaml:"base_url"`
	Token      string `yaml:"token"`
	PageSize   int    `yaml:"page_size"`
	MaxPages   int    `yaml:"max_pages"`
	TimeoutSec int    `yaml:"timeout_sec"`
}

func (a APIConfig) Timeout() time.Duration {
	return time.Duration(a.TimeoutSec) * time.Second
}

type SheetsConfig struct {
	SpreadsheetID   string `yaml:"spreadsheet_id"`
	CredentialsFile string `yaml:"credentials_file"`
}

type ReportConfig struct {
	Timezone string `yaml:"timezone"`
}

type SyncConfig struct {
	IntervalSec int `yaml:"interval_sec"`
	TimeoutSec  int `yaml:"timeout_sec"`
}

func (s SyncConfig) Interval() time.Duration {
	return time.Duration(s.IntervalSec) * time.Second
}

func (s SyncConfig) Timeout() time.Duration {
	return time.Duration(s.TimeoutSec) * time.Second
}

// Destination binds a logical sheet name to one assistant and one schema.
type Destination struct {
	Name        string  `yaml:"name"`
	AssistantID string  `yaml:"assistant_id"`
	Sheet       string  `yaml:"sheet"`
	Range       string  `yaml:"range"`
	Schema      string  `yaml:"schema"`
	MinSeconds  float64 `yaml:"min_seconds"`
}

// Load reads the optional YAML config file, expanding ${VAR} references from
// the environment (.env is loaded first). A missing file is not an error;
// defaults plus the recognized environment keys alone are enough to run.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	var cfg Config

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// env-only run
	case err != nil:
		return nil, fmt.Errorf("read config file: %w", err)
	default:
		expanded := os.ExpandEnv(string(data))
		if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	cfg.setDefaults()

	return &cfg, nil
}

func (c *Config) setDefaults() {
	if c.API.BaseURL == "" {
		c.API.BaseURL = os.Getenv("VAPI_URL")
	}
	if c.API.Token == "" {
		c.API.Token = os.Getenv("BEARER_TOKEN")
	}
	if c.API.PageSize == 0 {
		c.API.PageSize = 100 // the API's stated maximum
	}
	if c.API.MaxPages == 0 {
		c.API.MaxPages = 1000
	}
	if c.API.TimeoutSec == 0 {
		c.API.TimeoutSec = 30
	}
	if c.Sheets.SpreadsheetID == "" {
		c.Sheets.SpreadsheetID = os.Getenv("SPREADSHEET_ID")
	}
	if c.Sheets.CredentialsFile == "" {
		c.Sheets.CredentialsFile = os.Getenv("SERVICE_ACCOUNT_FILE")
	}
	if c.Report.Timezone == "" {
		c.Report.Timezone = "Australia/Sydney"
	}
	if c.Sync.TimeoutSec == 0 {
		c.Sync.TimeoutSec = 300
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}

	if len(c.Destinations) == 0 {
		c.Destinations = defaultDestinations()
	}
	for i := range c.Destinations {
		d := &c.Destinations[i]
		if d.Range == "" {
			d.Range = d.Sheet + "!A1:Z"
		}
		if d.Schema == "" {
			d.Schema = "reduced"
		}
		if d.MinSeconds == 0 {
			d.MinSeconds = 20
		}
	}
}

// defaultDestinations is the shipped routing table: two accounts, one
// outbound and one inbound line each. The primary outbound line keeps the
// wide export; the rest use the short one.
func defaultDestinations() []Destination {
	return []Destination{
		{
			Name:        "outbound",
			AssistantID: os.Getenv("ASSISTANT_ID"),
			Sheet:       "Outbound",
			Schema:      "full",
		},
		{
			Name:        "inbound",
			AssistantID: os.Getenv("INBOUND_ASSISTANT_ID"),
			Sheet:       "Inbound",
		},
		{
			Name:        "partner-outbound",
			AssistantID: os.Getenv("PARTNER_ASSISTANT_ID"),
			Sheet:       "PartnerOutbound",
		},
		{
			Name:        "partner-inbound",
			AssistantID: os.Getenv("PARTNER_INBOUND_ASSISTANT_ID"),
			Sheet:       "PartnerInbound",
		},
	}
}
