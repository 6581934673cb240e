package config

import "time"

// Config holds runtime settings for the moodjournal CLI.
type Config struct {
	APIBaseURL          string
	DatabasePath        string
	OnlineCheckInterval time.Duration
	RequestTimeout      time.Duration
	LogLevel            string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:8000/api"
	c.DatabasePath = "moodjournal.db"
	c.OnlineCheckInterval = 30 * time.Second
	c.RequestTimeout = 15 * time.Second
	c.LogLevel = "info"
}

// EnvFile is the dotenv file read from the working directory.
const EnvFile = ".env"

// LoadConfig builds a Config from defaults, the environment and the JSON
// file named in args. Flags are applied afterwards by the command through
// BindFlags.
func LoadConfig(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseEnv(cfg, EnvFile); err != nil {
		return nil, err
	}
	if err := parseJson(cfg, args); err != nil {
		return nil, err
	}
	return cfg, nil
}
