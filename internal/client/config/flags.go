package config

import "github.com/spf13/pflag"

// BindFlags registers the configuration flags on fs. Current values of cfg
// become the flag defaults, so a flag only overrides what the earlier
// sources produced when it is given explicitly.
//
// The config flag is registered so the command line accepts it; its value
// has already been consumed by LoadConfig.
func BindFlags(fs *pflag.FlagSet, cfg *Config) {
	fs.StringP("config", "c", "", "path to JSON config file")
	fs.StringVarP(&cfg.APIBaseURL, "api", "a", cfg.APIBaseURL, "base URL of the journal API")
	fs.StringVar(&cfg.DatabasePath, "db", cfg.DatabasePath, "path of the local SQLite database")
	fs.DurationVarP(&cfg.OnlineCheckInterval, "interval", "i", cfg.OnlineCheckInterval, "online status check interval")
	fs.DurationVar(&cfg.RequestTimeout, "timeout", cfg.RequestTimeout, "timeout of a single API request")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: debug, info, warn, error")
}
