// Package config loads runtime configuration for the moodjournal CLI.
//
// Sources and precedence, later sources override earlier ones:
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. A .env file in the working directory and the process environment.
//  3. An optional JSON file selected with -c or --config.
//  4. Command-line flags registered by BindFlags.
//
// # Environment
//
//	MOODJOURNAL_API_BASE    base URL of the journal API
//	MOODJOURNAL_DB          path of the local SQLite file
//	MOODJOURNAL_LOG_LEVEL   debug, info, warn or error
//
// # JSON schema
//
// Intervals use timex.Duration, so they may be strings like "30s" or integer
// nanoseconds:
//
//	{
//	  "api_base_url": "https://journal.example.com/api",
//	  "database_path": "moodjournal.db",
//	  "online_check_interval": "30s",
//	  "request_timeout": "15s",
//	  "log_level": "info"
//	}
package config
