// Package config loads folio's settings.
//
// # Resolution
//
// Load builds a Config in three layers, each overriding the previous one:
//
//  1. Defaults()
//  2. The TOML file (explicit path, or ~/.config/folio/config.toml)
//  3. FOLIO_* environment variables (FOLIO_SSH_PORT, FOLIO_LOG_LEVEL, ...)
//
// A missing file is not an error. A malformed file is, and the error mentions
// "parse config". Paths starting with ~ are expanded against $HOME.
//
// # File format
//
//	content   = "~/portfolio.yaml"   # empty: embedded portfolio
//	prefs     = "~/.config/folio/prefs.toml"
//	log_file  = "~/.local/state/folio/folio.log"
//	log_level = "info"
//
//	[ssh]
//	host                  = "0.0.0.0"
//	port                  = 2222
//	host_key              = "~/.config/folio/ssh_host_ed25519"
//	idle_timeout          = "2m"
//	rate_limit_per_minute = 30
//	burst                 = 10
//
// # Validation
//
// The port must be 1-65535, the rate limit and burst positive, the idle
// timeout non-negative, and the log level one of debug, info, warn, error.
package config
