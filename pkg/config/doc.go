// Package config loads server configuration from a YAML file and the
// environment.
//
// Values resolve in precedence order: environment variables
// (TALENTHUB_*), then the config file (talenthub.yml under
// TALENTHUB_CONFIG_PATH, default /etc/talenthub), then built-in defaults.
// Each attribute remembers which source supplied it so that
// "talenthub configuration show" can report provenance.
//
// The credential signing secret is deliberately not a config attribute; it
// is read only from the TALENTHUB_TOKEN_SECRET environment variable by the
// server command.
package config
