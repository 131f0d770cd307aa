// Package config loads process configuration from environment variables.
// The only required setting is the Telegram bot token; everything else has a
// working default. A missing token is a fatal startup condition surfaced to
// the entrypoint before anything partially starts.
package config
