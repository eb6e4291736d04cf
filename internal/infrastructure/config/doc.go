// Package config loads and validates FitTrack Core configuration.
//
// Configuration comes from a YAML file with environment variable overrides
// (FITTRACK_* pattern). Validation runs at load time and collects all
// problems into a single error, so a misconfigured deployment fails fast
// with a complete list rather than one complaint per restart.
//
// The JWT signing secret is deliberately part of configuration rather than
// a mutable global: it is loaded once here, validated for minimum length,
// and passed down to the token issuer as an immutable value.
package config
