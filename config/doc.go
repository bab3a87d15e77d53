// SPDX-License-Identifier: MIT

// Package config loads settings for the rankmerge CLI and daemon.
//
// Sources are applied in order, later ones winning:
//
//  1. Default()
//  2. a config file (Load), YAML or JSON by .yaml/.yml/.json, TOML by .toml
//  3. environment variables prefixed RANKMERGE_ (ApplyEnv), optionally seeded
//     from a .env file (LoadEnvFile)
//
// Validate checks the merged result with go-playground/validator tags.
package config
