// Package config provides configuration structures and utilities for anchorscan.
// It defines the phrase and matching options, report format preferences,
// and the optional YAML configuration file that supplies defaults for them.
package config
