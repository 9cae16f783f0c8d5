// Package config manages user-level settings stored at ~/.create-fhevm/config.yaml.
// It provides functions to load, read, and write configuration keys such as
// the git_init toggle. Environment variables prefixed CREATE_FHEVM_ override
// file values.
package config
