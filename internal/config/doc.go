// Package config loads what the mapgen command needs: pipeline documents written in TOML and
// runtime settings read from the environment.
package config
