// Package config loads optional tool settings from a YAML file.
package config

import "time"

// Config carries tool settings. Everything has a default; the file is
// optional and flags override whatever it says.
type Config struct {
	Report ReportConfig
	Client ClientConfig
}

type ReportConfig struct {
	// Port the local report listener binds on.
	Port int
}

type ClientConfig struct {
	// Timeout bounds a whole upload or download. Zero means none: an
	// unresponsive remote stalls the run until the connection dies.
	Timeout time.Duration

	DialTimeout time.Duration
}

func Default() Config {
	return Config{
		Report: ReportConfig{Port: 8077},
		Client: ClientConfig{
			Timeout:     0,
			DialTimeout: 5 * time.Second,
		},
	}
}
