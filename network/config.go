package network

import (
	"time"
)

// Config holds remote control server configuration
type Config struct {
	// Address to bind
	Address string

	// Connection limits
	MaxSessions int
	ReadLimit   int64 // Max inbound frame size in bytes

	// Timing
	ReadTimeout  time.Duration // Idle time before a silent client is dropped
	WriteTimeout time.Duration
	PingInterval time.Duration

	// MaxTrajectorySamples caps the trajectory op
	MaxTrajectorySamples int
}

// withDefaults returns a copy with every non-positive limit or duration replaced by its default
func (c *Config) withDefaults() *Config {
	d := DefaultConfig()
	out := *c
	if out.Address == "" {
		out.Address = d.Address
	}
	if out.MaxSessions <= 0 {
		out.MaxSessions = d.MaxSessions
	}
	if out.ReadLimit <= 0 {
		out.ReadLimit = d.ReadLimit
	}
	if out.ReadTimeout <= 0 {
		out.ReadTimeout = d.ReadTimeout
	}
	if out.WriteTimeout <= 0 {
		out.WriteTimeout = d.WriteTimeout
	}
	if out.PingInterval <= 0 {
		out.PingInterval = d.PingInterval
	}
	if out.MaxTrajectorySamples <= 0 {
		out.MaxTrajectorySamples = d.MaxTrajectorySamples
	}
	return &out
}

// DefaultConfig returns production-safe defaults
func DefaultConfig() *Config {
	return &Config{
		Address:              ":7777",
		MaxSessions:          64,
		ReadLimit:            1 << 16,
		ReadTimeout:          60 * time.Second,
		WriteTimeout:         10 * time.Second,
		PingInterval:         25 * time.Second,
		MaxTrajectorySamples: 512,
	}
}
