package config

import "time"

type (
	ReasonSpace struct {
		Default, Maximal int
	}
)

type (
	StatusLine struct {
		// ReasonSpace is the buffer holding the reason phrase. Default is the initially
		// allocated space, Maximal is the longest reason phrase accepted. RFC 9110 places
		// no limit on it, however real servers rarely send more than a few dozens of bytes.
		ReasonSpace ReasonSpace
	}

	NET struct {
		// ReadBufferSize is a size of buffer in bytes which will be used to read from
		// the connection.
		ReadBufferSize int
		// ReadTimeout limits how long a single read may block waiting for the response.
		ReadTimeout time.Duration
	}
)

// Config holds limitations and pre-allocations used by the parsers and the
// transport.
//
// You must ALWAYS modify defaults (returned via Default()) and NEVER try to initialize the
// config manually, because most likely this will result in ambiguous errors.
type Config struct {
	StatusLine StatusLine
	NET        NET
}

// Default returns default config.
func Default() *Config {
	return &Config{
		StatusLine: StatusLine{
			ReasonSpace: ReasonSpace{
				Default: 64,
				Maximal: 4 * 1024,
			},
		},
		NET: NET{
			ReadBufferSize: 4 * 1024,
			ReadTimeout:    30 * time.Second,
		},
	}
}
