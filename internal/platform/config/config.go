package config

import (
	"os"
	"time"
)

// Server captures HTTP server level configuration.
type Server struct {
	Addr            string
	ShutdownTimeout time.Duration
	// MockDateEnabled controls whether the X-Mock-Date middleware is
	// mounted. Test and staging environments keep it on; production
	// deployments turn it off.
	MockDateEnabled bool
}

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() Server {
	addr := os.Getenv("TIMESHIFT_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	shutdownTimeout := 10 * time.Second
	if s := os.Getenv("TIMESHIFT_SHUTDOWN_TIMEOUT"); s != "" {
		if d, err := time.ParseDuration(s); err == nil {
			shutdownTimeout = d
		}
	}

	return Server{
		Addr:            addr,
		ShutdownTimeout: shutdownTimeout,
		MockDateEnabled: os.Getenv("TIMESHIFT_MOCK_DATE") != "false",
	}
}
