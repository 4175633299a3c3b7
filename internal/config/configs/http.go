package configs

import "time"

// HTTP defines configuration for the HTTP server. Port is the TCP port to
// bind; the timeouts guard against slow clients and bound graceful shutdown.
type HTTP struct {
	// Port is the TCP port the HTTP server will listen on. Defaults to 8080.
	Port uint16 `env:"PORT" envDefault:"8080"`
	// ReadHeaderTimeout limits how long a client may take to send headers.
	ReadHeaderTimeout time.Duration `env:"READ_HEADER_TIMEOUT" envDefault:"5s"`
	// WriteTimeout covers PDF rendering of the largest forms.
	WriteTimeout time.Duration `env:"WRITE_TIMEOUT" envDefault:"30s"`
	// ShutdownTimeout is how long in-flight requests get after a signal.
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"5s"`
}
