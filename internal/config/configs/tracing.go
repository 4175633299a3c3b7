package configs

// Tracing configures OpenTelemetry export. Tracing stays off while Endpoint
// is empty.
type Tracing struct {
	// Endpoint is an OTLP/HTTP collector URL such as
	// http://localhost:4318.
	Endpoint    string `env:"ENDPOINT"`
	ServiceName string `env:"SERVICE_NAME" envDefault:"adpaas"`
}
