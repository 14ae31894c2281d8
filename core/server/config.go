package server

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// CronSecret is the shared secret required on sync triggers.
	// When empty, the trigger endpoints are left unauthenticated.
	CronSecret string `mapstructure:"cron_secret" default:""`
}

// SecretHeader is the request header carrying the shared trigger secret.
const SecretHeader = "X-Cron-Secret"

// RequiresAuth reports whether trigger endpoints must present the shared secret.
func (c Config) RequiresAuth() bool {
	return c.CronSecret != ""
}
