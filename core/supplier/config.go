package supplier

// Config holds configuration for the supplier SOAP endpoint.
type Config struct {
	// User is the dropshipping API username.
	User string `mapstructure:"user" default:"" validate:"required"`
	// Pass is the dropshipping API password.
	Pass string `mapstructure:"pass" default:"" validate:"required"`
	// Endpoint is the URL of the supplier SOAP API.
	Endpoint string `mapstructure:"endpoint" default:"" validate:"required,url"`
	// TimeoutSeconds is the per-call timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"60"`
}
