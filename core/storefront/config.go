package storefront

// Config holds configuration for the storefront platform API.
type Config struct {
	// Store is the storefront domain, e.g. "example.myshopify.com".
	Store string `mapstructure:"store" default:"" validate:"required"`
	// Token is the admin API access token. Preferred over key/secret.
	Token string `mapstructure:"token" default:""`
	// APIKey is the API key for basic-auth fallback when no token is set.
	APIKey string `mapstructure:"api_key" default:""`
	// APISecret is the API secret paired with APIKey.
	APISecret string `mapstructure:"api_secret" default:""`
	// APIVersion selects the admin API version prefix.
	APIVersion string `mapstructure:"api_version" default:"2025-04"`
	// LocationID is the inventory location id. When empty or non-numeric
	// the first available location is auto-detected at run time.
	LocationID string `mapstructure:"location_id" default:""`
	// TimeoutSeconds is the per-call timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}

// HasAuth reports whether the config carries either a token or a key/secret pair.
func (c Config) HasAuth() bool {
	return c.Token != "" || (c.APIKey != "" && c.APISecret != "")
}
