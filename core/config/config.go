package config

import (
	"fmt"
	"reflect"
	"strings"

	"dropship-sync/core/logger"
	"dropship-sync/core/server"
	"dropship-sync/core/storefront"
	"dropship-sync/core/supplier"
	"dropship-sync/core/worker"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// It is divided into partial configurations for better modularity.
type Config struct {
	// Server holds configuration for the optional HTTP server.
	Server server.Config `mapstructure:"server"`
	// Supplier holds credentials and endpoint for the dropshipping API.
	Supplier supplier.Config `mapstructure:"supplier"`
	// Storefront holds credentials and domain for the commerce platform.
	Storefront storefront.Config `mapstructure:"storefront"`
	// Sync holds batch execution settings.
	Sync worker.Config `mapstructure:"sync"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
}

// LoadConfig loads configuration from environment variables and .env file.
// Credential validation is deliberately fatal here: a run with missing or
// partial credentials must abort before any remote call is attempted.
func LoadConfig(path string) (*Config, error) {
	// 1. Load .env file if it exists
	envPath := path + "/.env"
	if path == "." {
		envPath = ".env"
	}

	// Ignore error if file doesn't exist (e.g. production)
	_ = godotenv.Overload(envPath)

	v := viper.New()

	// Recursively parse struct tags to set default values
	bindValues(v, Config{}, "")

	// Map environment variables to nested keys (e.g. SUPPLIER_USER -> supplier.user)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate checks that all required credentials are present.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		var missing []string
		if errs, ok := err.(validator.ValidationErrors); ok {
			for _, fe := range errs {
				missing = append(missing, strings.ToUpper(strings.ReplaceAll(
					strings.TrimPrefix(fe.Namespace(), "Config."), ".", "_")))
			}
			return fmt.Errorf("missing or invalid configuration: %s", strings.Join(missing, ", "))
		}
		return err
	}

	// Token and key/secret are alternatives, so neither field alone is
	// "required" in tag terms; the pair-wise rule lives here.
	if !c.Storefront.HasAuth() {
		return fmt.Errorf("missing storefront auth: set STOREFRONT_TOKEN or both STOREFRONT_API_KEY and STOREFRONT_API_SECRET")
	}

	return nil
}

// bindValues uses reflection to iterate over the struct and set default values in Viper
// based on the 'default' and 'mapstructure' tags.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)

	// If it's a pointer, get the element
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")

		// Skip if no tag
		if tag == "" {
			continue
		}

		// Build the key
		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		// If it's a nested struct, recurse
		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		defaultValue := field.Tag.Get("default")
		// Always set default (even if empty) to register the key for AutomaticEnv
		v.SetDefault(key, defaultValue)
	}
}
