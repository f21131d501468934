package config

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/spf13/viper"
)

// AppConfig holds the configuration for the application.
// Tags used:
// - mapstructure: used by viper to unmarshal
// - default: default value to set if missing
// - required: if "true", error if missing
type AppConfig struct {
	// Environment specifies the runtime environment (e.g., development, production).
	Environment string `mapstructure:"APP_ENV" default:"development"`
	// LogLevel defines the logging verbosity (e.g., debug, info, error).
	LogLevel string `mapstructure:"LOG_LEVEL" default:"info"`
	// ServerPort is the port where the server will listen.
	ServerPort int `mapstructure:"SERVER_PORT" default:"8080"`
	// ExternalTimeoutSeconds bounds every outbound call (completion service,
	// shipment API, prediction endpoint).
	ExternalTimeoutSeconds int `mapstructure:"EXTERNAL_TIMEOUT_SECONDS" default:"30"`

	// Completion holds the text-completion service configuration.
	Completion CompletionConfig `mapstructure:",squash"`

	// ShipmentAPI holds the shipment store configuration.
	ShipmentAPI ShipmentAPIConfig `mapstructure:",squash"`

	// Prediction holds the SLA prediction endpoint configuration.
	Prediction PredictionConfig `mapstructure:",squash"`

	// Cache holds the optional intent-cache configuration.
	Cache CacheConfig `mapstructure:",squash"`
}

// CompletionConfig holds the credentials for the text-completion service.
type CompletionConfig struct {
	// Endpoint is the chat-completions URL.
	Endpoint string `mapstructure:"COMPLETION_ENDPOINT" required:"true"`
	// APIKey is the bearer credential for the completion service.
	APIKey string `mapstructure:"COMPLETION_API_KEY" required:"true"`
	// Model is the model or deployment name to request.
	Model string `mapstructure:"COMPLETION_MODEL" required:"true"`
}

// ShipmentAPIConfig holds the shipment store connection details.
type ShipmentAPIConfig struct {
	// URL is the shipment API endpoint.
	URL string `mapstructure:"SHIPMENT_API_URL" required:"true"`
}

// PredictionConfig holds the SLA prediction endpoint details.
type PredictionConfig struct {
	// Endpoint is the ML model URL; unused when mock predictions are on.
	Endpoint string `mapstructure:"SLA_PREDICTION_ENDPOINT"`
	// APIKey is the bearer credential for the ML endpoint.
	APIKey string `mapstructure:"SLA_PREDICTION_API_KEY"`
	// UseMock selects mock predictions instead of the live model.
	UseMock bool `mapstructure:"SLA_USE_MOCK_PREDICTIONS" default:"false"`
	// MockPath is the JSON file holding the static prediction table.
	MockPath string `mapstructure:"SLA_MOCK_PREDICTIONS_PATH" default:"mock_predictions.json"`
}

// CacheConfig holds the optional Redis cache details.
type CacheConfig struct {
	// RedisURL enables intent caching when set (redis://[:password@]host[:port][/db]).
	RedisURL string `mapstructure:"REDIS_URL"`
	// IntentTTLSeconds is how long a classified intent stays cached.
	IntentTTLSeconds int `mapstructure:"INTENT_CACHE_TTL_SECONDS" default:"300"`
}

// Load loads configuration from .env files and environment variables.
func Load(path string) (*AppConfig, error) {
	v := viper.New()

	v.AutomaticEnv()

	v.AddConfigPath(path)
	v.SetConfigName(".env")
	v.SetConfigType("env")

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config AppConfig

	if err := processTags(v, &config); err != nil {
		return nil, err
	}

	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}

	if err := validateRequired(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// processTags iterates over the struct fields and sets default values in Viper.
func processTags(v *viper.Viper, config interface{}) error {
	val := reflect.ValueOf(config)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	t := val.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		if field.Type.Kind() == reflect.Struct {
			if err := processTags(v, val.Field(i).Addr().Interface()); err != nil {
				return err
			}
			continue
		}

		key := field.Tag.Get("mapstructure")
		defaultValue := field.Tag.Get("default")

		if key != "" {
			v.BindEnv(key)
		}

		if key != "" && defaultValue != "" {
			v.SetDefault(key, defaultValue)
		}
	}
	return nil
}

// validateRequired checks if fields marked as required have non-zero values.
func validateRequired(config interface{}) error {
	val := reflect.ValueOf(config)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	t := val.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		if field.Type.Kind() == reflect.Struct {
			if err := validateRequired(val.Field(i).Addr().Interface()); err != nil {
				return err
			}
			continue
		}

		required := field.Tag.Get("required")
		if required == "true" {
			value := val.Field(i)
			if isZero(value) {
				key := field.Tag.Get("mapstructure")
				return fmt.Errorf("missing required configuration: %s", key)
			}
		}
	}
	return nil
}

// isZero checks if a reflect.Value is the zero value for its type.
func isZero(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.String:
		return v.String() == ""
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return v.Uint() == 0
	case reflect.Float32, reflect.Float64:
		return v.Float() == 0
	case reflect.Bool:
		return !v.Bool()
	case reflect.Slice, reflect.Map:
		return v.Len() == 0
	default:
		return v.IsZero()
	}
}
