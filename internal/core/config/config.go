package config

import (
	"errors"
	"fmt"
	"reflect"
	"time"

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
	// RedisURL is the connection string for the batch record store.
	RedisURL string `mapstructure:"REDIS_URL" default:"redis://localhost:6379/0"`

	// Sigep holds the SIGEP contract credentials and endpoint settings.
	Sigep SigepConfig `mapstructure:",squash"`

	// SRO holds the tracking service credentials.
	SRO SROConfig `mapstructure:",squash"`

	// Proxy holds the optional upstream proxy used for outbound calls.
	Proxy ProxyConfig `mapstructure:",squash"`
}

// SigepConfig holds the contract data used against the AtendeCliente service.
type SigepConfig struct {
	// Contract is the contract number (idContrato).
	Contract string `mapstructure:"SIGEP_CONTRACT" required:"true"`
	// CNPJ is the tax id used as identificador when requesting labels.
	CNPJ string `mapstructure:"SIGEP_CNPJ" required:"true"`
	// User is the SIGEP login.
	User string `mapstructure:"SIGEP_USER" required:"true"`
	// Password is the SIGEP password.
	Password string `mapstructure:"SIGEP_PASSWORD" required:"true"`
	// PostageCard is the postage card number (cartaoPostagem).
	PostageCard string `mapstructure:"SIGEP_POSTAGE_CARD" required:"true"`
	// OriginZip is the zip code shipments leave from.
	OriginZip string `mapstructure:"SIGEP_ORIGIN_ZIP" required:"true"`
	// AdminCode is the administrative code (codAdministrativo).
	AdminCode string `mapstructure:"SIGEP_ADMIN_CODE" required:"true"`
	// RegionalCode is the regional office number (numero_diretoria).
	RegionalCode string `mapstructure:"SIGEP_REGIONAL_CODE" required:"true"`
	// Sandbox selects the homologation endpoint instead of production.
	Sandbox bool `mapstructure:"SIGEP_SANDBOX" default:"true"`
	// URL overrides the endpoint chosen by Sandbox when set.
	URL string `mapstructure:"SIGEP_URL"`
	// TimeoutSeconds is the flat client timeout for SIGEP calls.
	TimeoutSeconds int `mapstructure:"SIGEP_TIMEOUT_SECONDS" default:"30"`

	// Sender is the address block printed in every PLP.
	Sender SenderConfig `mapstructure:",squash"`
}

// SenderConfig holds the sender address block.
type SenderConfig struct {
	Name         string `mapstructure:"SIGEP_SENDER_NAME" required:"true"`
	Street       string `mapstructure:"SIGEP_SENDER_STREET" required:"true"`
	Number       string `mapstructure:"SIGEP_SENDER_NUMBER" required:"true"`
	Complement   string `mapstructure:"SIGEP_SENDER_COMPLEMENT"`
	Neighborhood string `mapstructure:"SIGEP_SENDER_NEIGHBORHOOD"`
	Zip          string `mapstructure:"SIGEP_SENDER_ZIP" required:"true"`
	City         string `mapstructure:"SIGEP_SENDER_CITY" required:"true"`
	State        string `mapstructure:"SIGEP_SENDER_STATE" required:"true"`
	Phone        string `mapstructure:"SIGEP_SENDER_PHONE"`
	Fax          string `mapstructure:"SIGEP_SENDER_FAX"`
	Email        string `mapstructure:"SIGEP_SENDER_EMAIL"`
}

// Timeout returns the configured SIGEP client timeout.
func (c SigepConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// SROConfig holds the credentials for the Rastro tracking service.
type SROConfig struct {
	// User is the SRO login.
	User string `mapstructure:"SRO_USER" required:"true"`
	// Password is the SRO password.
	Password string `mapstructure:"SRO_PASSWORD" required:"true"`
	// URL is the Rastro SOAP endpoint.
	URL string `mapstructure:"SRO_URL" default:"https://webservice.correios.com.br/service/rastro"`
	// TimeoutSeconds is the flat client timeout for tracking lookups.
	TimeoutSeconds int `mapstructure:"SRO_TIMEOUT_SECONDS" default:"3"`
}

// Timeout returns the configured SRO client timeout.
func (c SROConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// ProxyConfig holds the upstream proxy settings.
type ProxyConfig struct {
	Enabled  bool   `mapstructure:"PROXY_ENABLED" default:"false"`
	Hostname string `mapstructure:"PROXY_HOSTNAME"`
	Port     int    `mapstructure:"PROXY_PORT"`
	Username string `mapstructure:"PROXY_USERNAME"`
	Password string `mapstructure:"PROXY_PASSWORD"`
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

// processTags iterates over the struct fields, binds env keys and sets default values in Viper.
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

		if key == "" {
			continue
		}

		if err := v.BindEnv(key); err != nil {
			return fmt.Errorf("failed to bind env %s: %w", key, err)
		}

		if defaultValue != "" {
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

		if field.Tag.Get("required") == "true" && isZero(val.Field(i)) {
			return fmt.Errorf("missing required configuration: %s", field.Tag.Get("mapstructure"))
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
