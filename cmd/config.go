package main

import (
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/caarlos0/env"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gitlab.com/web-doodle/face-annotator/pkg/face"
)

const (
	providerAzure       = "azure"
	providerRekognition = "rekognition"
)

// Compatible with "github.com/caarlos0/env"
type ServiceConfig struct {
	Endpoint string `env:"AI_SERVICE_ENDPOINT" validate:"required_if=Provider azure"`
	Key      string `env:"AI_SERVICE_KEY" validate:"required_if=Provider azure"`
	Provider string `env:"AI_SERVICE_PROVIDER" envDefault:"azure" validate:"oneof=azure rekognition"`
	Region   string `env:"AWS_REGION" envDefault:"us-east-1"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report failures by environment variable name.
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		return field.Tag.Get("env")
	})
	return v
}

// NewServiceEnvConfig reads the service settings from .env and the process environment.
// It makes no network call.
func NewServiceEnvConfig() (*ServiceConfig, error) {
	_ = godotenv.Load()
	return parseServiceConfig()
}

func parseServiceConfig() (*ServiceConfig, error) {
	config := &ServiceConfig{}
	if err := env.Parse(config); err != nil {
		return nil, fmt.Errorf("cannot marshal environment into config: %w", err)
	}
	config.Endpoint = strings.TrimSuffix(strings.TrimSpace(config.Endpoint), "/")
	config.Key = strings.TrimSpace(config.Key)
	config.Provider = strings.ToLower(strings.TrimSpace(config.Provider))

	if err := validate.Struct(config); err != nil {
		var validationErrs validator.ValidationErrors
		if !errors.As(err, &validationErrs) {
			return nil, err
		}
		configErr := &face.ConfigurationError{}
		for _, fieldErr := range validationErrs {
			configErr.Missing = append(configErr.Missing, fieldErr.Field())
		}
		return nil, configErr
	}
	return config, nil
}

// Print echoes the settings in use, with the key masked.
func (c *ServiceConfig) Print(w io.Writer) {
	fmt.Fprintln(w, "Using .env config:")
	if c.Provider == providerRekognition {
		fmt.Fprintf(w, "  AI_SERVICE_PROVIDER = %s\n", c.Provider)
		fmt.Fprintf(w, "  AWS_REGION = %s\n", c.Region)
	} else {
		fmt.Fprintf(w, "  AI_SERVICE_ENDPOINT = %s\n", c.Endpoint)
		fmt.Fprintf(w, "  AI_SERVICE_KEY = %s\n", MaskKey(c.Key))
	}
	fmt.Fprintln(w)
}

// MaskKey keeps the first and last four characters of key.
func MaskKey(key string) string {
	chars := []rune(key)
	if len(chars) <= 8 {
		return "****"
	}
	return string(chars[:4]) + "..." + string(chars[len(chars)-4:])
}
