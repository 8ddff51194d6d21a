// Package config centralizes runtime settings. Values come from the
// environment (godotenv loads .env in cmd/api), with local-friendly
// defaults so the service boots against DynamoDB Local out of the box.
package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Settings is the resolved runtime configuration.
type Settings struct {
	HTTPPort int `mapstructure:"http_port"`

	// CatalogPath overrides the embedded catalog artifact when set.
	CatalogPath string `mapstructure:"catalog_path"`

	AWSRegion          string `mapstructure:"aws_region"`
	AWSAccessKeyID     string `mapstructure:"aws_access_key_id"`
	AWSSecretAccessKey string `mapstructure:"aws_secret_access_key"`
	DynamoDBEndpoint   string `mapstructure:"dynamodb_endpoint"`

	MercadoPagoAccessToken string `mapstructure:"mercadopago_access_token"`
}

// Load resolves settings from the environment.
func Load() (Settings, error) {
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("http_port", 8080)
	v.SetDefault("catalog_path", "")
	v.SetDefault("aws_region", "us-east-1")
	// Local DynamoDB does not validate credentials, but the AWS SDK requires them.
	v.SetDefault("aws_access_key_id", "local")
	v.SetDefault("aws_secret_access_key", "local")
	v.SetDefault("dynamodb_endpoint", "")
	v.SetDefault("mercadopago_access_token", "")

	for _, key := range []string{
		"http_port", "catalog_path",
		"aws_region", "aws_access_key_id", "aws_secret_access_key", "dynamodb_endpoint",
		"mercadopago_access_token",
	} {
		if err := v.BindEnv(key); err != nil {
			return Settings{}, err
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, err
	}
	return s, nil
}
