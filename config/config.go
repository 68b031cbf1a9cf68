package config

import (
	"log"

	"github.com/spf13/viper"
)

type Config struct {
	Database struct {
		Host     string `mapstructure:"host"`
		Port     string `mapstructure:"port"`
		User     string `mapstructure:"user"`
		Password string `mapstructure:"password"`
		Name     string `mapstructure:"name"`
	} `mapstructure:"database"`
	Redis struct {
		Host     string `mapstructure:"host"`
		Port     string `mapstructure:"port"`
		Password string `mapstructure:"password"`
	} `mapstructure:"redis"`
	Server struct {
		Port string `mapstructure:"port"`
	} `mapstructure:"server"`
	Auth struct {
		SecretKey                string `mapstructure:"secret_key"`
		TokenHashAlgorithm       string `mapstructure:"token_hash_algorithm"`
		PasswordHashAlgorithm    string `mapstructure:"password_hash_algorithm"`
		PasswordHashCost         int    `mapstructure:"password_hash_cost"`
		AccessTokenExpireMinutes int    `mapstructure:"access_token_expire_minutes"`
	} `mapstructure:"auth"`
	Storage struct {
		DataDir string `mapstructure:"data_dir"`
	} `mapstructure:"storage"`
	Sentry struct {
		DSN string `mapstructure:"dsn"`
	} `mapstructure:"sentry"`
}

var AppConfig Config

func LoadConfig(path string) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yml")

	viper.SetDefault("auth.token_hash_algorithm", "HS256")
	viper.SetDefault("auth.password_hash_algorithm", "bcrypt")
	viper.SetDefault("auth.password_hash_cost", 12)
	viper.SetDefault("auth.access_token_expire_minutes", 15)
	viper.SetDefault("storage.data_dir", "./data")

	viper.AutomaticEnv()

	// The deployment environment exposes the security settings under these
	// exact names; bind them to the nested config keys.
	viper.BindEnv("auth.secret_key", "SECRET_KEY")
	viper.BindEnv("auth.token_hash_algorithm", "TOKEN_HASH_ALGORITHM")
	viper.BindEnv("auth.password_hash_algorithm", "PASSWORD_HASH_ALGORITHM")
	viper.BindEnv("auth.access_token_expire_minutes", "ACCESS_TOKEN_EXPIRE_MINUTES")
	viper.BindEnv("sentry.dsn", "SENTRY_DSN")

	if err := viper.ReadInConfig(); err != nil {
		log.Fatalf("Error reading config file, %s", err)
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Unable to decode into struct, %v", err)
	}

	if AppConfig.Auth.SecretKey == "" {
		log.Fatal("SECRET_KEY must be configured")
	}
}
