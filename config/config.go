package config

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Server   Server
	Database Database
	Email    Email
	// DebounceMs is the autosave quiescence window in milliseconds.
	DebounceMs int
}

type Server struct {
	Port string
}

type Database struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

type Email struct {
	ResendAPIKey string
	From         string
	RecipientDad string
	RecipientMom string
}

func NewConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file")
	}

	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("DATABASE_SSLMODE", "disable")
	viper.SetDefault("EMAIL_FROM", "Drew Questionnaire <onboarding@resend.dev>")
	viper.SetDefault("DEBOUNCE_MS", 1000)

	var config Config

	config.Server.Port = viper.GetString("SERVER_PORT")
	config.Database.Host = viper.GetString("DATABASE_HOST")
	config.Database.Port = viper.GetString("DATABASE_PORT")
	config.Database.User = viper.GetString("DATABASE_USER")
	config.Database.Password = viper.GetString("DATABASE_PASSWORD")
	config.Database.Name = viper.GetString("DATABASE_NAME")
	config.Database.SSLMode = viper.GetString("DATABASE_SSLMODE")

	config.Email.ResendAPIKey = viper.GetString("RESEND_API_KEY")
	config.Email.From = viper.GetString("EMAIL_FROM")
	config.Email.RecipientDad = viper.GetString("PARENT_EMAIL_DAD")
	config.Email.RecipientMom = viper.GetString("PARENT_EMAIL_MOM")

	config.DebounceMs = viper.GetInt("DEBOUNCE_MS")

	log.Info().Str("port", config.Server.Port).Str("db_host", config.Database.Host).Msg("Config loaded")
	return &config, nil
}
