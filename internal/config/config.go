package config

import (
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration (env + Viper).
type Config struct {
	Env                 string
	Port                string
	SessionSecret       string
	DatabaseURL         string
	RedisURL            string
	GeocoderURL         string // base URL of the address-lookup service
	GeocoderAPIKey      string
	FrontendURLEndsWith string
	DevPassword         string
	AllowCrossSiteDev   bool
	HealthAdminKey      string
	SendinblueAPIKey    string // SENDINBLUE_API_KEY for contact-desk notifications (Brevo)
	MailFrom            string // MAIL_FROM sender email (default noreply@propnest.in)
	ContactDeskEmail    string // CONTACT_DESK_EMAIL recipient for contact-form notifications
}

// IsDevelopment reports whether error responses may echo raw error details.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// Load loads config from env and optional .env file.
func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	_ = viper.ReadInConfig()

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	port := viper.GetString("PORT")
	if port == "" {
		port = "8080"
	}
	env := viper.GetString("APP_ENV")
	if env == "" {
		env = "development"
	}

	dbURL := viper.GetString("DATABASE_URL_DEV")
	if env == "production" {
		dbURL = viper.GetString("DATABASE_URL_PROD")
	} else if env == "test" {
		dbURL = viper.GetString("DATABASE_URL_TEST")
	}
	if dbURL == "" {
		dbURL = os.Getenv("DATABASE_URL_DEV")
	}

	return &Config{
		Env:                 env,
		Port:                port,
		SessionSecret:       viper.GetString("SESSION_SECRET"),
		DatabaseURL:         dbURL,
		RedisURL:            viper.GetString("REDIS_URL"),
		GeocoderURL:         geocoderBaseURL(viper.GetString("GEOCODER_URL")),
		GeocoderAPIKey:      viper.GetString("GEOCODER_API_KEY"),
		FrontendURLEndsWith: viper.GetString("FRONTEND_URL_ENDS_WITH"),
		DevPassword:         viper.GetString("DEV_PASSWORD"),
		AllowCrossSiteDev:   strings.EqualFold(viper.GetString("ALLOW_CROSS_SITE_DEV"), "true"),
		HealthAdminKey:      viper.GetString("HEALTH_ADMIN_KEY"),
		SendinblueAPIKey:    viper.GetString("SENDINBLUE_API_KEY"),
		MailFrom:            viper.GetString("MAIL_FROM"),
		ContactDeskEmail:    viper.GetString("CONTACT_DESK_EMAIL"),
	}, nil
}

func geocoderBaseURL(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "https://geocode.maps.co"
	}
	return strings.TrimRight(s, "/")
}
