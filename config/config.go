package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// ServiceAccount holds the identity provider's service-account credentials,
// assembled from individual environment variables rather than a key file.
type ServiceAccount struct {
	Type         string `json:"type"`
	ProjectID    string `json:"project_id"`
	PrivateKeyID string `json:"private_key_id"`
	PrivateKey   string `json:"private_key"`
	ClientEmail  string `json:"client_email"`
	ClientID     string `json:"client_id"`
	AuthURI      string `json:"auth_uri"`
	TokenURI     string `json:"token_uri"`
}

type Config struct {
	Port           string
	MongoURI       string
	DBName         string
	StripeSecret   string
	ServiceAccount ServiceAccount
}

/*
* Read every required variable, collecting what is missing
* Fail with one error naming all of them instead of proceeding half-configured
 */
func Load() (*Config, error) {
	var missing []string
	require := func(key string) string {
		v := os.Getenv(key)
		if v == "" {
			missing = append(missing, key)
		}
		return v
	}

	dbUser := require("DB_USER")
	dbPass := require("DB_PASS")
	dbHost := require("DB_HOST")
	stripeSecret := require("STRIPE_SECRET")

	account := ServiceAccount{
		Type:         "service_account",
		ProjectID:    require("PROJECT_ID"),
		PrivateKeyID: require("PRIVATE_KEY_ID"),
		PrivateKey:   require("PRIVATE_KEY"),
		ClientEmail:  require("CLIENT_EMAIL"),
		ClientID:     require("CLIENT_ID"),
		AuthURI:      "https://accounts.google.com/o/oauth2/auth",
		TokenURI:     "https://oauth2.googleapis.com/token",
	}

	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	return &Config{
		Port:           getenv("PORT", "5000"),
		MongoURI:       fmt.Sprintf("mongodb+srv://%s:%s@%s/?retryWrites=true&w=majority", dbUser, dbPass, dbHost),
		DBName:         getenv("DB_NAME", "doctors_portal"),
		StripeSecret:   stripeSecret,
		ServiceAccount: account,
	}, nil
}

// CredentialsJSON renders the service account in the key-file format the
// identity SDK expects.
func (c *Config) CredentialsJSON() ([]byte, error) {
	return json.Marshal(c.ServiceAccount)
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
