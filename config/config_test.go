package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewConfigFromEnv(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("PROVIDERS_TIMEOUT", "3s")
	t.Setenv("SLACK_CLIENT_ID", "123.456")

	cfg, err := NewConfig()
	require.NoError(t, err)
	require.Equal(t, 9090, cfg.Server.Port)
	require.Equal(t, 3*time.Second, cfg.Providers.Timeout)
	require.Equal(t, "123.456", cfg.Slack.ClientID)
	require.Equal(t, DefaultAzureDevOpsURL, cfg.Providers.AzureDevOpsURL)
	require.Equal(t, "X-Forwarded-User", cfg.Auth.UserHeader)
	require.Equal(t, "0.0.0.0:9090", cfg.ServerAddr())
}

func TestValidate(t *testing.T) {
	base := Config{
		Server:   ServerConfig{Port: 8080},
		Postgres: PostgresConfig{Host: "localhost", User: "u", Password: "p", DBName: "db"},
		Providers: ProvidersConfig{
			CircleCIURL:    DefaultCircleCIURL,
			TravisCIURL:    DefaultTravisCIURL,
			AzureDevOpsURL: DefaultAzureDevOpsURL,
			Timeout:        time.Second,
		},
		Auth: AuthConfig{UserHeader: "X-User"},
	}
	require.NoError(t, base.Validate())

	noTimeout := base
	noTimeout.Providers.Timeout = 0
	require.Error(t, noTimeout.Validate())

	noHeader := base
	noHeader.Auth.UserHeader = ""
	require.Error(t, noHeader.Validate())

	noURL := base
	noURL.Providers.TravisCIURL = ""
	require.Error(t, noURL.Validate())
}
