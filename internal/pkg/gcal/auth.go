package gcal

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"github.com/studybuddy/studybuddy-backend/internal/config"
)

type clientSecrets map[string]creds

type creds struct {
	ClientId                string   `json:"client_id"`
	ProjectId               string   `json:"project_id"`
	AuthUri                 string   `json:"auth_uri"`
	TokenUri                string   `json:"token_uri"`
	AuthProviderX509CertUrl string   `json:"auth_provider_x509_cert_url"`
	ClientSecret            string   `json:"client_secret"`
	RedirectUris            []string `json:"redirect_uris"`
}

func tokenSource(ctx context.Context, scopes []string) (oauth2.TokenSource, error) {
	file, err := os.Open(config.ClientSecretPath())
	if err != nil {
		return nil, fmt.Errorf("can't open client secret: %w", err)
	}
	defer file.Close()

	cs := make(clientSecrets)
	if err := json.NewDecoder(file).Decode(&cs); err != nil {
		return nil, fmt.Errorf("can't parse secrets: %w", err)
	}

	secret := cs[config.ClientType()]
	conf := oauth2.Config{
		ClientID:     secret.ClientId,
		ClientSecret: secret.ClientSecret,
		Endpoint:     google.Endpoint,
		Scopes:       scopes,
	}

	tokenFile, err := os.Open(config.GoogleTokenPath())
	if err != nil {
		return nil, fmt.Errorf("can't open token: %w", err)
	}
	defer tokenFile.Close()

	token := &oauth2.Token{}
	if err := json.NewDecoder(tokenFile).Decode(token); err != nil {
		return nil, fmt.Errorf("can't parse token: %w", err)
	}

	return conf.TokenSource(ctx, token), nil
}
