package service

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	cfg "github.com/psaswat/testyourmodels/configs"
	"github.com/psaswat/testyourmodels/internal/models"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

// AuthService consumes the federated identity provider: it exchanges the
// callback code for a basic profile and nothing more. There is no local user
// storage and no role model beyond signed-in or not.
type AuthService interface {
	LoginCallback(ctx context.Context, code string) (*models.Profile, error)
}

type authService struct {
	cfg cfg.Config
}

func NewAuthService(cfg cfg.Config) AuthService {
	return &authService{cfg: cfg}
}

func (s *authService) oauth2Config() *oauth2.Config {
	return &oauth2.Config{
		ClientID:     s.cfg.GoogleClientID,
		ClientSecret: s.cfg.GoogleClientSecret,
		RedirectURL:  s.cfg.GoogleRedirectURI,
		Scopes:       []string{"https://www.googleapis.com/auth/userinfo.email", "https://www.googleapis.com/auth/userinfo.profile"},
		Endpoint:     google.Endpoint,
	}
}

func (s *authService) LoginCallback(ctx context.Context, code string) (*models.Profile, error) {
	if code == "" {
		err := errors.New("authorization code is empty")
		slog.Info(err.Error())
		return nil, err
	}

	conf := s.oauth2Config()
	if conf.ClientID == "" || conf.ClientSecret == "" || conf.RedirectURL == "" {
		err := errors.New("OAuth2 configuration is incomplete")
		slog.Info(err.Error())
		return nil, err
	}

	token, err := conf.Exchange(ctx, code)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}

	client := conf.Client(ctx, token)
	resp, err := client.Get("https://www.googleapis.com/oauth2/v2/userinfo")
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	defer resp.Body.Close()

	var profile models.Profile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		slog.Info(err.Error())
		return nil, err
	}

	if profile.Email == "" {
		return nil, errors.New("identity provider returned no email")
	}

	return &profile, nil
}
