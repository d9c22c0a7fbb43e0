package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"wealthwise/config"
	"wealthwise/internal/auth"
	"wealthwise/internal/models"
	"wealthwise/internal/repository"
	"wealthwise/pkg/mailer"
)

var (
	ErrClientNotFound = errors.New("client not found")
	ErrTokenInvalid   = errors.New("invalid or expired access token")
)

type ClientStore interface {
	GetByID(ctx context.Context, id string) (*models.Client, error)
	GetByEmail(ctx context.Context, email string) (*models.Client, error)
}

type TokenStore interface {
	Create(ctx context.Context, t *models.AccessToken) error
	GetValid(ctx context.Context, token string, now time.Time) (*models.AccessToken, error)
	MarkUsed(ctx context.Context, id string) error
}

type AuthService struct {
	cfg     *config.Config
	clients ClientStore
	tokens  TokenStore
	mail    mailer.Mailer
	now     func() time.Time
}

func NewAuthService(cfg *config.Config, clients ClientStore, tokens TokenStore, mail mailer.Mailer) *AuthService {
	return &AuthService{cfg: cfg, clients: clients, tokens: tokens, mail: mail, now: time.Now}
}

// RequestLoginLink mints a single-use access token for a known client and
// mails the login link. Unknown emails return ErrClientNotFound.
func (s *AuthService) RequestLoginLink(ctx context.Context, email string) error {
	client, err := s.clients.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrClientNotFound
		}
		return err
	}
	t := &models.AccessToken{
		ClientID:  client.ID,
		Token:     uuid.NewString(),
		ExpiresAt: s.now().Add(s.cfg.Mail.TokenTTL),
	}
	if err := s.tokens.Create(ctx, t); err != nil {
		return err
	}
	link := s.cfg.Portal.BaseURL + "/login?token=" + t.Token
	if err := s.mail.SendLoginLink(ctx, client.Email, client.FullName, link); err != nil {
		return fmt.Errorf("send login link: %w", err)
	}
	log.WithField("client_id", client.ID).Info("login link issued")
	return nil
}

// ExchangeToken trades a valid, unused, unexpired access token for a session.
// The token is consumed exactly once; reuse fails as invalid.
func (s *AuthService) ExchangeToken(ctx context.Context, token string) (*models.Client, string, error) {
	t, err := s.tokens.GetValid(ctx, token, s.now())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrTokenInvalid
		}
		return nil, "", err
	}
	if err := s.tokens.MarkUsed(ctx, t.ID); err != nil {
		if errors.Is(err, repository.ErrTokenConsumed) {
			return nil, "", ErrTokenInvalid
		}
		return nil, "", err
	}
	client, err := s.clients.GetByID(ctx, t.ClientID)
	if err != nil {
		return nil, "", err
	}
	session, err := auth.GenerateSessionToken(&s.cfg.JWT, client.ID, client.Email)
	if err != nil {
		return nil, "", err
	}
	log.WithField("client_id", client.ID).Info("access token exchanged for session")
	return client, session, nil
}
