package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"wealthwise/config"
	"wealthwise/internal/auth"
	"wealthwise/internal/models"
	"wealthwise/internal/repository"
)

func testConfig() *config.Config {
	return &config.Config{
		JWT: config.JWTConfig{
			Secret: "test-secret",
			Expiry: time.Hour,
			Issuer: "wealthwise",
		},
		Mail: config.MailConfig{
			TokenTTL: 24 * time.Hour,
		},
		Portal: config.PortalConfig{
			BaseURL: "https://platform.example.com",
		},
	}
}

func testClient() *models.Client {
	return &models.Client{
		ID:       testClientID,
		Email:    "jane@example.com",
		FullName: "Jane Doe",
	}
}

func newTestAuthService(clients *mockClientStore, tokens *mockTokenStore, mail *mockMailer) *AuthService {
	svc := NewAuthService(testConfig(), clients, tokens, mail)
	svc.now = func() time.Time { return time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC) }
	return svc
}

func TestRequestLoginLinkUnknownEmail(t *testing.T) {
	clients := new(mockClientStore)
	tokens := new(mockTokenStore)
	clients.On("GetByEmail", mock.Anything, "nobody@example.com").Return(nil, gorm.ErrRecordNotFound)

	svc := newTestAuthService(clients, tokens, new(mockMailer))
	err := svc.RequestLoginLink(context.Background(), "nobody@example.com")
	assert.ErrorIs(t, err, ErrClientNotFound)
	tokens.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRequestLoginLinkMintsSingleUseToken(t *testing.T) {
	clients := new(mockClientStore)
	tokens := new(mockTokenStore)
	mail := new(mockMailer)

	clients.On("GetByEmail", mock.Anything, "jane@example.com").Return(testClient(), nil)
	tokens.On("Create", mock.Anything, mock.Anything).Return(nil)
	mail.On("SendLoginLink", mock.Anything, "jane@example.com", "Jane Doe", mock.Anything).Return(nil)

	svc := newTestAuthService(clients, tokens, mail)
	require.NoError(t, svc.RequestLoginLink(context.Background(), "jane@example.com"))

	minted := tokens.Calls[0].Arguments.Get(1).(*models.AccessToken)
	assert.Equal(t, testClientID, minted.ClientID)
	assert.NotEmpty(t, minted.Token)
	assert.False(t, minted.Used)
	assert.Equal(t, svc.now().Add(24*time.Hour), minted.ExpiresAt)

	link := mail.Calls[0].Arguments.Get(3).(string)
	assert.True(t, strings.HasPrefix(link, "https://platform.example.com/login?token="))
	assert.Contains(t, link, minted.Token)
}

func TestExchangeTokenInvalid(t *testing.T) {
	clients := new(mockClientStore)
	tokens := new(mockTokenStore)
	tokens.On("GetValid", mock.Anything, "bad-token", mock.Anything).Return(nil, gorm.ErrRecordNotFound)

	svc := newTestAuthService(clients, tokens, new(mockMailer))
	client, session, err := svc.ExchangeToken(context.Background(), "bad-token")
	assert.ErrorIs(t, err, ErrTokenInvalid)
	assert.Nil(t, client)
	assert.Empty(t, session)
	tokens.AssertNotCalled(t, "MarkUsed", mock.Anything, mock.Anything)
}

func TestExchangeTokenConsumedByRace(t *testing.T) {
	clients := new(mockClientStore)
	tokens := new(mockTokenStore)
	stored := &models.AccessToken{ID: "tok-1", ClientID: testClientID, Token: "t"}
	tokens.On("GetValid", mock.Anything, "t", mock.Anything).Return(stored, nil)
	tokens.On("MarkUsed", mock.Anything, "tok-1").Return(repository.ErrTokenConsumed)

	svc := newTestAuthService(clients, tokens, new(mockMailer))
	_, _, err := svc.ExchangeToken(context.Background(), "t")
	assert.ErrorIs(t, err, ErrTokenInvalid)
	clients.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestExchangeTokenIssuesSession(t *testing.T) {
	clients := new(mockClientStore)
	tokens := new(mockTokenStore)
	stored := &models.AccessToken{ID: "tok-1", ClientID: testClientID, Token: "t"}
	tokens.On("GetValid", mock.Anything, "t", mock.Anything).Return(stored, nil)
	tokens.On("MarkUsed", mock.Anything, "tok-1").Return(nil)
	clients.On("GetByID", mock.Anything, testClientID).Return(testClient(), nil)

	svc := newTestAuthService(clients, tokens, new(mockMailer))
	client, session, err := svc.ExchangeToken(context.Background(), "t")
	require.NoError(t, err)
	require.NotNil(t, client)
	assert.Equal(t, "jane@example.com", client.Email)

	// token consumed exactly once
	tokens.AssertNumberOfCalls(t, "MarkUsed", 1)

	claims, err := auth.ParseSessionToken(&testConfig().JWT, session)
	require.NoError(t, err)
	assert.Equal(t, testClientID, claims.ClientID)
	assert.Equal(t, "jane@example.com", claims.Email)
}
