package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"wealthwise/internal/models"
)

type mockCampaignStore struct {
	mock.Mock
}

func (m *mockCampaignStore) Create(ctx context.Context, cm *models.Campaign) error {
	args := m.Called(ctx, cm)
	return args.Error(0)
}

type mockTransactionStore struct {
	mock.Mock
}

func (m *mockTransactionStore) Create(ctx context.Context, t *models.FundTransaction) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *mockTransactionStore) SumAmounts(ctx context.Context, clientID string) (decimal.Decimal, error) {
	args := m.Called(ctx, clientID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

type mockClientStore struct {
	mock.Mock
}

func (m *mockClientStore) GetByID(ctx context.Context, id string) (*models.Client, error) {
	args := m.Called(ctx, id)
	if c := args.Get(0); c != nil {
		return c.(*models.Client), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockClientStore) GetByEmail(ctx context.Context, email string) (*models.Client, error) {
	args := m.Called(ctx, email)
	if c := args.Get(0); c != nil {
		return c.(*models.Client), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockTokenStore struct {
	mock.Mock
}

func (m *mockTokenStore) Create(ctx context.Context, t *models.AccessToken) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *mockTokenStore) GetValid(ctx context.Context, token string, now time.Time) (*models.AccessToken, error) {
	args := m.Called(ctx, token, now)
	if t := args.Get(0); t != nil {
		return t.(*models.AccessToken), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockTokenStore) MarkUsed(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockMailer struct {
	mock.Mock
}

func (m *mockMailer) SendLoginLink(ctx context.Context, toEmail, toName, link string) error {
	args := m.Called(ctx, toEmail, toName, link)
	return args.Error(0)
}

type mockNotifier struct {
	mock.Mock
}

func (m *mockNotifier) NotifyClient(clientID string, events ...string) {
	m.Called(clientID, events)
}
