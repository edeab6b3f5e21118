package account_test

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/SambridhiGhimire/Dryvana-Ecom-Store/pkg/auth"
	"github.com/SambridhiGhimire/Dryvana-Ecom-Store/pkg/email"
)

// mockService is a testify mock over the AuthService surface the handlers
// consume.
type mockService struct {
	mock.Mock
}

func (m *mockService) Register(ctx context.Context, params auth.RegisterParams) (*auth.Account, error) {
	args := m.Called(ctx, params)
	if acc := args.Get(0); acc != nil {
		return acc.(*auth.Account), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockService) Login(ctx context.Context, params auth.LoginParams) (*auth.LoginResult, error) {
	args := m.Called(ctx, params)
	if res := args.Get(0); res != nil {
		return res.(*auth.LoginResult), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockService) VerifySecondFactor(ctx context.Context, accountID uuid.UUID, code string) (*auth.LoginResult, error) {
	args := m.Called(ctx, accountID, code)
	if res := args.Get(0); res != nil {
		return res.(*auth.LoginResult), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockService) ForgotPassword(ctx context.Context, email string) error {
	return m.Called(ctx, email).Error(0)
}

func (m *mockService) ResetPassword(ctx context.Context, rawToken, newPassword string) error {
	return m.Called(ctx, rawToken, newPassword).Error(0)
}

func (m *mockService) ChangePassword(ctx context.Context, accountID uuid.UUID, current, newPassword string) error {
	return m.Called(ctx, accountID, current, newPassword).Error(0)
}

func (m *mockService) EnrollSecondFactor(ctx context.Context, accountID uuid.UUID) (*auth.SecondFactorEnrollment, error) {
	args := m.Called(ctx, accountID)
	if res := args.Get(0); res != nil {
		return res.(*auth.SecondFactorEnrollment), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockService) ConfirmSecondFactor(ctx context.Context, accountID uuid.UUID, code string) error {
	return m.Called(ctx, accountID, code).Error(0)
}

func (m *mockService) DisableSecondFactor(ctx context.Context, accountID uuid.UUID) error {
	return m.Called(ctx, accountID).Error(0)
}

func (m *mockService) AddEmail(ctx context.Context, accountID uuid.UUID, address string) error {
	return m.Called(ctx, accountID, address).Error(0)
}

func (m *mockService) ConfirmEmail(ctx context.Context, rawToken string) error {
	return m.Called(ctx, rawToken).Error(0)
}

func (m *mockService) RemoveEmail(ctx context.Context, accountID uuid.UUID, address string) error {
	return m.Called(ctx, accountID, address).Error(0)
}

func (m *mockService) GetAccount(ctx context.Context, accountID uuid.UUID) (*auth.Account, error) {
	args := m.Called(ctx, accountID)
	if acc := args.Get(0); acc != nil {
		return acc.(*auth.Account), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockService) UpdateName(ctx context.Context, accountID uuid.UUID, name string) error {
	return m.Called(ctx, accountID, name).Error(0)
}

func (m *mockService) SetBlocked(ctx context.Context, accountID uuid.UUID, blocked bool) error {
	return m.Called(ctx, accountID, blocked).Error(0)
}

func (m *mockService) ListAccounts(ctx context.Context) ([]auth.Account, error) {
	args := m.Called(ctx)
	if accs := args.Get(0); accs != nil {
		return accs.([]auth.Account), args.Error(1)
	}
	return nil, args.Error(1)
}

// captureSender records sent emails for notifier tests.
type captureSender struct {
	mu   sync.Mutex
	sent []email.SendEmailParams
}

func (c *captureSender) SendEmail(ctx context.Context, params email.SendEmailParams) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sent = append(c.sent, params)
	return nil
}
