package auth_test

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/SambridhiGhimire/Dryvana-Ecom-Store/pkg/auth"
)

// mockStorage is a testify mock over auth.Storage for flows where call
// expectations matter.
type mockStorage struct {
	mock.Mock
}

func (m *mockStorage) CreateAccount(ctx context.Context, account *auth.Account) error {
	return m.Called(ctx, account).Error(0)
}

func (m *mockStorage) GetAccountByID(ctx context.Context, id uuid.UUID) (*auth.Account, error) {
	args := m.Called(ctx, id)
	if acc := args.Get(0); acc != nil {
		return acc.(*auth.Account), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockStorage) GetAccountByEmail(ctx context.Context, email string) (*auth.Account, error) {
	args := m.Called(ctx, email)
	if acc := args.Get(0); acc != nil {
		return acc.(*auth.Account), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockStorage) GetAccountByPrimaryEmail(ctx context.Context, email string) (*auth.Account, error) {
	args := m.Called(ctx, email)
	if acc := args.Get(0); acc != nil {
		return acc.(*auth.Account), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockStorage) ListAccounts(ctx context.Context) ([]auth.Account, error) {
	args := m.Called(ctx)
	if accs := args.Get(0); accs != nil {
		return accs.([]auth.Account), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockStorage) UpdateName(ctx context.Context, id uuid.UUID, name string) error {
	return m.Called(ctx, id, name).Error(0)
}

func (m *mockStorage) UpdatePassword(ctx context.Context, id uuid.UUID, hash []byte, changedAt time.Time, historyLimit int) error {
	return m.Called(ctx, id, hash, changedAt, historyLimit).Error(0)
}

func (m *mockStorage) SetBlocked(ctx context.Context, id uuid.UUID, blocked bool) error {
	return m.Called(ctx, id, blocked).Error(0)
}

func (m *mockStorage) SetResetToken(ctx context.Context, id uuid.UUID, slot *auth.TokenSlot) error {
	return m.Called(ctx, id, slot).Error(0)
}

func (m *mockStorage) GetAccountByResetToken(ctx context.Context, digest string) (*auth.Account, error) {
	args := m.Called(ctx, digest)
	if acc := args.Get(0); acc != nil {
		return acc.(*auth.Account), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockStorage) SetSecondFactor(ctx context.Context, id uuid.UUID, sf auth.SecondFactor) error {
	return m.Called(ctx, id, sf).Error(0)
}

func (m *mockStorage) ClearSecondFactor(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockStorage) AddEmail(ctx context.Context, id uuid.UUID, entry auth.EmailEntry) error {
	return m.Called(ctx, id, entry).Error(0)
}

func (m *mockStorage) RemoveEmail(ctx context.Context, id uuid.UUID, address string) error {
	return m.Called(ctx, id, address).Error(0)
}

func (m *mockStorage) SetEmailVerification(ctx context.Context, id uuid.UUID, v *auth.EmailVerification) error {
	return m.Called(ctx, id, v).Error(0)
}

func (m *mockStorage) GetAccountByEmailVerification(ctx context.Context, digest string) (*auth.Account, error) {
	args := m.Called(ctx, digest)
	if acc := args.Get(0); acc != nil {
		return acc.(*auth.Account), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockStorage) MarkEmailVerified(ctx context.Context, id uuid.UUID, address string) error {
	return m.Called(ctx, id, address).Error(0)
}

// mockNotifier records the raw tokens handed to it.
type mockNotifier struct {
	mu               sync.Mutex
	resetTokens      []string
	verifyTokens     []string
	verifyAddresses  []string
	failPasswordMail bool
}

func (n *mockNotifier) PasswordReset(ctx context.Context, account *auth.Account, rawToken string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.failPasswordMail {
		return context.DeadlineExceeded
	}
	n.resetTokens = append(n.resetTokens, rawToken)
	return nil
}

func (n *mockNotifier) EmailVerification(ctx context.Context, account *auth.Account, address, rawToken string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.verifyTokens = append(n.verifyTokens, rawToken)
	n.verifyAddresses = append(n.verifyAddresses, address)
	return nil
}

func (n *mockNotifier) lastResetToken() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	if len(n.resetTokens) == 0 {
		return ""
	}
	return n.resetTokens[len(n.resetTokens)-1]
}

func (n *mockNotifier) lastVerifyToken() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	if len(n.verifyTokens) == 0 {
		return ""
	}
	return n.verifyTokens[len(n.verifyTokens)-1]
}

// memStorage is an in-memory Storage with the real lookup and update
// semantics, used for end-to-end flow tests.
type memStorage struct {
	mu       sync.Mutex
	accounts map[uuid.UUID]*auth.Account
}

func newMemStorage() *memStorage {
	return &memStorage{accounts: make(map[uuid.UUID]*auth.Account)}
}

func cloneAccount(a *auth.Account) *auth.Account {
	c := *a
	c.Emails = append([]auth.EmailEntry(nil), a.Emails...)
	c.PasswordHistory = append([][]byte(nil), a.PasswordHistory...)
	if a.ResetToken != nil {
		slot := *a.ResetToken
		c.ResetToken = &slot
	}
	if a.EmailVerification != nil {
		v := *a.EmailVerification
		c.EmailVerification = &v
	}
	return &c
}

func (ms *memStorage) CreateAccount(ctx context.Context, account *auth.Account) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	for _, existing := range ms.accounts {
		for _, e := range account.Emails {
			if existing.HasEmail(e.Address) {
				return auth.ErrEmailAlreadyExists
			}
		}
	}
	ms.accounts[account.ID] = cloneAccount(account)
	return nil
}

func (ms *memStorage) GetAccountByID(ctx context.Context, id uuid.UUID) (*auth.Account, error) {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	a, ok := ms.accounts[id]
	if !ok {
		return nil, auth.ErrAccountNotFound
	}
	return cloneAccount(a), nil
}

func (ms *memStorage) GetAccountByEmail(ctx context.Context, email string) (*auth.Account, error) {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	for _, a := range ms.accounts {
		if strings.EqualFold(a.Email, email) {
			return cloneAccount(a), nil
		}
		for _, e := range a.Emails {
			if strings.EqualFold(e.Address, email) && e.Verified {
				return cloneAccount(a), nil
			}
		}
	}
	return nil, auth.ErrAccountNotFound
}

func (ms *memStorage) GetAccountByPrimaryEmail(ctx context.Context, email string) (*auth.Account, error) {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	for _, a := range ms.accounts {
		if strings.EqualFold(a.Email, email) {
			return cloneAccount(a), nil
		}
	}
	return nil, auth.ErrAccountNotFound
}

func (ms *memStorage) ListAccounts(ctx context.Context) ([]auth.Account, error) {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	out := make([]auth.Account, 0, len(ms.accounts))
	for _, a := range ms.accounts {
		out = append(out, *cloneAccount(a))
	}
	return out, nil
}

func (ms *memStorage) UpdateName(ctx context.Context, id uuid.UUID, name string) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	a, ok := ms.accounts[id]
	if !ok {
		return auth.ErrAccountNotFound
	}
	a.Name = name
	return nil
}

func (ms *memStorage) UpdatePassword(ctx context.Context, id uuid.UUID, hash []byte, changedAt time.Time, historyLimit int) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	a, ok := ms.accounts[id]
	if !ok {
		return auth.ErrAccountNotFound
	}

	a.PasswordHash = hash
	a.PasswordHistory = append([][]byte{hash}, a.PasswordHistory...)
	if len(a.PasswordHistory) > historyLimit {
		a.PasswordHistory = a.PasswordHistory[:historyLimit]
	}
	a.PasswordChangedAt = changedAt
	a.ResetToken = nil
	return nil
}

func (ms *memStorage) SetBlocked(ctx context.Context, id uuid.UUID, blocked bool) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	a, ok := ms.accounts[id]
	if !ok {
		return auth.ErrAccountNotFound
	}
	a.IsBlocked = blocked
	return nil
}

func (ms *memStorage) SetResetToken(ctx context.Context, id uuid.UUID, slot *auth.TokenSlot) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	a, ok := ms.accounts[id]
	if !ok {
		return auth.ErrAccountNotFound
	}
	if slot == nil {
		a.ResetToken = nil
		return nil
	}
	s := *slot
	a.ResetToken = &s
	return nil
}

func (ms *memStorage) GetAccountByResetToken(ctx context.Context, digest string) (*auth.Account, error) {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	for _, a := range ms.accounts {
		if a.ResetToken != nil && a.ResetToken.Digest == digest {
			return cloneAccount(a), nil
		}
	}
	return nil, auth.ErrAccountNotFound
}

func (ms *memStorage) SetSecondFactor(ctx context.Context, id uuid.UUID, sf auth.SecondFactor) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	a, ok := ms.accounts[id]
	if !ok {
		return auth.ErrAccountNotFound
	}
	a.SecondFactor = sf
	return nil
}

func (ms *memStorage) ClearSecondFactor(ctx context.Context, id uuid.UUID) error {
	return ms.SetSecondFactor(ctx, id, auth.SecondFactor{})
}

func (ms *memStorage) AddEmail(ctx context.Context, id uuid.UUID, entry auth.EmailEntry) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	for _, a := range ms.accounts {
		if a.HasEmail(entry.Address) {
			return auth.ErrEmailAlreadyExists
		}
	}

	a, ok := ms.accounts[id]
	if !ok {
		return auth.ErrAccountNotFound
	}
	a.Emails = append(a.Emails, entry)
	return nil
}

func (ms *memStorage) RemoveEmail(ctx context.Context, id uuid.UUID, address string) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	a, ok := ms.accounts[id]
	if !ok {
		return auth.ErrAccountNotFound
	}
	for i, e := range a.Emails {
		if strings.EqualFold(e.Address, address) {
			a.Emails = append(a.Emails[:i], a.Emails[i+1:]...)
			return nil
		}
	}
	return auth.ErrEmailNotFound
}

func (ms *memStorage) SetEmailVerification(ctx context.Context, id uuid.UUID, v *auth.EmailVerification) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	a, ok := ms.accounts[id]
	if !ok {
		return auth.ErrAccountNotFound
	}
	if v == nil {
		a.EmailVerification = nil
		return nil
	}
	c := *v
	a.EmailVerification = &c
	return nil
}

func (ms *memStorage) GetAccountByEmailVerification(ctx context.Context, digest string) (*auth.Account, error) {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	for _, a := range ms.accounts {
		if a.EmailVerification != nil && a.EmailVerification.Digest == digest {
			return cloneAccount(a), nil
		}
	}
	return nil, auth.ErrAccountNotFound
}

func (ms *memStorage) MarkEmailVerified(ctx context.Context, id uuid.UUID, address string) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	a, ok := ms.accounts[id]
	if !ok {
		return auth.ErrAccountNotFound
	}
	for i, e := range a.Emails {
		if strings.EqualFold(e.Address, address) {
			a.Emails[i].Verified = true
			return nil
		}
	}
	return auth.ErrEmailNotFound
}
