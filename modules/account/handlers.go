package account

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/SambridhiGhimire/Dryvana-Ecom-Store/pkg/auth"
)

// AuthService is the slice of the core service the HTTP layer consumes.
// *auth.Service satisfies it.
type AuthService interface {
	Register(ctx context.Context, params auth.RegisterParams) (*auth.Account, error)
	Login(ctx context.Context, params auth.LoginParams) (*auth.LoginResult, error)
	VerifySecondFactor(ctx context.Context, accountID uuid.UUID, code string) (*auth.LoginResult, error)
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, rawToken, newPassword string) error
	ChangePassword(ctx context.Context, accountID uuid.UUID, current, newPassword string) error
	EnrollSecondFactor(ctx context.Context, accountID uuid.UUID) (*auth.SecondFactorEnrollment, error)
	ConfirmSecondFactor(ctx context.Context, accountID uuid.UUID, code string) error
	DisableSecondFactor(ctx context.Context, accountID uuid.UUID) error
	AddEmail(ctx context.Context, accountID uuid.UUID, address string) error
	ConfirmEmail(ctx context.Context, rawToken string) error
	RemoveEmail(ctx context.Context, accountID uuid.UUID, address string) error
	GetAccount(ctx context.Context, accountID uuid.UUID) (*auth.Account, error)
	UpdateName(ctx context.Context, accountID uuid.UUID, name string) error
	SetBlocked(ctx context.Context, accountID uuid.UUID, blocked bool) error
	ListAccounts(ctx context.Context) ([]auth.Account, error)
}

// Handlers exposes the account API over JSON.
type Handlers struct {
	svc AuthService
}

// NewHandlers creates the HTTP handlers.
func NewHandlers(svc AuthService) *Handlers {
	return &Handlers{svc: svc}
}

type emailEntryView struct {
	Address  string `json:"address"`
	Verified bool   `json:"verified"`
}

// accountView is the outward shape of an account. Hashes, history, and
// second-factor secrets never leave the service.
type accountView struct {
	ID               string           `json:"id"`
	Name             string           `json:"name"`
	Email            string           `json:"email"`
	Emails           []emailEntryView `json:"emails"`
	IsBlocked        bool             `json:"isBlocked"`
	IsAdmin          bool             `json:"isAdmin"`
	TwoFactorEnabled bool             `json:"twoFactorEnabled"`
	CreatedAt        time.Time        `json:"createdAt"`
}

func toAccountView(a *auth.Account) accountView {
	v := accountView{
		ID:               a.ID.String(),
		Name:             a.Name,
		Email:            a.Email,
		Emails:           make([]emailEntryView, 0, len(a.Emails)),
		IsBlocked:        a.IsBlocked,
		IsAdmin:          a.IsAdmin,
		TwoFactorEnabled: a.SecondFactor.Enabled,
		CreatedAt:        a.CreatedAt,
	}
	for _, e := range a.Emails {
		v.Emails = append(v.Emails, emailEntryView{Address: e.Address, Verified: e.Verified})
	}
	return v
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return false
	}
	return true
}

func (h *Handlers) register(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name         string `json:"name"`
		Email        string `json:"email"`
		Password     string `json:"password"`
		CaptchaToken string `json:"captchaToken"`
	}
	if !decodeBody(w, r, &req) {
		return
	}

	account, err := h.svc.Register(r.Context(), auth.RegisterParams{
		Name:         req.Name,
		Email:        req.Email,
		Password:     req.Password,
		CaptchaToken: req.CaptchaToken,
		RemoteIP:     r.RemoteAddr,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toAccountView(account))
}

type loginResponse struct {
	TwoFactorRequired bool         `json:"twoFactorRequired,omitempty"`
	AccountID         string       `json:"accountId,omitempty"`
	Token             string       `json:"token,omitempty"`
	ExpiresAt         *time.Time   `json:"expiresAt,omitempty"`
	User              *accountView `json:"user,omitempty"`
}

func loginResponseFrom(result *auth.LoginResult) (int, loginResponse) {
	if result.TwoFactorRequired {
		// 206: credentials accepted but the login is not complete yet.
		return http.StatusPartialContent, loginResponse{
			TwoFactorRequired: true,
			AccountID:         result.AccountID.String(),
		}
	}

	view := toAccountView(result.Account)
	return http.StatusOK, loginResponse{
		Token:     result.Token,
		ExpiresAt: &result.ExpiresAt,
		User:      &view,
	}
}

func (h *Handlers) login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email            string `json:"email"`
		Password         string `json:"password"`
		SecondFactorCode string `json:"twoFactorCode"`
	}
	if !decodeBody(w, r, &req) {
		return
	}

	result, err := h.svc.Login(r.Context(), auth.LoginParams{
		Email:            req.Email,
		Password:         req.Password,
		SecondFactorCode: req.SecondFactorCode,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	status, resp := loginResponseFrom(result)
	writeJSON(w, status, resp)
}

func (h *Handlers) verifySecondFactor(w http.ResponseWriter, r *http.Request) {
	var req struct {
		AccountID string `json:"accountId"`
		Code      string `json:"code"`
	}
	if !decodeBody(w, r, &req) {
		return
	}

	accountID, err := uuid.Parse(req.AccountID)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid account id"})
		return
	}

	result, err := h.svc.VerifySecondFactor(r.Context(), accountID, req.Code)
	if err != nil {
		writeError(w, err)
		return
	}

	status, resp := loginResponseFrom(result)
	writeJSON(w, status, resp)
}

func (h *Handlers) forgotPassword(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email string `json:"email"`
	}
	if !decodeBody(w, r, &req) {
		return
	}

	if err := h.svc.ForgotPassword(r.Context(), req.Email); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "password reset email sent"})
}

func (h *Handlers) resetPassword(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Password string `json:"password"`
	}
	if !decodeBody(w, r, &req) {
		return
	}

	if err := h.svc.ResetPassword(r.Context(), chi.URLParam(r, "token"), req.Password); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "password has been reset"})
}

func (h *Handlers) verifyEmail(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.ConfirmEmail(r.Context(), chi.URLParam(r, "token")); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "email verified"})
}

func (h *Handlers) me(w http.ResponseWriter, r *http.Request) {
	accountID, ok := accountIDFromContext(r.Context())
	if !ok {
		writeError(w, auth.ErrSessionInvalid)
		return
	}

	account, err := h.svc.GetAccount(r.Context(), accountID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toAccountView(account))
}

func (h *Handlers) updateName(w http.ResponseWriter, r *http.Request) {
	accountID, ok := accountIDFromContext(r.Context())
	if !ok {
		writeError(w, auth.ErrSessionInvalid)
		return
	}

	var req struct {
		Name string `json:"name"`
	}
	if !decodeBody(w, r, &req) {
		return
	}

	if err := h.svc.UpdateName(r.Context(), accountID, req.Name); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "profile updated"})
}

func (h *Handlers) changePassword(w http.ResponseWriter, r *http.Request) {
	accountID, ok := accountIDFromContext(r.Context())
	if !ok {
		writeError(w, auth.ErrSessionInvalid)
		return
	}

	var req struct {
		CurrentPassword string `json:"currentPassword"`
		NewPassword     string `json:"newPassword"`
	}
	if !decodeBody(w, r, &req) {
		return
	}

	if err := h.svc.ChangePassword(r.Context(), accountID, req.CurrentPassword, req.NewPassword); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "password changed"})
}

func (h *Handlers) enrollSecondFactor(w http.ResponseWriter, r *http.Request) {
	accountID, ok := accountIDFromContext(r.Context())
	if !ok {
		writeError(w, auth.ErrSessionInvalid)
		return
	}

	enrollment, err := h.svc.EnrollSecondFactor(r.Context(), accountID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"secret": enrollment.Secret,
		"uri":    enrollment.URI,
		"qrCode": enrollment.QRCode,
	})
}

func (h *Handlers) confirmSecondFactor(w http.ResponseWriter, r *http.Request) {
	accountID, ok := accountIDFromContext(r.Context())
	if !ok {
		writeError(w, auth.ErrSessionInvalid)
		return
	}

	var req struct {
		Code string `json:"code"`
	}
	if !decodeBody(w, r, &req) {
		return
	}

	if err := h.svc.ConfirmSecondFactor(r.Context(), accountID, req.Code); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "two-factor authentication enabled"})
}

func (h *Handlers) disableSecondFactor(w http.ResponseWriter, r *http.Request) {
	accountID, ok := accountIDFromContext(r.Context())
	if !ok {
		writeError(w, auth.ErrSessionInvalid)
		return
	}

	if err := h.svc.DisableSecondFactor(r.Context(), accountID); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "two-factor authentication disabled"})
}

func (h *Handlers) addEmail(w http.ResponseWriter, r *http.Request) {
	accountID, ok := accountIDFromContext(r.Context())
	if !ok {
		writeError(w, auth.ErrSessionInvalid)
		return
	}

	var req struct {
		Email string `json:"email"`
	}
	if !decodeBody(w, r, &req) {
		return
	}

	if err := h.svc.AddEmail(r.Context(), accountID, req.Email); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "verification email sent"})
}

func (h *Handlers) removeEmail(w http.ResponseWriter, r *http.Request) {
	accountID, ok := accountIDFromContext(r.Context())
	if !ok {
		writeError(w, auth.ErrSessionInvalid)
		return
	}

	var req struct {
		Email string `json:"email"`
	}
	if !decodeBody(w, r, &req) {
		return
	}

	if err := h.svc.RemoveEmail(r.Context(), accountID, req.Email); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "email removed"})
}

func (h *Handlers) listAccounts(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.svc.ListAccounts(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	views := make([]accountView, 0, len(accounts))
	for i := range accounts {
		views = append(views, toAccountView(&accounts[i]))
	}
	writeJSON(w, http.StatusOK, views)
}

func (h *Handlers) setBlocked(blocked bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		accountID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid account id"})
			return
		}

		if err := h.svc.SetBlocked(r.Context(), accountID, blocked); err != nil {
			writeError(w, err)
			return
		}

		message := "account unblocked"
		if blocked {
			message = "account blocked"
		}
		writeJSON(w, http.StatusOK, map[string]string{"message": message})
	}
}
