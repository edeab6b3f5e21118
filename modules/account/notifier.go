package account

import (
	"context"
	"fmt"
	"html"
	"strings"

	"github.com/SambridhiGhimire/Dryvana-Ecom-Store/pkg/auth"
	"github.com/SambridhiGhimire/Dryvana-Ecom-Store/pkg/email"
)

// Notifier implements auth.Notifier over an email sender. Links point at
// the frontend, which relays the raw token back to the API.
type Notifier struct {
	sender  email.EmailSender
	appName string
	baseURL string
}

// NewNotifier creates the notifier. baseURL is the frontend origin without
// a trailing slash.
func NewNotifier(sender email.EmailSender, appName, baseURL string) *Notifier {
	return &Notifier{
		sender:  sender,
		appName: appName,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// PasswordReset mails the reset link. The raw token appears only in this
// message; storage holds its digest.
func (n *Notifier) PasswordReset(ctx context.Context, account *auth.Account, rawToken string) error {
	link := fmt.Sprintf("%s/reset-password/%s", n.baseURL, rawToken)

	body := fmt.Sprintf(`<h2>Password Reset Request</h2>
<p>Hi %s,</p>
<p>We received a request to reset your %s account password. Click the link below to choose a new one. The link expires in one hour.</p>
<p><a href="%s">Reset your password</a></p>
<p>If you did not request this, you can safely ignore this email.</p>`,
		html.EscapeString(account.Name), html.EscapeString(n.appName), link)

	return n.sender.SendEmail(ctx, email.SendEmailParams{
		SendTo:   account.Email,
		Subject:  fmt.Sprintf("%s password reset", n.appName),
		BodyHTML: body,
		Tag:      "password-reset",
	})
}

// EmailVerification mails the verification link for an additional address.
func (n *Notifier) EmailVerification(ctx context.Context, account *auth.Account, address, rawToken string) error {
	link := fmt.Sprintf("%s/verify-email/%s", n.baseURL, rawToken)

	body := fmt.Sprintf(`<h2>Verify your email</h2>
<p>Hi %s,</p>
<p>This address was added to your %s account. Confirm it belongs to you to start using it for sign-in.</p>
<p><a href="%s">Verify this address</a></p>
<p>If you did not add this address, remove it from your account settings.</p>`,
		html.EscapeString(account.Name), html.EscapeString(n.appName), link)

	return n.sender.SendEmail(ctx, email.SendEmailParams{
		SendTo:   address,
		Subject:  fmt.Sprintf("Verify your %s email address", n.appName),
		BodyHTML: body,
		Tag:      "email-verification",
	})
}
