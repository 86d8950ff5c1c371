package email

// Provider abstracts outbound mail. Delivery results are advisory:
// callers on the request path log failures and move on.
type Provider interface {
	// SendPasswordReset delivers the reset link and raw token to the
	// user.
	SendPasswordReset(to, name, resetLink, token string) error
}
