package email

import "fmt"

// passwordResetBody renders the reset email. The raw token is shown for
// manual entry in the app and the link covers the browser flow.
func passwordResetBody(name, resetLink, token string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<body style="font-family: sans-serif; color: #333;">
  <h1>Password recovery</h1>
  <p>Hi <strong>%s</strong>,</p>
  <p>We received a request to reset the password for your account.</p>
  <p>Use this code in the app:</p>
  <p style="font-family: monospace; font-size: 18px; letter-spacing: 2px;"><strong>%s</strong></p>
  <p>Or click the link below:</p>
  <p><a href="%s">Reset password</a></p>
  <p><strong>Note:</strong> this code expires in 1 hour.</p>
  <p>If you did not request a password change, you can safely ignore this email.</p>
</body>
</html>`, name, token, resetLink)
}
