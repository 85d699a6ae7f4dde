package email

import (
	"embed"
	"io/fs"
)

// Template names understood by the renderer.
const (
	TemplatePasswordReset        = "password_reset"
	TemplatePasswordResetSuccess = "password_reset_success"
)

// PasswordResetData is the context for the password_reset template.
type PasswordResetData struct {
	UserName          string // greeting name: display name when known, otherwise the username
	Username          string
	ResetURL          string
	ExpirationMinutes int
}

// PasswordResetSuccessData is the context for the password_reset_success template.
type PasswordResetSuccessData struct {
	Username string
}

//go:embed templates/*.html
var templateFS embed.FS

// Templates returns the built-in email templates as a file system rooted at
// the template files, suitable for NewRenderer.
func Templates() fs.FS {
	sub, err := fs.Sub(templateFS, "templates")
	if err != nil {
		panic(err)
	}
	return sub
}
