package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/sebasr/email-service/internal/email"
	"github.com/sebasr/email-service/internal/token"
)

// EmailHandler handles email sending requests
type EmailHandler struct {
	service      *email.Service
	resetURLBase string
}

// NewEmailHandler creates a new email handler
func NewEmailHandler(service *email.Service, resetURLBase string) *EmailHandler {
	return &EmailHandler{
		service:      service,
		resetURLBase: resetURLBase,
	}
}

// PasswordResetRequest represents the password reset email request body
type PasswordResetRequest struct {
	Email    string `json:"email" binding:"required"`
	Username string `json:"username" binding:"required"`
	UserName string `json:"user_name"` // Optional display name for the greeting
}

// ResetSuccessRequest represents the reset confirmation email request body
type ResetSuccessRequest struct {
	Email    string `json:"email" binding:"required"`
	Username string `json:"username" binding:"required"`
}

// CustomEmailRequest represents the generic email request body used by
// other services
type CustomEmailRequest struct {
	ToEmail     string `json:"to_email" binding:"required"`
	Subject     string `json:"subject" binding:"required"`
	HTMLContent string `json:"html_content" binding:"required"`
	TextContent string `json:"text_content"` // Optional plain-text alternative
}

// TestEmailRequest represents the test email request body
type TestEmailRequest struct {
	Email string `json:"email"`
}

// SendPasswordReset generates a reset token and emails a reset link.
// POST /api/email/send-password-reset
//
// The token is returned to the caller, which is responsible for storing it
// with an expiry and the username association. This service keeps nothing.
func (h *EmailHandler) SendPasswordReset(c *gin.Context) {
	var req PasswordResetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "missing_fields",
			"message": "email and username are required",
		})
		return
	}

	resetToken, err := token.GenerateResetToken()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "token_generation_failed",
			"message": "Failed to generate reset token",
		})
		return
	}

	resetURL := fmt.Sprintf("%s?token=%s&username=%s", h.resetURLBase, resetToken, url.QueryEscape(req.Username))

	if err := h.service.SendPasswordResetEmail(c.Request.Context(), req.Email, req.Username, resetURL, req.UserName); err != nil {
		h.respondSendError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "sent",
		"message": "Password reset email sent successfully",
		"token":   resetToken,
	})
}

// SendResetSuccess emails a confirmation after a completed password reset.
// POST /api/email/send-reset-success
func (h *EmailHandler) SendResetSuccess(c *gin.Context) {
	var req ResetSuccessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "missing_fields",
			"message": "email and username are required",
		})
		return
	}

	if err := h.service.SendPasswordResetSuccessEmail(c.Request.Context(), req.Email, req.Username); err != nil {
		h.respondSendError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "sent",
		"message": "Success email sent",
	})
}

// SendCustomEmail sends an arbitrary email on behalf of another service.
// POST /api/email/send-custom-email
func (h *EmailHandler) SendCustomEmail(c *gin.Context) {
	var req CustomEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "missing_fields",
			"message": "to_email, subject, and html_content are required",
		})
		return
	}

	if err := h.service.SendEmail(c.Request.Context(), req.ToEmail, req.Subject, req.HTMLContent, req.TextContent); err != nil {
		h.respondSendError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "sent",
		"message": "Email sent successfully",
	})
}

// SendTest sends a fixed test email to verify SMTP configuration.
// POST /api/email/test
func (h *EmailHandler) SendTest(c *gin.Context) {
	var req TestEmailRequest
	// Body is optional; a missing or malformed body falls back to the
	// default recipient
	_ = c.ShouldBindJSON(&req)
	if req.Email == "" {
		req.Email = "test@example.com"
	}

	err := h.service.SendEmail(
		c.Request.Context(),
		req.Email,
		"Test Email",
		"<h1>Test Email</h1><p>This is a test email from the email service.</p>",
		"Test Email\n\nThis is a test email from the email service.",
	)
	if err != nil {
		h.respondSendError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "sent",
		"message": "Test email sent",
	})
}

// respondSendError maps facade error kinds to HTTP responses. Every branch
// is explicit so a rendering failure is distinguishable from a delivery
// failure in the response body.
func (h *EmailHandler) respondSendError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, email.ErrTemplateNotFound), errors.Is(err, email.ErrRenderFailed):
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "template_error",
			"message": "Failed to render email template",
		})
	case errors.Is(err, email.ErrSendFailed):
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "send_failed",
			"message": "Failed to send email",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "internal_error",
			"message": "Failed to send email",
		})
	}
}
