package utils

import (
	"fmt"
	"net/smtp"

	"wanderwise/internal/config"
)

// EmailService handles email sending operations
type EmailService struct {
	config *config.EmailConfig
}

// NewEmailService creates a new email service instance
func NewEmailService(cfg *config.EmailConfig) *EmailService {
	return &EmailService{config: cfg}
}

// SendVerificationCode sends a password reset code to the user's email
func (e *EmailService) SendVerificationCode(to, code string) error {
	subject := "Password Reset Verification Code"
	body := fmt.Sprintf(`
Hello,

You requested to reset your Wanderwise password.

Your verification code is: %s

This code expires in %s. If you didn't request this, please ignore this email.

Safe travels,
The Wanderwise Team
	`, code, e.config.ResetCodeTTL)

	return e.sendEmail(to, subject, body)
}

// sendEmail sends a plain-text email over SMTP
func (e *EmailService) sendEmail(to, subject, body string) error {
	if e.config.SMTPUsername == "" || e.config.SMTPPassword == "" {
		return fmt.Errorf("email credentials not configured")
	}

	auth := smtp.PlainAuth("", e.config.SMTPUsername, e.config.SMTPPassword, e.config.SMTPHost)

	fromEmail := e.config.FromEmail
	if fromEmail == "" {
		fromEmail = e.config.SMTPUsername
	}

	message := []byte(fmt.Sprintf(
		"From: %s <%s>\r\n"+
			"To: %s\r\n"+
			"Subject: %s\r\n"+
			"\r\n"+
			"%s\r\n",
		e.config.FromName, fromEmail, to, subject, body))

	addr := e.config.SMTPHost + ":" + e.config.SMTPPort
	if err := smtp.SendMail(addr, auth, fromEmail, []string{to}, message); err != nil {
		return fmt.Errorf("failed to send email: %v", err)
	}

	return nil
}
