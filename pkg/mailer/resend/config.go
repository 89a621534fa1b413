package resend

import "github.com/dmitrymomot/campaignify/pkg/mailer"

// Config holds the Resend credentials and default sender.
type Config struct {
	APIKey      string `env:"RESEND_API_KEY"`
	SenderEmail string `env:"RESEND_FROM_EMAIL"`
	SenderName  string `env:"RESEND_FROM_NAME"`
}

// From formats the default sender address.
func (c Config) From() string {
	return mailer.Recipient(c.SenderName, c.SenderEmail)
}
