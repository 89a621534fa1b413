package mailer

import "fmt"

// Tags are provider tags. A struct{}{} value marks a presence-only tag.
type Tags map[string]any

// Recipient formats "Name <email>", or just email when name is empty.
func Recipient(name, email string) string {
	if name == "" {
		return email
	}
	return fmt.Sprintf("%s <%s>", name, email)
}

// Email is a message ready for a Sender.
type Email struct {
	Headers map[string]string
	Tags    Tags
	Subject string
	HTML    string
	Text    string
	From    string // overrides the sender default
	ReplyTo string
	To      []string
	BCC     []string
}
