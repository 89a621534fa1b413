package mailer

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	texttemplate "text/template"

	"github.com/dmitrymomot/campaignify"
	"github.com/dmitrymomot/campaignify/pkg/logger"
	"github.com/dmitrymomot/campaignify/pkg/slug"
)

// maxCampaignLength bounds campaigns derived from subjects.
const maxCampaignLength = 64

// Mailer renders newsletters, tags their links with a campaign and sends them.
type Mailer struct {
	sender   Sender
	renderer *Renderer
	engine   *campaignify.Campaignifier
	logger   *slog.Logger
	config   Config
}

// Option configures a Mailer.
type Option func(*Mailer)

// WithCampaignifier replaces the default engine, e.g. to restrict tracking
// to the newsletter's own domains.
func WithCampaignifier(c *campaignify.Campaignifier) Option {
	return func(m *Mailer) {
		if c != nil {
			m.engine = c
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(m *Mailer) {
		if l != nil {
			m.logger = l
		}
	}
}

// New creates a Mailer.
func New(sender Sender, renderer *Renderer, cfg Config, opts ...Option) *Mailer {
	m := &Mailer{
		sender:   sender,
		renderer: renderer,
		engine:   campaignify.New(),
		logger:   logger.NewNope(),
		config:   cfg,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// SendParams describes one newsletter delivery.
type SendParams struct {
	To       []string
	Template string // file name inside the template dir, e.g. "2012-11.md"
	Data     any

	// Optional overrides of the template frontmatter and config.
	Subject  string
	Campaign string
	Keyword  string
	Layout   string
	From     string
	ReplyTo  string
	BCC      []string
	Headers  map[string]string
}

// Prepare renders the newsletter and adds campaign parameters to its links
// without sending it.
//
// Subject resolution: params > frontmatter > Config.FallbackSubject.
// Campaign resolution: params > frontmatter > slug of the subject.
// Keyword resolution: params > frontmatter > Config.DefaultKeyword.
// Subject and campaign may use template syntax ({{.Field}}).
//
// The HTML part is rewritten in href-only mode so URLs shown as link text
// stay readable; the text part has every URL rewritten.
func (m *Mailer) Prepare(params SendParams) (*Email, error) {
	if len(params.To) == 0 {
		return nil, ErrNoRecipient
	}

	layout := firstNonEmpty(params.Layout, m.config.DefaultLayout)
	res, err := m.renderer.Render(layout, params.Template, params.Data)
	if err != nil {
		return nil, err
	}

	subject, err := execute(firstNonEmpty(params.Subject, res.Subject, m.config.FallbackSubject), params.Data)
	if err != nil {
		return nil, errors.Join(ErrRenderFailed, err)
	}

	campaign, err := execute(firstNonEmpty(params.Campaign, res.Campaign), params.Data)
	if err != nil {
		return nil, errors.Join(ErrRenderFailed, err)
	}
	if strings.TrimSpace(campaign) == "" {
		campaign = slug.Make(subject, slug.MaxLength(maxCampaignLength))
	}

	p := campaignify.Params{
		Campaign: campaign,
		Keyword:  firstNonEmpty(params.Keyword, res.Keyword, m.config.DefaultKeyword),
	}
	if err := p.Validate(); err != nil {
		return nil, errors.Join(ErrInvalidCampaign, err)
	}

	p.HrefOnly = true
	html := m.engine.Rewrite(res.HTML, p)
	p.HrefOnly = false
	text := m.engine.Rewrite(res.Text, p)

	m.logger.Debug("newsletter campaignified",
		slog.String("template", params.Template),
		slog.String("campaign", campaign),
		slog.Int("html_links", html.Rewritten),
		slog.Int("text_links", text.Rewritten),
	)

	email := &Email{
		To:      params.To,
		Subject: subject,
		HTML:    html.Text,
		Text:    text.Text,
		From:    params.From,
		ReplyTo: params.ReplyTo,
		BCC:     params.BCC,
		Headers: params.Headers,
	}
	if m.config.CampaignTag != "" {
		email.Tags = Tags{m.config.CampaignTag: campaign}
	}
	return email, nil
}

// Send prepares the newsletter and hands it to the sender.
func (m *Mailer) Send(ctx context.Context, params SendParams) (*Email, error) {
	email, err := m.Prepare(params)
	if err != nil {
		return nil, err
	}
	if err := m.sender.Send(ctx, email); err != nil {
		return nil, errors.Join(ErrSendFailed, err)
	}

	m.logger.InfoContext(ctx, "newsletter sent",
		slog.String("subject", email.Subject),
		slog.Int("recipients", len(email.To)+len(email.BCC)),
	)
	return email, nil
}

// SendRaw validates and sends a prebuilt email as is.
func (m *Mailer) SendRaw(ctx context.Context, email *Email) error {
	switch {
	case len(email.To) == 0:
		return ErrNoRecipient
	case email.Subject == "":
		return ErrNoSubject
	case email.HTML == "":
		return ErrNoContent
	}
	if err := m.sender.Send(ctx, email); err != nil {
		return errors.Join(ErrSendFailed, err)
	}
	return nil
}

func execute(text string, data any) (string, error) {
	if !strings.Contains(text, "{{") {
		return text, nil
	}
	tmpl, err := texttemplate.New("").Parse(text)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
