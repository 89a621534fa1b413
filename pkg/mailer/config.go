package mailer

// Config holds mailer defaults, parsed from the environment.
type Config struct {
	FallbackSubject string `env:"MAILER_FALLBACK_SUBJECT" envDefault:"Newsletter"`
	DefaultLayout   string `env:"MAILER_DEFAULT_LAYOUT" envDefault:"base.html"`
	// CampaignTag names the provider tag carrying the campaign. Empty
	// disables tagging.
	CampaignTag string `env:"MAILER_CAMPAIGN_TAG" envDefault:"campaign"`
	// DefaultKeyword applies when neither the call nor the template sets one.
	DefaultKeyword string `env:"MAILER_DEFAULT_KEYWORD"`
}
