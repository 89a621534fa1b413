package campaignify

import "errors"

var (
	// ErrEmptyCampaign indicates that no campaign value was given.
	ErrEmptyCampaign = errors.New("campaignify: campaign must not be empty")

	// ErrInvalidKeyword indicates a keyword template the formatter cannot use.
	ErrInvalidKeyword = errors.New("campaignify: invalid keyword template")
)
