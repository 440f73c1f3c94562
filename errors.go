package md2mrkdwn

import "errors"

// Sentinel errors for configuration validation.
var (
	ErrInvalidHeaderStyle = errors.New("invalid header style")
	ErrInvalidLinkFormat  = errors.New("invalid link format")
	ErrInvalidTableMode   = errors.New("invalid table mode")
	ErrInvalidRuleLength  = errors.New("invalid horizontal rule length")
)
