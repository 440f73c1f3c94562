package md2mrkdwn

import "fmt"

// Header style constants.
const (
	HeaderStyleBold   = "bold"
	HeaderStylePlain  = "plain"
	HeaderStylePrefix = "prefix"
)

// Link format constants.
const (
	LinkFormatSlack    = "slack"
	LinkFormatURLOnly  = "url_only"
	LinkFormatTextOnly = "text_only"
)

// Table mode constants.
const (
	TableModeCodeBlock = "code_block"
	TableModePreserve  = "preserve"
)

// Default replacement glyphs.
const (
	DefaultBulletChar          = "•" // •
	DefaultCheckboxChecked     = "☑" // ☑
	DefaultCheckboxUnchecked   = "☐" // ☐
	DefaultHorizontalRuleChar  = "─" // ─
	DefaultHorizontalRuleCount = 10
)

// Config selects conversion behavior. Construct with DefaultConfig and
// adjust fields, or fill the struct directly; pass it to New or Convert,
// which validate it once. A Config is never mutated after construction.
type Config struct {
	BulletChar        string // replacement glyph for unordered bullets
	CheckboxChecked   string // glyph for checked task items
	CheckboxUnchecked string // glyph for unchecked task items

	HorizontalRuleChar   string // glyph repeated to render a horizontal rule
	HorizontalRuleLength int    // repeat count, must be >= 1

	HeaderStyle string // "bold", "plain", "prefix"
	LinkFormat  string // "slack", "url_only", "text_only"
	TableMode   string // "code_block", "preserve"

	ConvertBold            bool
	ConvertItalic          bool
	ConvertStrikethrough   bool
	ConvertLinks           bool
	ConvertImages          bool
	ConvertLists           bool
	ConvertTaskLists       bool
	ConvertHeaders         bool
	ConvertHorizontalRules bool
	ConvertTables          bool
}

// DefaultConfig returns a configuration with every conversion enabled and
// the standard mrkdwn replacement glyphs.
func DefaultConfig() *Config {
	return &Config{
		BulletChar:             DefaultBulletChar,
		CheckboxChecked:        DefaultCheckboxChecked,
		CheckboxUnchecked:      DefaultCheckboxUnchecked,
		HorizontalRuleChar:     DefaultHorizontalRuleChar,
		HorizontalRuleLength:   DefaultHorizontalRuleCount,
		HeaderStyle:            HeaderStyleBold,
		LinkFormat:             LinkFormatSlack,
		TableMode:              TableModeCodeBlock,
		ConvertBold:            true,
		ConvertItalic:          true,
		ConvertStrikethrough:   true,
		ConvertLinks:           true,
		ConvertImages:          true,
		ConvertLists:           true,
		ConvertTaskLists:       true,
		ConvertHeaders:         true,
		ConvertHorizontalRules: true,
		ConvertTables:          true,
	}
}

// Validate checks that enum fields hold one of their listed values and that
// the horizontal rule length is at least 1.
// Returns nil if c is nil (nil means use defaults).
func (c *Config) Validate() error {
	if c == nil {
		return nil
	}

	if !isValidHeaderStyle(c.HeaderStyle) {
		return fmt.Errorf("%w: %q", ErrInvalidHeaderStyle, c.HeaderStyle)
	}

	if !isValidLinkFormat(c.LinkFormat) {
		return fmt.Errorf("%w: %q", ErrInvalidLinkFormat, c.LinkFormat)
	}

	if !isValidTableMode(c.TableMode) {
		return fmt.Errorf("%w: %q", ErrInvalidTableMode, c.TableMode)
	}

	if c.HorizontalRuleLength < 1 {
		return fmt.Errorf("%w: %d (must be at least 1)", ErrInvalidRuleLength, c.HorizontalRuleLength)
	}

	return nil
}

// isValidHeaderStyle checks if style is a known header style.
func isValidHeaderStyle(style string) bool {
	switch style {
	case HeaderStyleBold, HeaderStylePlain, HeaderStylePrefix:
		return true
	}
	return false
}

// isValidLinkFormat checks if format is a known link format.
func isValidLinkFormat(format string) bool {
	switch format {
	case LinkFormatSlack, LinkFormatURLOnly, LinkFormatTextOnly:
		return true
	}
	return false
}

// isValidTableMode checks if mode is a known table mode.
func isValidTableMode(mode string) bool {
	switch mode {
	case TableModeCodeBlock, TableModePreserve:
		return true
	}
	return false
}
