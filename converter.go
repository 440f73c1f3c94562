package md2mrkdwn

import "strings"

// Converter transforms Markdown into Slack mrkdwn. It holds only its
// validated configuration; every Convert call keeps its scratch state
// local, so a single Converter is safe for concurrent use.
type Converter struct {
	cfg Config
}

// Option configures a Converter.
type Option func(*Converter)

// WithConfig sets the conversion configuration. The config is validated by
// New and copied; later changes to cfg do not affect the converter.
func WithConfig(cfg *Config) Option {
	return func(c *Converter) {
		if cfg != nil {
			c.cfg = *cfg
		}
	}
}

// New creates a Converter. Without options it uses DefaultConfig.
// It returns a configuration validation error if an enum field is outside
// its closed set or the horizontal rule length is below 1; a constructed
// Converter is guaranteed valid for its lifetime.
func New(opts ...Option) (*Converter, error) {
	c := &Converter{cfg: *DefaultConfig()}

	for _, opt := range opts {
		opt(c)
	}

	if err := c.cfg.Validate(); err != nil {
		return nil, err
	}

	return c, nil
}

// Convert transforms Markdown text into Slack mrkdwn format.
// Empty or whitespace-only input yields empty output. Malformed markup is
// never an error: it passes through or degrades per the conversion rules.
func (c *Converter) Convert(markdown string) string {
	text := strings.TrimSpace(markdown)
	if text == "" {
		return ""
	}

	// Per-call state: table placeholders live until restoration below.
	tables := make(map[string]string)

	// Step 1: extract and placeholder tables before any other rule runs.
	text = extractTables(text, &c.cfg, tables)

	// Step 2: rewrite line by line, passing fenced code through verbatim.
	// Fence delimiter lines themselves are never rewritten either, and an
	// unterminated fence simply leaves the rest of the document inside.
	lines := strings.Split(text, "\n")
	result := make([]string, 0, len(lines))
	inCodeBlock := false

	for _, line := range lines {
		if isFenceLine(line) {
			inCodeBlock = !inCodeBlock
			result = append(result, line)
			continue
		}

		if inCodeBlock {
			result = append(result, line)
			continue
		}

		result = append(result, rewriteLine(line, &c.cfg))
	}

	text = strings.Join(result, "\n")

	// Step 3: restore tables.
	for token, table := range tables {
		text = strings.ReplaceAll(text, token, table)
	}

	return text
}

// Convert transforms Markdown text into Slack mrkdwn format using cfg.
// A nil cfg means DefaultConfig. This is a convenience wrapper around
// New and Converter.Convert.
func Convert(markdown string, cfg *Config) (string, error) {
	c, err := New(WithConfig(cfg))
	if err != nil {
		return "", err
	}
	return c.Convert(markdown), nil
}

// isFenceLine reports whether a line toggles fenced-code state: its
// trimmed content starts with the triple-backtick marker.
func isFenceLine(line string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), "```")
}
