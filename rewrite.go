package md2mrkdwn

import (
	"regexp"
	"strings"
)

// Precompiled conversion patterns. Compiled once at init and shared
// read-only across all converter instances.
var (
	// Inline code protection
	inlineCodePattern = regexp.MustCompile("`[^`]+`")

	// Emphasis
	boldItalicAsterisksPattern   = regexp.MustCompile(`\*\*\*(.+?)\*\*\*`)
	boldItalicUnderscoresPattern = regexp.MustCompile(`___(.+?)___`)
	boldAsterisksPattern         = regexp.MustCompile(`\*\*(.+?)\*\*`)
	boldUnderscoresPattern       = regexp.MustCompile(`__(.+?)__`)
	italicAsterisksPattern       = regexp.MustCompile(`\*[^*]+\*`)
	italicUnderscoresPattern     = regexp.MustCompile(`_[^_]+_`)
	strikethroughPattern         = regexp.MustCompile(`~~(.+?)~~`)

	// Images and links
	imagePattern = regexp.MustCompile(`!\[([^\]]*)\]\(([^)]+)\)`)
	linkPattern  = regexp.MustCompile(`\[([^\]]+)\]\(([^)]+)\)`)

	// Block-level line shapes
	taskCheckedPattern    = regexp.MustCompile(`^(\s*)[-*+]\s+\[[xX]\]\s*`)
	taskUncheckedPattern  = regexp.MustCompile(`^(\s*)[-*+]\s+\[ \]\s*`)
	unorderedListPattern  = regexp.MustCompile(`^(\s*)[-*+]\s+`)
	horizontalRulePattern = regexp.MustCompile(`^[-*_]{3,}\s*$`)
	headerPattern         = regexp.MustCompile(`^#{1,6}\s+(.+?)(?:\s+#+)?$`)
)

// rewriteLine applies the ordered conversion stages to one line of text
// outside any fenced code block. Sentinels and opaque tokens keep earlier
// stages' output from being re-matched by later stages; both are resolved
// before the line is returned.
//
// Stage order matters: emphasis before links (so link text keeps its
// sentinels), images before links (so the link pattern never sees an
// image's bracket-paren shape), task items before plain bullets, and
// headers last so header content can be stripped of sentinels.
func rewriteLine(line string, cfg *Config) string {
	var code *segmentStore
	if strings.Contains(line, "`") {
		code = newSegmentStore("CODE")
		line = inlineCodePattern.ReplaceAllStringFunc(line, code.protect)
	}

	// Triple emphasis first, so ***x*** is not eaten as bold plus a stray
	// asterisk pair. The wrapper depends on which conversions are enabled.
	if cfg.ConvertBold || cfg.ConvertItalic {
		var opening, closing string
		switch {
		case cfg.ConvertBold && cfg.ConvertItalic:
			opening = sentinelBold + sentinelItalic
			closing = sentinelItalic + sentinelBold
		case cfg.ConvertBold:
			opening, closing = sentinelBold, sentinelBold
		default:
			opening, closing = sentinelItalic, sentinelItalic
		}
		line = boldItalicAsterisksPattern.ReplaceAllString(line, opening+"${1}"+closing)
		line = boldItalicUnderscoresPattern.ReplaceAllString(line, opening+"${1}"+closing)
	}

	if cfg.ConvertBold {
		line = boldAsterisksPattern.ReplaceAllString(line, sentinelBold+"${1}"+sentinelBold)
		line = boldUnderscoresPattern.ReplaceAllString(line, sentinelBold+"${1}"+sentinelBold)
	}

	if cfg.ConvertItalic {
		line = rewriteUnpaired(line, italicAsterisksPattern, '*', sentinelItalic)
		line = rewriteUnpaired(line, italicUnderscoresPattern, '_', sentinelItalic)
	}

	if cfg.ConvertStrikethrough {
		line = strikethroughPattern.ReplaceAllString(line, "~${1}~")
	}

	var images *segmentStore
	if cfg.ConvertImages {
		// mrkdwn has no image syntax; only the URL survives.
		line = imagePattern.ReplaceAllString(line, "<${2}>")
	} else if cfg.ConvertLinks {
		// Hide images from the link pattern, restore them verbatim below.
		images = newSegmentStore("IMG")
		line = imagePattern.ReplaceAllStringFunc(line, images.protect)
	}

	if cfg.ConvertLinks {
		switch cfg.LinkFormat {
		case LinkFormatSlack:
			line = linkPattern.ReplaceAllString(line, "<${2}|${1}>")
		case LinkFormatURLOnly:
			line = linkPattern.ReplaceAllString(line, "<${2}>")
		case LinkFormatTextOnly:
			line = linkPattern.ReplaceAllString(line, "${1}")
		}
	}

	switch {
	case cfg.ConvertTaskLists:
		line = taskCheckedPattern.ReplaceAllString(line, "${1}"+literal(cfg.BulletChar+" "+cfg.CheckboxChecked+" "))
		line = taskUncheckedPattern.ReplaceAllString(line, "${1}"+literal(cfg.BulletChar+" "+cfg.CheckboxUnchecked+" "))
	case cfg.ConvertLists:
		// Task syntax degrades to a generic bullet; checkbox state is lost.
		line = taskCheckedPattern.ReplaceAllString(line, "${1}"+literal(cfg.BulletChar+" "))
		line = taskUncheckedPattern.ReplaceAllString(line, "${1}"+literal(cfg.BulletChar+" "))
	}

	if cfg.ConvertLists {
		line = unorderedListPattern.ReplaceAllString(line, "${1}"+literal(cfg.BulletChar+" "))
	}

	if cfg.ConvertHorizontalRules {
		rule := strings.Repeat(cfg.HorizontalRuleChar, cfg.HorizontalRuleLength)
		line = horizontalRulePattern.ReplaceAllString(line, literal(rule))
	}

	if cfg.ConvertHeaders {
		switch cfg.HeaderStyle {
		case HeaderStyleBold:
			line = headerPattern.ReplaceAllStringFunc(line, func(m string) string {
				return sentinelBold + stripSentinels(headerContent(m)) + sentinelBold
			})
		case HeaderStylePlain:
			line = headerPattern.ReplaceAllStringFunc(line, func(m string) string {
				return stripSentinels(headerContent(m))
			})
		}
		// "prefix" leaves the line unchanged, hashes included.
	}

	// Resolve sentinels to final mrkdwn characters.
	line = strings.ReplaceAll(line, sentinelBold, "*")
	line = strings.ReplaceAll(line, sentinelItalic, "_")

	if code != nil {
		line = code.restore(line)
	}
	if images != nil {
		line = images.restore(line)
	}

	return line
}

// rewriteUnpaired wraps single-delimiter emphasis spans in sentinels,
// skipping spans adjacent to another delimiter of the same kind. The
// adjacency check replaces the lookaround the original patterns would
// need, which RE2 does not support: a lone * inside an already-bold run
// must not be misread as italic.
func rewriteUnpaired(line string, pattern *regexp.Regexp, delim byte, sentinel string) string {
	var b strings.Builder
	b.Grow(len(line))

	i := 0
	for i < len(line) {
		loc := pattern.FindStringIndex(line[i:])
		if loc == nil {
			break
		}

		start, end := i+loc[0], i+loc[1]
		if (start > 0 && line[start-1] == delim) || (end < len(line) && line[end] == delim) {
			// Rejected span: emit through the opening delimiter and retry
			// from the next byte, as a backtracking engine would.
			b.WriteString(line[i : start+1])
			i = start + 1
			continue
		}

		b.WriteString(line[i:start])
		b.WriteString(sentinel)
		b.WriteString(line[start+1 : end-1])
		b.WriteString(sentinel)
		i = end
	}

	b.WriteString(line[i:])
	return b.String()
}

// headerContent extracts the text of a matched header line, without the
// leading hashes and any trailing hash run.
func headerContent(line string) string {
	return headerPattern.FindStringSubmatch(line)[1]
}

// stripSentinels removes bold/italic sentinels from header content to
// avoid visual doubling when the header itself contained emphasis markup.
func stripSentinels(s string) string {
	s = strings.ReplaceAll(s, sentinelBold, "")
	return strings.ReplaceAll(s, sentinelItalic, "")
}

// literal escapes $ so user glyphs are inserted verbatim into a
// ReplaceAllString template.
func literal(s string) string {
	return strings.ReplaceAll(s, "$", "$$")
}
