package md2mrkdwn

import (
	"regexp"
	"strings"
)

// Table detection patterns.
var (
	// A candidate table row: optional whitespace, |, content, |, optional
	// whitespace, anchored both ends.
	tableRowPattern = regexp.MustCompile(`^\s*\|.+\|\s*$`)

	// A separator cell: optional alignment colons around one or more
	// dash-like characters (plain hyphen or the common unicode dashes).
	separatorCellPattern = regexp.MustCompile(`^:?[-\x{2013}\x{2014}\x{2212}]+:?$`)

	// Markdown-level emphasis stripping for table cell text.
	boldStripPattern   = regexp.MustCompile(`\*\*(.+?)\*\*`)
	italicStripPattern = regexp.MustCompile(`\*(.+?)\*`)
)

// extractTables replaces every syntactically valid table with an opaque
// placeholder line and records the final table text in tables, keyed by
// placeholder. Lines inside fenced code blocks are never inspected.
// No-op when tables are disabled or in preserve mode.
func extractTables(text string, cfg *Config, tables map[string]string) string {
	if !cfg.ConvertTables || cfg.TableMode == TableModePreserve {
		return text
	}

	lines := strings.Split(text, "\n")
	result := make([]string, 0, len(lines))
	inCodeBlock := false

	for i := 0; i < len(lines); {
		line := lines[i]

		if isFenceLine(line) {
			inCodeBlock = !inCodeBlock
			result = append(result, line)
			i++
			continue
		}

		if inCodeBlock || !isTableRow(line) {
			result = append(result, line)
			i++
			continue
		}

		run := collectTableRows(lines, i)
		if isValidTable(run) {
			wrapped := wrapTable(run)
			token := tableToken(wrapped)
			tables[token] = wrapped
			result = append(result, token)
			i += len(run)
			continue
		}

		// Invalid run: emit only the first row and re-probe the next line
		// as a fresh candidate, so a malformed table's interior can still
		// hold a valid sub-table.
		result = append(result, line)
		i++
	}

	return strings.Join(result, "\n")
}

// isTableRow checks whether a line could be part of a markdown table.
func isTableRow(line string) bool {
	return tableRowPattern.MatchString(line)
}

// collectTableRows gathers the maximal run of consecutive candidate rows
// starting at start.
func collectTableRows(lines []string, start int) []string {
	end := start + 1
	for end < len(lines) && isTableRow(lines[end]) {
		end++
	}
	return lines[start:end]
}

// isValidTable reports whether rows form a valid markdown table: a header
// row and a separator row with matching cell counts.
func isValidTable(rows []string) bool {
	if len(rows) < 2 {
		return false
	}

	header := parseRow(rows[0])
	separator := parseRow(rows[1])
	if len(header) != len(separator) {
		return false
	}

	return isSeparatorRow(separator)
}

// parseRow splits a table row into trimmed cells, dropping the outer pipes.
func parseRow(row string) []string {
	trimmed := strings.TrimSpace(row)
	trimmed = strings.TrimPrefix(trimmed, "|")
	trimmed = strings.TrimSuffix(trimmed, "|")

	cells := strings.Split(trimmed, "|")
	for i, cell := range cells {
		cells[i] = strings.TrimSpace(cell)
	}
	return cells
}

// isSeparatorRow reports whether every cell matches the separator shape.
func isSeparatorRow(cells []string) bool {
	if len(cells) == 0 {
		return false
	}
	for _, cell := range cells {
		if !separatorCellPattern.MatchString(cell) {
			return false
		}
	}
	return true
}

// wrapTable wraps the table rows in a fenced code block for monospace
// display, stripping markdown emphasis from the cell text first.
func wrapTable(rows []string) string {
	clean := make([]string, len(rows))
	for i, row := range rows {
		clean[i] = stripTableMarkup(row)
	}
	return "```\n" + strings.Join(clean, "\n") + "\n```"
}

// stripTableMarkup removes bold then italic markdown from table text.
// Surviving asterisks from mismatched pairs are left untouched.
func stripTableMarkup(text string) string {
	text = boldStripPattern.ReplaceAllString(text, "${1}")
	return italicStripPattern.ReplaceAllString(text, "${1}")
}
