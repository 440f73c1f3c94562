package md2mrkdwn

import (
	"crypto/md5" // #nosec G501 -- placeholder identity, not security
	"encoding/hex"
	"fmt"
	"strings"
)

// Intra-line sentinels marking spans that become bold or italic after all
// patterns have run. NUL framing keeps them out of any pattern's alphabet.
const (
	sentinelBold   = "\x00BOLD\x00"
	sentinelItalic = "\x00ITALIC\x00"
)

// segmentStore allocates opaque tokens for spans that must survive the
// rewrite pipeline untouched (inline code, protected images). Tokens are
// numbered per store; a store lives for a single line.
type segmentStore struct {
	prefix string
	next   int
	spans  map[string]string
}

func newSegmentStore(prefix string) *segmentStore {
	return &segmentStore{prefix: prefix, spans: make(map[string]string)}
}

// protect records span and returns the token standing in for it.
func (s *segmentStore) protect(span string) string {
	token := fmt.Sprintf("%%%%%s_%d%%%%", s.prefix, s.next)
	s.next++
	s.spans[token] = span
	return token
}

// restore substitutes every recorded span back in place of its token.
func (s *segmentStore) restore(line string) string {
	for token, span := range s.spans {
		line = strings.ReplaceAll(line, token, span)
	}
	return line
}

// tableToken derives a placeholder for a wrapped table from its content,
// so identical tables anywhere in the document share a token. The mapping
// is keyed by content, which makes reuse harmless.
func tableToken(content string) string {
	sum := md5.Sum([]byte(content)) // #nosec G401 -- content identity, not security
	return fmt.Sprintf("%%%%TABLE_%s%%%%", hex.EncodeToString(sum[:])[:8])
}
