package classify

import (
	"strings"
	"unicode"

	"github.com/vburojevic/logpar/internal/domain"
)

// schemaFields is the number of leading tokens before the free-form message
const schemaFields = 4

// ParseRecord splits a line into DATE TIME LEVEL IP MESSAGE.
// The message is the remainder after the fourth token with leading
// whitespace removed; it may be empty or contain spaces.
// ok is false when the line has fewer than four tokens.
func ParseRecord(line string) (rec domain.Record, ok bool) {
	var fields [schemaFields]string
	rest := line
	for i := 0; i < schemaFields; i++ {
		var tok string
		tok, rest = nextToken(rest)
		if tok == "" {
			return domain.Record{}, false
		}
		fields[i] = tok
	}

	return domain.Record{
		Date:    fields[0],
		Time:    fields[1],
		Level:   fields[2],
		IP:      fields[3],
		Message: strings.TrimLeftFunc(rest, unicode.IsSpace),
	}, true
}

// nextToken returns the first whitespace-delimited token of s and the
// unconsumed remainder starting right after it.
func nextToken(s string) (tok, rest string) {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	if s == "" {
		return "", ""
	}
	end := strings.IndexFunc(s, unicode.IsSpace)
	if end < 0 {
		return s, ""
	}
	return s[:end], s[end:]
}

// isDotted accepts tokens that look like dotted addresses. It does not
// validate octets; any fourth token containing a dot is kept.
func isDotted(tok string) bool {
	return strings.IndexByte(tok, '.') >= 0
}
