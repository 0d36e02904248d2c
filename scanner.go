package seedweaver

import "regexp"

// Whitespace inside a tag follows Unicode semantics, not just ASCII:
// fixture authors occasionally pad tags with full-width spaces.
const tagWS = `[\t\n\v\f\r\x{85}\p{Z}]*`

// Matches an embedded tag: ${{ DIRECTIVE(KEY) }} or ${{ DIRECTIVE(KEY:-DEFAULT) }}.
// The directive is alphanumeric, the key additionally allows `_` and `-`, and
// the default is either alphanumeric or a double-quoted string free of embedded
// quotes and control characters.
var tagRe = regexp.MustCompile(
	`\$\{\{` + tagWS +
		`([[:alnum:]]+)` + tagWS +
		`\(` + tagWS +
		`([[:alnum:]_-]+)` +
		`(?:` + tagWS + `:-` + tagWS + `([[:alnum:]]+|"[^"[:cntrl:]]+")` + `)?` + tagWS +
		`\)` + tagWS +
		`\}\}`)

// TagMatch describes one well-formed tag occurrence inside a text buffer.
type TagMatch struct {
	Directive  string // Operation selector, e.g. ENV or REF
	Key        string // Lookup key between the parentheses
	Default    string // Fallback after `:-`; a quoted default keeps its quotes
	HasDefault bool   // Whether a default was present at all
	Start      int    // Byte offset of the `$` opening the tag
	End        int    // Byte offset just past the closing `}}`
}

// ScanTag locates the leftmost well-formed tag in text. It reports false when
// no tag is present; malformed candidates (stray braces, unsupported
// characters, unterminated tags, repeated parenthesis groups) are simply not
// matches and pass through as literal text.
func ScanTag(text string) (TagMatch, bool) {
	loc := tagRe.FindStringSubmatchIndex(text)
	if loc == nil {
		return TagMatch{}, false
	}

	match := TagMatch{
		Directive: text[loc[2]:loc[3]],
		Key:       text[loc[4]:loc[5]],
		Start:     loc[0],
		End:       loc[1],
	}
	if loc[6] >= 0 {
		match.Default = text[loc[6]:loc[7]]
		match.HasDefault = true
	}
	return match, true
}
