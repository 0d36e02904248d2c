package seedweaver

import "strings"

// ResolveTags replaces every embedded tag in raw with its resolved value,
// reading ENV keys from the real process environment and REF keys from refs.
// Text without a single well-formed tag comes back unchanged. The first
// resolution failure aborts the whole call: no partial output is returned.
func ResolveTags(raw string, refs *Registry) (string, error) {
	return resolveTags(raw, OSEnviron, refs)
}

// resolveTags is ResolveTags with the environment capability injected.
// The cursor advances past each match (or to the end on no-match), so the
// loop always terminates.
func resolveTags(raw string, env Environ, refs *Registry) (string, error) {
	var out strings.Builder
	rest := raw

	for len(rest) > 0 {
		match, ok := ScanTag(rest)
		if !ok {
			out.WriteString(rest)
			break
		}

		replacement, err := resolveDirective(match, env, refs)
		if err != nil {
			return "", err
		}

		out.WriteString(rest[:match.Start])
		out.WriteString(replacement)
		rest = rest[match.End:]
	}

	return out.String(), nil
}
