package seedweaver

import "os"

// Environ is the process-environment capability used by the ENV directive.
// It is injected so tests can substitute a fake environment without mutating
// real process state.
type Environ interface {
	LookupEnv(key string) (string, bool)
}

// EnvironFunc adapts a plain function to the Environ interface.
type EnvironFunc func(key string) (string, bool)

// LookupEnv implements the Environ interface.
func (f EnvironFunc) LookupEnv(key string) (string, bool) { return f(key) }

// OSEnviron reads the real process environment.
var OSEnviron Environ = EnvironFunc(os.LookupEnv)

// resolveDirective produces the replacement text for one scanned tag.
// It never mutates refs.
func resolveDirective(match TagMatch, env Environ, refs *Registry) (string, error) {
	switch match.Directive {
	case "ENV":
		return resolveEnv(match, env)
	case "REF":
		return resolveRef(match, refs)
	default:
		return "", NewUnsupportedDirectiveError(match.Directive)
	}
}

// resolveEnv looks the key up in the environment, falling back to the tag's
// default. A quoted default is substituted verbatim, quotes included; the
// structured-text decoder downstream strips them.
func resolveEnv(match TagMatch, env Environ) (string, error) {
	if value, ok := env.LookupEnv(match.Key); ok {
		return value, nil
	}
	if match.HasDefault {
		return match.Default, nil
	}
	return "", NewMissingEnvError(match.Key)
}

// resolveRef looks the key up in the registry. Defaults apply only to ENV, so
// a missing label fails even when the tag carries one.
func resolveRef(match TagMatch, refs *Registry) (string, error) {
	id, ok := refs.Lookup(match.Key)
	if !ok {
		return "", NewUnresolvedRefError(match.Key)
	}
	return id, nil
}
