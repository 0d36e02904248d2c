package seedweaver

// Registry maps record labels to the identifiers assigned on insertion.
// It lives for one seeding session and is shared by every file populated in
// that session, so a record may reference identifiers registered by earlier
// files. Registering an existing label silently overwrites it: last write
// wins. That is intentional, but watch out for accidental label collisions
// across fixture files.
type Registry struct {
	byLabel map[string]string
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{byLabel: map[string]string{}}
}

// Insert registers identifier under label, overwriting any prior entry.
func (r *Registry) Insert(label, identifier string) {
	r.byLabel[label] = identifier
}

// Lookup returns the identifier registered under label. A nil Registry
// behaves like an empty one.
func (r *Registry) Lookup(label string) (string, bool) {
	if r == nil {
		return "", false
	}
	id, ok := r.byLabel[label]
	return id, ok
}

// Len reports how many labels are registered.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.byLabel)
}
