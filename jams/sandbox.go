package jams

// Sandbox is an unconstrained key/value namespace. JAMS objects, annotations
// and file identifiers each carry one.
//
// Values decoded from disk are plain JSON values (map[string]any, []any,
// float64, string, bool, nil). Values set in memory may be any type that
// encoding/json can marshal.
type Sandbox map[string]any

// Has reports whether key is present.
func (s Sandbox) Has(key string) bool {
	_, ok := s[key]
	return ok
}

// Get returns the value stored under key.
func (s Sandbox) Get(key string) (any, bool) {
	v, ok := s[key]
	return v, ok
}

// Set stores value under key. Set panics on a nil Sandbox, like a map.
func (s Sandbox) Set(key string, value any) {
	s[key] = value
}

// Delete removes key and returns the previous value.
func (s Sandbox) Delete(key string) (any, bool) {
	v, ok := s[key]
	if ok {
		delete(s, key)
	}
	return v, ok
}
