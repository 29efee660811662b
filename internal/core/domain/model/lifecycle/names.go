package lifecycle

// Names maps a status value to its wire code (for example "in_production").
type Names[S comparable] map[S]string

// Parse returns the status whose code is s.
func (n Names[S]) Parse(s string) (S, bool) {
	for status, code := range n {
		if code == s {
			return status, true
		}
	}
	var zero S
	return zero, false
}

// Code returns the wire code of s, or fallback when s is not named.
func (n Names[S]) Code(s S, fallback string) string {
	if code, ok := n[s]; ok {
		return code
	}
	return fallback
}
