package statecache

// PropertyKey identifies a single (resource, property) cell in the
// cache. Two keys are equal iff both fields are equal.
type PropertyKey struct {
	ResourceID string
	Name       string
}
