package statecache

// Snapshot is an immutable point-in-time view of the cache contents.
//
// A snapshot references the map generation that was current when it was
// taken; later Put calls publish new generations and never touch old
// ones. Snapshots therefore need no locking and may be shared freely
// across goroutines.
type Snapshot struct {
	data map[PropertyKey]string
}

// ContainsProperty reports whether the resource had the named property
// when the snapshot was taken.
func (s Snapshot) ContainsProperty(resourceID, property string) bool {
	_, ok := s.data[PropertyKey{ResourceID: resourceID, Name: property}]
	return ok
}

// GetProperty returns the value of the named property of the resource.
// The ok result reports whether the property was present.
func (s Snapshot) GetProperty(resourceID, property string) (value string, ok bool) {
	value, ok = s.data[PropertyKey{ResourceID: resourceID, Name: property}]
	return value, ok
}

// ResourceProperties returns all properties of the resource as a
// property-name to value map. The result is a fresh map owned by the
// caller and is empty when the resource is unknown.
func (s Snapshot) ResourceProperties(resourceID string) map[string]string {
	props := make(map[string]string)

	for key, value := range s.data {
		if key.ResourceID == resourceID {
			props[key.Name] = value
		}
	}

	return props
}

// Len returns the total number of (resource, property) entries in the
// snapshot.
func (s Snapshot) Len() int {
	return len(s.data)
}

func (s Snapshot) hasResource(resourceID string) bool {
	for key := range s.data {
		if key.ResourceID == resourceID {
			return true
		}
	}

	return false
}
