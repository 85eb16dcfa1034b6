package sqlgen

// Raw represents a value that is meant to be used in a query without escaping
// of any kind.
type Raw struct {
	Value string
}

// RawValue creates and returns a new raw value.
func RawValue(v string) *Raw {
	return &Raw{Value: v}
}

// Hash returns a unique identifier for the struct.
func (r *Raw) Hash() uint64 {
	return quickHash(FragmentType_Raw, r.Value)
}

// Compile returns the raw value verbatim.
func (r *Raw) Compile(*Template) string {
	return r.Value
}

// String returns the raw value.
func (r *Raw) String() string {
	return r.Value
}
