package record

// ExtState tells where an extension value came from.
type ExtState uint8

const (
	// ExtAbsent means the gate was closed and no value exists (sectors and sprites).
	ExtAbsent ExtState = iota
	// ExtDefault means the gate was closed and the value is the zero record (walls).
	ExtDefault
	// ExtFromStream means the value was read from the buffer.
	ExtFromStream
)

func (s ExtState) String() string {
	switch s {
	case ExtAbsent:
		return "Absent"
	case ExtDefault:
		return "Default"
	case ExtFromStream:
		return "FromStream"
	default:
		return "Unknown"
	}
}

// Extension is an extension record together with its provenance.
type Extension[T any] struct {
	State ExtState
	Value T
}

// Get returns the value and whether one exists. Defaulted values count as existing.
func (e Extension[T]) Get() (T, bool) {
	return e.Value, e.State != ExtAbsent
}

// InStream reports whether the extension occupied bytes in the buffer.
func (e Extension[T]) InStream() bool {
	return e.State == ExtFromStream
}

func absent[T any]() Extension[T] {
	return Extension[T]{State: ExtAbsent}
}

func defaulted[T any]() Extension[T] {
	var zero T
	return Extension[T]{State: ExtDefault, Value: zero}
}

func fromStream[T any](v T) Extension[T] {
	return Extension[T]{State: ExtFromStream, Value: v}
}
