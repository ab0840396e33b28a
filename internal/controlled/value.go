// Package controlled resolves a widget value that may be owned by the host application
// (controlled) or by the widget itself (uncontrolled).
package controlled

// Resolve picks the effective value: the external one when the host supplied it,
// otherwise the widget's internal copy.
func Resolve[T any](external *T, internal T) T {
	if external != nil {
		return *external
	}
	return internal
}

// Value is the single source of truth for a widget value.
type Value[T any] struct {
	external *T
	internal T
}

// New builds a Value. A non-nil external pointer makes the value controlled; the
// default seeds the internal copy either way.
func New[T any](external *T, def T) Value[T] {
	v := Value[T]{internal: def}
	if external != nil {
		ext := *external
		v.external = &ext
	}
	return v
}

// Get returns the effective value.
func (v *Value[T]) Get() T {
	return Resolve(v.external, v.internal)
}

// Controlled reports whether the host owns the value.
func (v *Value[T]) Controlled() bool {
	return v.external != nil
}

// Commit records a new value produced by user interaction. A controlled value keeps
// reflecting the host until the host pushes the change back through SetExternal.
func (v *Value[T]) Commit(next T) {
	if v.external != nil {
		return
	}
	v.internal = next
}

// SetExternal replaces the host-supplied value. Passing nil hands ownership back to
// the widget, which continues from the last effective value.
func (v *Value[T]) SetExternal(external *T) {
	if external == nil {
		if v.external != nil {
			v.internal = *v.external
		}
		v.external = nil
		return
	}
	ext := *external
	v.external = &ext
}
