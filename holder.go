package rui

import "github.com/corvidkit/rui/internal"

// Holder owns at most one disposable slot: assigning a new value
// disposes whatever was previously held.
type Holder[T Disposer] struct {
	inner *internal.Holder
}

// NewHolder returns an empty Holder.
func NewHolder[T Disposer]() *Holder[T] {
	return &Holder[T]{inner: internal.GetRuntime().NewHolder()}
}

// Get returns the currently held value and true, or the zero value and
// false if the holder is empty.
func (h *Holder[T]) Get() (T, bool) {
	d := h.inner.Get()
	if d == nil {
		var zero T
		return zero, false
	}
	return d.(T), true
}

// Set replaces the held value, disposing whatever was previously held.
func (h *Holder[T]) Set(v T) {
	if any(v) == nil {
		h.inner.Set(nil)
		return
	}
	h.inner.Set(v)
}

// Clear empties the holder, disposing whatever it held. Equivalent to
// Dispose, kept under own name for the operation.
func (h *Holder[T]) Clear() {
	h.inner.Set(nil)
}

// Dispose empties the holder, disposing whatever it held.
func (h *Holder[T]) Dispose() {
	h.inner.Dispose()
}

// MultiHolder holds an ordered set of Disposables, disposing all of them,
// in reverse-registration order, when cleared or disposed.
type MultiHolder struct {
	inner *internal.MultiHolder
}

// NewMultiHolder returns an empty MultiHolder.
func NewMultiHolder() *MultiHolder {
	return &MultiHolder{inner: internal.GetRuntime().NewMultiHolder()}
}

// Add registers d to be disposed the next time Clear or Dispose runs.
func (m *MultiHolder) Add(d Disposer) {
	m.inner.Add(d)
}

// Clear disposes every held value and empties the holder, leaving it
// reusable for further Add calls.
func (m *MultiHolder) Clear() {
	m.inner.Clear()
}

// Dispose disposes every held value.
func (m *MultiHolder) Dispose() {
	m.inner.Dispose()
}
