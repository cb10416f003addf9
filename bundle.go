package veloxui

import "sort"

// Bundle is a string-keyed container for arguments and saved state.
// A nil *Bundle behaves like an empty bundle for reads.
type Bundle struct {
	values map[string]any
}

// NewBundle returns an empty bundle.
func NewBundle() *Bundle {
	return &Bundle{values: make(map[string]any)}
}

// Put stores value under key, replacing any previous value.
func (b *Bundle) Put(key string, value any) {
	if b.values == nil {
		b.values = make(map[string]any)
	}
	b.values[key] = value
}

// Get returns the raw value stored under key.
func (b *Bundle) Get(key string) (any, bool) {
	if b == nil {
		return nil, false
	}
	v, ok := b.values[key]
	return v, ok
}

// Remove deletes key from the bundle.
func (b *Bundle) Remove(key string) {
	if b != nil {
		delete(b.values, key)
	}
}

// Len returns the number of stored keys.
func (b *Bundle) Len() int {
	if b == nil {
		return 0
	}
	return len(b.values)
}

// Keys returns the stored keys in sorted order.
func (b *Bundle) Keys() []string {
	if b == nil {
		return nil
	}
	keys := make([]string, 0, len(b.values))
	for k := range b.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// BundleValue returns the value stored under key if it is present and has
// type T.
func BundleValue[T any](b *Bundle, key string) (T, bool) {
	var zero T
	raw, ok := b.Get(key)
	if !ok {
		return zero, false
	}
	v, ok := raw.(T)
	if !ok {
		return zero, false
	}
	return v, true
}

// BundleGet is like BundleValue but reports why the lookup failed.
func BundleGet[T any](b *Bundle, key string) (T, error) {
	var zero T
	raw, ok := b.Get(key)
	if !ok {
		return zero, NewMissingKeyError(key)
	}
	v, ok := raw.(T)
	if !ok {
		return zero, NewTypeMismatchError(key, zero, raw)
	}
	return v, nil
}
