package options

import "sort"

// Options maps editor option names to their values.
type Options map[string]Value

// FromMap converts a decoded document mapping into Options, classifying each
// value through ValueOf.
func FromMap(raw map[string]any) Options {
	out := make(Options, len(raw))
	for key, value := range raw {
		out[key] = ValueOf(value)
	}
	return out
}

// Clone returns a deep copy. A nil receiver yields an empty, non-nil map.
func (o Options) Clone() Options {
	out := make(Options, len(o))
	for key, value := range o {
		out[key] = value.clone()
	}
	return out
}

// Merge returns a new mapping holding the receiver overlaid with overrides.
// Overrides win on key conflicts; neither input is modified.
func (o Options) Merge(overrides Options) Options {
	out := make(Options, len(o)+len(overrides))
	for key, value := range o {
		out[key] = value.clone()
	}
	for key, value := range overrides {
		out[key] = value.clone()
	}
	return out
}

// Has reports whether name is set.
func (o Options) Has(name string) bool {
	_, ok := o[name]
	return ok
}

// Get returns the value stored under name.
func (o Options) Get(name string) (Value, bool) {
	value, ok := o[name]
	if !ok {
		return Value{}, false
	}
	return value.clone(), true
}

// Keys returns the option names in lexical order.
func (o Options) Keys() []string {
	keys := make([]string, 0, len(o))
	for key := range o {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Map converts the options back into plain Go values.
func (o Options) Map() map[string]any {
	out := make(map[string]any, len(o))
	for key, value := range o {
		out[key] = value.Interface()
	}
	return out
}

// Equal reports whether both mappings hold the same keys and values.
func (o Options) Equal(other Options) bool {
	if len(o) != len(other) {
		return false
	}
	for key, value := range o {
		otherValue, ok := other[key]
		if !ok || !value.Equal(otherValue) {
			return false
		}
	}
	return true
}
