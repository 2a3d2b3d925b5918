package infobox

// Fields is an insertion-ordered label -> value mapping.
// Overwriting an existing label replaces its value but keeps its original position.
type Fields struct {
	keys   []string
	values map[string]string
}

// NewFields creates an empty Fields.
func NewFields() *Fields {
	return &Fields{values: make(map[string]string)}
}

// Set inserts or overwrites label.
func (f *Fields) Set(label, value string) {
	if _, ok := f.values[label]; !ok {
		f.keys = append(f.keys, label)
	}
	f.values[label] = value
}

// SetDefault inserts label only when it is not present yet.
// It reports whether the value was inserted.
func (f *Fields) SetDefault(label, value string) bool {
	if _, ok := f.values[label]; ok {
		return false
	}
	f.Set(label, value)
	return true
}

func (f *Fields) Get(label string) (string, bool) {
	v, ok := f.values[label]
	return v, ok
}

// Keys returns the labels in insertion order.
func (f *Fields) Keys() []string {
	out := make([]string, len(f.keys))
	copy(out, f.keys)
	return out
}

func (f *Fields) Len() int {
	if f == nil {
		return 0
	}
	return len(f.keys)
}

// Each calls fn for every pair in insertion order.
func (f *Fields) Each(fn func(label, value string)) {
	if f == nil {
		return
	}
	for _, k := range f.keys {
		fn(k, f.values[k])
	}
}
