package colordb

// orderedMap is a string map that remembers first-insertion order.
// Overwriting a key keeps its original position.
type orderedMap struct {
	keys   []string
	values map[string]string
}

func newOrderedMap() *orderedMap {
	return &orderedMap{values: make(map[string]string)}
}

func (m *orderedMap) set(key, value string) {
	if _, exists := m.values[key]; !exists {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

func (m *orderedMap) get(key string) (string, bool) {
	v, ok := m.values[key]
	return v, ok
}

func (m *orderedMap) len() int {
	return len(m.keys)
}

// each calls fn for every entry in insertion order
func (m *orderedMap) each(fn func(key, value string)) {
	for _, k := range m.keys {
		fn(k, m.values[k])
	}
}
