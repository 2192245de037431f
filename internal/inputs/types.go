package inputs

import "iter"

// Definition declares one input a skeleton accepts.
type Definition struct {
	Name    string
	Default *string  // nil when the input is required
	Options []string // empty means any value is accepted
}

// HasDefault reports whether the definition carries a default value.
func (d Definition) HasDefault() bool { return d.Default != nil }

// Allows reports whether value is acceptable for this definition.
func (d Definition) Allows(value string) bool {
	if len(d.Options) == 0 {
		return true
	}
	for _, o := range d.Options {
		if o == value {
			return true
		}
	}
	return false
}

// Pair is a single user-supplied input.
type Pair struct {
	Name  string
	Value string
}

// Set is an ordered name -> value mapping. Order is insertion order, which
// for a validated set is schema declaration order.
type Set struct {
	pairs []Pair
	index map[string]int
}

// NewSet builds a Set from pairs. A repeated name overwrites the earlier
// value in place, keeping the position of its first occurrence.
func NewSet(pairs ...Pair) *Set {
	s := &Set{index: make(map[string]int, len(pairs))}
	for _, p := range pairs {
		s.put(p.Name, p.Value)
	}
	return s
}

func (s *Set) put(name, value string) {
	if i, ok := s.index[name]; ok {
		s.pairs[i].Value = value
		return
	}
	s.index[name] = len(s.pairs)
	s.pairs = append(s.pairs, Pair{Name: name, Value: value})
}

// Get returns the value for name.
func (s *Set) Get(name string) (string, bool) {
	if s == nil {
		return "", false
	}
	i, ok := s.index[name]
	if !ok {
		return "", false
	}
	return s.pairs[i].Value, true
}

// Len returns the number of entries.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.pairs)
}

// Pairs returns a copy of the entries in order.
func (s *Set) Pairs() []Pair {
	if s == nil {
		return nil
	}
	out := make([]Pair, len(s.pairs))
	copy(out, s.pairs)
	return out
}

// All iterates the entries in order.
func (s *Set) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		if s == nil {
			return
		}
		for _, p := range s.pairs {
			if !yield(p.Name, p.Value) {
				return
			}
		}
	}
}

// Map returns the entries as a map, for template execution.
func (s *Set) Map() map[string]string {
	m := make(map[string]string, s.Len())
	for name, value := range s.All() {
		m[name] = value
	}
	return m
}
