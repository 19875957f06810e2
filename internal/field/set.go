package field

import "github.com/Caroline-an777/VectorDBBench-0208/internal/apperr"

// Set is a named, ordered collection of descriptors with unique names.
// A Set is immutable once built; Compose returns a new Set.
type Set struct {
	name   string
	fields []Descriptor
	index  map[string]int
}

func NewSet(name string, descs ...Descriptor) (Set, error) {
	s := Set{name: name, index: make(map[string]int, len(descs))}
	for _, d := range descs {
		if err := d.Validate(); err != nil {
			return Set{}, apperr.NewDefinitionWrap("field set "+name, err)
		}
		if _, dup := s.index[d.Name]; dup {
			return Set{}, apperr.NewDefinition("field set %s declares %q twice", name, d.Name)
		}
		s.index[d.Name] = len(s.fields)
		s.fields = append(s.fields, d)
	}
	return s, nil
}

// MustSet is NewSet for package-level declarations.
func MustSet(name string, descs ...Descriptor) Set {
	s, err := NewSet(name, descs...)
	if err != nil {
		panic(err)
	}
	return s
}

// Compose linearizes sets left to right. When a name appears in several
// sets the descriptor from the last one wins; surviving fields keep the
// position of their first appearance.
func Compose(name string, sets ...Set) Set {
	out := Set{name: name, index: make(map[string]int)}
	for _, s := range sets {
		for _, d := range s.fields {
			if i, ok := out.index[d.Name]; ok {
				out.fields[i] = d
				continue
			}
			out.index[d.Name] = len(out.fields)
			out.fields = append(out.fields, d)
		}
	}
	return out
}

func (s Set) Name() string { return s.name }

func (s Set) Len() int { return len(s.fields) }

func (s Set) Get(name string) (Descriptor, bool) {
	i, ok := s.index[name]
	if !ok {
		return Descriptor{}, false
	}
	return s.fields[i], true
}

func (s Set) Has(name string) bool {
	_, ok := s.index[name]
	return ok
}

// Fields returns a copy of the descriptors in declaration order.
func (s Set) Fields() []Descriptor {
	out := make([]Descriptor, len(s.fields))
	copy(out, s.fields)
	return out
}

func (s Set) Names() []string {
	names := make([]string, len(s.fields))
	for i, d := range s.fields {
		names[i] = d.Name
	}
	return names
}
