package bench

import (
	"errors"
	"fmt"
	"slices"

	"github.com/Caroline-an777/VectorDBBench-0208/internal/apperr"
	"github.com/Caroline-an777/VectorDBBench-0208/internal/field"
)

// Variant is one index-specific subcommand: the parameter groups it exposes
// and the constructors of its two configuration objects.
type Variant struct {
	Name  string
	Short string
	DB    DB

	Connection field.Set
	Algorithm  field.Set
	// Shared lists names intentionally present in both Connection and
	// Algorithm. Both constructors receive the value.
	Shared []string

	NewDBConfig    func(field.Values) (DBConfig, error)
	NewIndexConfig func(field.Values) (IndexConfig, error)
}

// Fields is the composite set exposed on the command line.
func (v Variant) Fields() field.Set {
	return field.Compose(v.Name, Common, v.Connection, v.Algorithm)
}

// Validate checks the declaration: partitions must not collide and both
// constructors must consume exactly the fields they are given.
func (v Variant) Validate() error {
	if v.Name == "" {
		return apperr.NewDefinition("variant without name")
	}
	if v.NewDBConfig == nil || v.NewIndexConfig == nil {
		return apperr.NewDefinition("variant %s: missing config constructor", v.Name)
	}

	for _, name := range v.Connection.Names() {
		if v.Algorithm.Has(name) && !slices.Contains(v.Shared, name) {
			return apperr.NewDefinition("variant %s: %q is both a connection and an algorithm parameter", v.Name, name)
		}
	}
	for _, name := range Common.Names() {
		if v.Connection.Has(name) || v.Algorithm.Has(name) {
			return apperr.NewDefinition("variant %s: %q shadows a common parameter", v.Name, name)
		}
	}

	for _, full := range []bool{true, false} {
		conn, algo := probe(v.Connection, full), probe(v.Algorithm, full)
		if _, err := v.NewDBConfig(conn); isDefinition(err) {
			return fmt.Errorf("variant %s connection config: %w", v.Name, err)
		}
		if _, err := v.NewIndexConfig(algo); isDefinition(err) {
			return fmt.Errorf("variant %s index config: %w", v.Name, err)
		}
	}
	return nil
}

// probe builds a well-typed mapping for set. With full unset only required
// and defaulted fields are present, the smallest mapping a command accepts.
func probe(set field.Set, full bool) field.Values {
	m := make(map[string]any, set.Len())
	for _, d := range set.Fields() {
		switch {
		case d.Default != nil:
			m[d.Name] = d.Default
		case !full && !d.Required:
		case len(d.Choices) > 0:
			m[d.Name] = d.Choices[0]
		default:
			m[d.Name] = zero(d.Kind)
		}
	}
	return field.NewValues(m)
}

func zero(k field.Kind) any {
	switch k {
	case field.Int:
		return 0
	case field.Float:
		return 0.0
	case field.Bool:
		return false
	default:
		return ""
	}
}

func isDefinition(err error) bool {
	var de *apperr.DefinitionError
	return errors.As(err, &de)
}
