package field

import (
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/Caroline-an777/VectorDBBench-0208/internal/apperr"
	"github.com/Caroline-an777/VectorDBBench-0208/pkg/secret"
)

const tagName = "param"

var secretType = reflect.TypeOf(secret.Value{})

type target struct {
	name     string
	optional bool
	value    reflect.Value
	goName   string
}

// Decode binds vals onto the struct pointed to by out using `param` tags:
//
//	M   int      `param:"m"`
//	Ref *float64 `param:"refine_ratio"`
//	Lbl string   `param:"db_label,optional"`
//
// Absent parameters leave pointer fields nil, secret.Value fields at
// secret.None and optional fields at their zero value. A parameter without a
// matching field, or a mandatory field without a parameter, means the field
// set and the struct disagree; Decode reports that as a DefinitionError.
func Decode(vals Values, out any) error {
	rv := reflect.ValueOf(out)
	if rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return apperr.NewDefinition("decode target must be a non-nil struct pointer, got %T", out)
	}
	typeName := rv.Elem().Type().String()

	targets := make(map[string]target)
	if err := collectTargets(rv.Elem(), targets); err != nil {
		return apperr.NewDefinitionWrap("decode "+typeName, err)
	}

	for _, name := range vals.Names() {
		if _, ok := targets[name]; !ok {
			return apperr.NewDefinition("decode %s: parameter %q has no field", typeName, name)
		}
	}

	names := make([]string, 0, len(targets))
	for name := range targets {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		t := targets[name]
		if !vals.Has(name) {
			if t.optional || t.value.Kind() == reflect.Pointer || t.value.Type() == secretType {
				continue
			}
			return apperr.NewDefinition("decode %s: field %s requires parameter %q", typeName, t.goName, name)
		}
		if err := assign(t.value, vals, name); err != nil {
			return apperr.NewDefinitionWrap(fmt.Sprintf("decode %s.%s", typeName, t.goName), err)
		}
	}
	return nil
}

func collectTargets(sv reflect.Value, targets map[string]target) error {
	st := sv.Type()
	for i := 0; i < st.NumField(); i++ {
		sf := st.Field(i)
		fv := sv.Field(i)

		tag, hasTag := sf.Tag.Lookup(tagName)
		if !hasTag {
			if sf.Anonymous && sf.Type.Kind() == reflect.Struct {
				if err := collectTargets(fv, targets); err != nil {
					return err
				}
			}
			continue
		}
		if !sf.IsExported() {
			return fmt.Errorf("field %s is tagged but unexported", sf.Name)
		}

		parts := strings.Split(tag, ",")
		name := parts[0]
		if name == "" {
			return fmt.Errorf("field %s has an empty %s tag", sf.Name, tagName)
		}
		if prev, dup := targets[name]; dup {
			return fmt.Errorf("parameter %q bound to both %s and %s", name, prev.goName, sf.Name)
		}
		t := target{name: name, value: fv, goName: sf.Name}
		for _, opt := range parts[1:] {
			if opt == "optional" {
				t.optional = true
			}
		}
		targets[name] = t
	}
	return nil
}

// assign sets field from the typed accessor matching its kind.
func assign(field reflect.Value, vals Values, name string) error {
	if field.Type() == secretType {
		s, err := vals.String(name)
		if err != nil {
			return err
		}
		field.Set(reflect.ValueOf(secret.New(s)))
		return nil
	}

	switch field.Kind() {
	case reflect.Pointer:
		ptr := reflect.New(field.Type().Elem())
		if err := assign(ptr.Elem(), vals, name); err != nil {
			return err
		}
		field.Set(ptr)
	case reflect.String:
		s, err := vals.String(name)
		if err != nil {
			return err
		}
		field.SetString(s)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i, err := vals.Int(name)
		if err != nil {
			return err
		}
		field.SetInt(int64(i))
	case reflect.Float32, reflect.Float64:
		f, err := vals.Float(name)
		if err != nil {
			return err
		}
		field.SetFloat(f)
	case reflect.Bool:
		b, err := vals.Bool(name)
		if err != nil {
			return err
		}
		field.SetBool(b)
	default:
		return fmt.Errorf("unsupported field kind %s", field.Kind())
	}
	return nil
}
