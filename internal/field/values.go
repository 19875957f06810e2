package field

import (
	"fmt"
	"sort"
)

// Values is the parsed parameter mapping of one invocation. Absent optional
// parameters have no entry; it is never mutated after construction.
type Values struct {
	m map[string]any
}

func NewValues(m map[string]any) Values {
	cp := make(map[string]any, len(m))
	for k, v := range m {
		cp[k] = v
	}
	return Values{m: cp}
}

func (v Values) Has(name string) bool {
	_, ok := v.m[name]
	return ok
}

func (v Values) Get(name string) (any, bool) {
	val, ok := v.m[name]
	return val, ok
}

func (v Values) Len() int { return len(v.m) }

// Names returns the present parameter names, sorted.
func (v Values) Names() []string {
	names := make([]string, 0, len(v.m))
	for k := range v.m {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Subset keeps only the parameters declared by s.
func (v Values) Subset(s Set) Values {
	out := make(map[string]any, s.Len())
	for _, name := range s.Names() {
		if val, ok := v.m[name]; ok {
			out[name] = val
		}
	}
	return Values{m: out}
}

func (v Values) String(name string) (string, error) {
	val, err := v.lookup(name)
	if err != nil {
		return "", err
	}
	s, ok := val.(string)
	if !ok {
		return "", fmt.Errorf("parameter %q is %T, not string", name, val)
	}
	return s, nil
}

func (v Values) Int(name string) (int, error) {
	val, err := v.lookup(name)
	if err != nil {
		return 0, err
	}
	i, ok := val.(int)
	if !ok {
		return 0, fmt.Errorf("parameter %q is %T, not int", name, val)
	}
	return i, nil
}

func (v Values) Float(name string) (float64, error) {
	val, err := v.lookup(name)
	if err != nil {
		return 0, err
	}
	f, ok := val.(float64)
	if !ok {
		return 0, fmt.Errorf("parameter %q is %T, not float", name, val)
	}
	return f, nil
}

func (v Values) Bool(name string) (bool, error) {
	val, err := v.lookup(name)
	if err != nil {
		return false, err
	}
	b, ok := val.(bool)
	if !ok {
		return false, fmt.Errorf("parameter %q is %T, not bool", name, val)
	}
	return b, nil
}

func (v Values) lookup(name string) (any, error) {
	val, ok := v.m[name]
	if !ok {
		return nil, fmt.Errorf("parameter %q is not set", name)
	}
	return val, nil
}
