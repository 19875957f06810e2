package engine

import (
	"fmt"
	"strings"
)

// Spec selects an engine, written as "<type>:<target>":
//
//	exec:python -m vectordb_bench.run
//	api:http://localhost:8080
type Spec struct {
	Type   string
	Target string
}

func ParseSpec(s string) (Spec, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Spec{}, nil
	}
	typ, target, ok := strings.Cut(s, ":")
	if !ok || strings.TrimSpace(target) == "" {
		return Spec{}, fmt.Errorf("engine %q: expected <type>:<target>", s)
	}
	return Spec{Type: typ, Target: strings.TrimSpace(target)}, nil
}

// Create builds the engine for spec. An empty spec yields a nil engine:
// tasks are planned but not executed.
func Create(spec Spec) (Engine, error) {
	switch spec.Type {
	case "":
		return nil, nil

	case "exec":
		argv := strings.Fields(spec.Target)
		return NewExecExecutor("exec", argv[0], argv[1:]...), nil

	case "api":
		if !strings.HasPrefix(spec.Target, "http://") && !strings.HasPrefix(spec.Target, "https://") {
			return nil, fmt.Errorf("api engine needs an http(s) URL, got %q", spec.Target)
		}
		return NewAPIExecutor("api", spec.Target), nil

	default:
		return nil, fmt.Errorf("unsupported engine type %q", spec.Type)
	}
}
