package apperr_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/Caroline-an777/VectorDBBench-0208/internal/apperr"
)

func TestNewDefinition(t *testing.T) {
	err := apperr.NewDefinition("duplicate command %q", "MilvusHNSW")

	if err.Error() != `definition error: duplicate command "MilvusHNSW"` {
		t.Errorf("unexpected message %q", err.Error())
	}
	if err.Unwrap() != nil {
		t.Errorf("expected nil unwrap, got %v", err.Unwrap())
	}
}

func TestNewDefinitionWrap(t *testing.T) {
	inner := fmt.Errorf("no field for key")
	err := apperr.NewDefinitionWrap("decode HNSWConfig", inner)

	if err.Error() != "definition error: decode HNSWConfig: no field for key" {
		t.Errorf("unexpected message %q", err.Error())
	}
	if !errors.Is(err, inner) {
		t.Error("expected Unwrap to return inner error")
	}
}

func TestInvalidOption_SurvivesFmtWrapping(t *testing.T) {
	original := apperr.NewInvalidOption("refine-type", `"XX" is not one of SQ6, SQ8`)

	wrapped := fmt.Errorf("parse MilvusHNSWPQ: %w", original)
	doubleWrapped := fmt.Errorf("invoke: %w", wrapped)

	var ie *apperr.InvalidOptionError
	if !errors.As(doubleWrapped, &ie) {
		t.Fatal("errors.As should find InvalidOptionError through double wrapping")
	}
	if ie.Option != "refine-type" {
		t.Errorf("expected option refine-type, got %q", ie.Option)
	}
}

func TestConfigBuildError_NamesField(t *testing.T) {
	err := apperr.NewConfigBuild("num_shards", "must be at least 1")

	if err.Error() != "num_shards: must be at least 1" {
		t.Errorf("unexpected message %q", err.Error())
	}
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, apperr.ExitOK},
		{"definition", apperr.NewDefinition("dup"), apperr.ExitUsage},
		{"invalid option", fmt.Errorf("wrap: %w", apperr.NewInvalidOption("m", "bad")), apperr.ExitUsage},
		{"config build", apperr.NewConfigBuild("uri", "empty"), apperr.ExitFailure},
		{"plain", errors.New("engine crashed"), apperr.ExitFailure},
		{"engine status", fmt.Errorf("run: %w", statusErr(3)), 3},
		{"signaled engine", statusErr(-1), apperr.ExitFailure},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := apperr.ExitCode(tt.err); got != tt.want {
				t.Errorf("ExitCode() = %d, want %d", got, tt.want)
			}
		})
	}
}

type statusErr int

func (e statusErr) Error() string { return fmt.Sprintf("exit status %d", int(e)) }

func (e statusErr) ExitCode() int { return int(e) }
