package secret

import (
	"encoding/json"
	"log/slog"
)

const redacted = "**********"

// Value holds a secret string. The zero value is None: no secret was supplied,
// which is distinct from a supplied empty secret.
type Value struct {
	plain string
	set   bool
}

// None is the explicit absent sentinel.
var None = Value{}

func New(plain string) Value {
	return Value{plain: plain, set: true}
}

func (v Value) IsSet() bool { return v.set }

// Reveal returns the plaintext and whether a secret is present.
func (v Value) Reveal() (string, bool) {
	return v.plain, v.set
}

func (v Value) String() string {
	if !v.set {
		return "<none>"
	}
	return redacted
}

func (v Value) GoString() string { return v.String() }

func (v Value) LogValue() slog.Value {
	return slog.StringValue(v.String())
}

func (v Value) MarshalJSON() ([]byte, error) {
	if !v.set {
		return []byte("null"), nil
	}
	return json.Marshal(redacted)
}

var _ slog.LogValuer = Value{}
