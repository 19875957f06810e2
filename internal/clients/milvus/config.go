package milvus

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/Caroline-an777/VectorDBBench-0208/internal/apperr"
	"github.com/Caroline-an777/VectorDBBench-0208/internal/bench"
	"github.com/Caroline-an777/VectorDBBench-0208/internal/field"
	"github.com/Caroline-an777/VectorDBBench-0208/pkg/secret"
)

const (
	EnvURI      = "MILVUS_URI"
	EnvUser     = "MILVUS_USER_NAME"
	EnvPassword = "MILVUS_PASSWORD"
)

// Config describes how to reach a Milvus deployment. An absent password is
// secret.None, never an empty secret.
type Config struct {
	URI       secret.Value `param:"uri" json:"uri"`
	User      *string      `param:"user_name" json:"user,omitempty"`
	Password  secret.Value `param:"password" json:"password"`
	NumShards int          `param:"num_shards" json:"num_shards"`
}

func NewConfig(vals field.Values) (bench.DBConfig, error) {
	var c Config
	if err := field.Decode(vals, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Config) Validate() error {
	if uri, _ := c.URI.Reveal(); strings.TrimSpace(uri) == "" {
		return apperr.NewConfigBuild("uri", "must not be empty")
	}
	if c.NumShards < 1 {
		return apperr.NewConfigBuild("num_shards", fmt.Sprintf("must be at least 1, got %d", c.NumShards))
	}
	return nil
}

func (c *Config) String() string {
	user := "<none>"
	if c.User != nil {
		user = *c.User
	}
	return fmt.Sprintf("uri=%s user=%s password=%s num_shards=%d", c.URI, user, c.Password, c.NumShards)
}

func (c *Config) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.Any("uri", c.URI),
		slog.Any("password", c.Password),
		slog.Int("num_shards", c.NumShards),
	}
	if c.User != nil {
		attrs = append(attrs, slog.String("user", *c.User))
	}
	return slog.GroupValue(attrs...)
}

// Credentials returns the plaintext connection settings under their
// environment variable names, for engines running out of process.
func (c *Config) Credentials() map[string]string {
	creds := make(map[string]string, 3)
	if uri, ok := c.URI.Reveal(); ok {
		creds[EnvURI] = uri
	}
	if c.User != nil {
		creds[EnvUser] = *c.User
	}
	if pw, ok := c.Password.Reveal(); ok {
		creds[EnvPassword] = pw
	}
	return creds
}
