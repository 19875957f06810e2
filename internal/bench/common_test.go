package bench

import (
	"errors"
	"testing"
	"time"

	"github.com/Caroline-an777/VectorDBBench-0208/internal/apperr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCommon(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	set := NewCommon(now)

	d, ok := set.Get("db_label")
	require.True(t, ok)
	assert.Equal(t, "2026-03-01T12:00:00Z", d.Default)

	d, ok = set.Get("case_type")
	require.True(t, ok)
	assert.Contains(t, d.Choices, d.Default)

	for _, name := range []string{"drop_old", "load", "search_serial", "search_concurrent", "dry_run"} {
		d, _ := set.Get(name)
		assert.True(t, d.Flag, name)
	}
}

func TestParseConcurrency(t *testing.T) {
	tests := []struct {
		in      string
		want    []int
		wantErr bool
	}{
		{in: "1", want: []int{1}},
		{in: "1, 5 ,10", want: []int{1, 5, 10}},
		{in: "1,,2,", want: []int{1, 2}},
		{in: "", wantErr: true},
		{in: "0", wantErr: true},
		{in: "1,two", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseConcurrency(tt.in)
			if tt.wantErr {
				var ie *apperr.InvalidOptionError
				assert.True(t, errors.As(err, &ie))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCommonParams_Check(t *testing.T) {
	p := CommonParams{K: 10, ConcurrencyDuration: 30, NumConcurrency: "1,2"}
	levels, err := p.Check()
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, levels)

	p.K = 0
	_, err = p.Check()
	assert.ErrorContains(t, err, "--k")

	p.K, p.ConcurrencyDuration = 10, 0
	_, err = p.Check()
	assert.ErrorContains(t, err, "--concurrency-duration")
}

func TestCommonParams_Stages(t *testing.T) {
	assert.Empty(t, CommonParams{}.Stages())
	assert.Equal(t, []string{"drop_old", "search_concurrent"}, CommonParams{DropOld: true, SearchConcurrent: true}.Stages())
}
