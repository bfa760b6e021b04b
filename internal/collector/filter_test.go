package collector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/livp123/grouplog/pkg/errors"
)

func TestCompileFilter(t *testing.T) {
	f, err := CompileFilter("   ")
	require.NoError(t, err)
	assert.Nil(t, f)

	ok, err := f.Allow(Entry{})
	require.NoError(t, err)
	assert.True(t, ok, "nil filter accepts everything")

	_, err = CompileFilter(`group ==`)
	assert.ErrorIs(t, err, errs.ErrInvalidFilter)

	_, err = CompileFilter(`len(group)`)
	assert.ErrorIs(t, err, errs.ErrInvalidFilter, "non-boolean expressions are rejected")
}

func TestFilterAllow(t *testing.T) {
	f, err := CompileFilter(`group != "Spam" && text != "" && timestamp > 0`)
	require.NoError(t, err)
	assert.Equal(t, `group != "Spam" && text != "" && timestamp > 0`, f.String())

	tests := []struct {
		name  string
		entry Entry
		want  bool
	}{
		{"accepted", Entry{Group: Field{"Family", true}, Text: Field{"hi", true}, Timestamp: Field{"1700000000", true}}, true},
		{"blocked group", Entry{Group: Field{"Spam", true}, Text: Field{"hi", true}, Timestamp: Field{"1", true}}, false},
		{"missing text", Entry{Group: Field{"Family", true}, Timestamp: Field{"1", true}}, false},
		{"missing timestamp", Entry{Group: Field{"Family", true}, Text: Field{"hi", true}}, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ok, err := f.Allow(tc.entry)
			require.NoError(t, err)
			assert.Equal(t, tc.want, ok)
		})
	}
}
