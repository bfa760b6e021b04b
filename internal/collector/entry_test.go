package collector

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeEntry(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    Entry
		wantErr bool
	}{
		{
			name: "complete payload",
			body: `{"group":"Family","from":"Alice","text":"Hello","timestamp":1700000000}`,
			want: Entry{
				Group:     Field{"Family", true},
				From:      Field{"Alice", true},
				Text:      Field{"Hello", true},
				Timestamp: Field{"1700000000", true},
			},
		},
		{
			name: "missing and null fields",
			body: `{"group":"Family","text":null}`,
			want: Entry{Group: Field{"Family", true}},
		},
		{
			name: "non-string values keep their JSON text",
			body: `{"group":42,"from":true,"text":{ "a" : [1, 2] }}`,
			want: Entry{
				Group: Field{"42", true},
				From:  Field{"true", true},
				Text:  Field{`{"a":[1,2]}`, true},
			},
		},
		{
			name: "unknown fields are ignored",
			body: `{"group":"g","extra":"x"}`,
			want: Entry{Group: Field{"g", true}},
		},
		{
			name: "empty body",
			body: "  \n",
			want: Entry{},
		},
		{
			name: "keys are case sensitive",
			body: `{"GROUP":"Family","From":"Alice","text":"Hello"}`,
			want: Entry{Text: Field{"Hello", true}},
		},
		{name: "array", body: `["a"]`, want: Entry{}},
		{name: "bare string", body: `"hi"`, want: Entry{}},
		{name: "not json", body: "{bad json", wantErr: true},
		{name: "truncated value", body: `{"group":"Fam`, wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := DecodeEntry(strings.NewReader(tc.body))
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestFieldFloat(t *testing.T) {
	v, ok := Field{"1700000000.5", true}.Float()
	assert.True(t, ok)
	assert.Equal(t, 1700000000.5, v)

	_, ok = Field{"soon", true}.Float()
	assert.False(t, ok)

	_, ok = Field{}.Float()
	assert.False(t, ok)
}

func TestFormat(t *testing.T) {
	full := Entry{Group: Field{"Family", true}, From: Field{"Alice", true}, Text: Field{"Hello", true}}
	assert.Equal(t, "Family | Alice: Hello", Format(full, "undefined"))

	missingFrom := Entry{Group: Field{"Family", true}, Text: Field{"Hello", true}}
	assert.Equal(t, "Family | undefined: Hello", Format(missingFrom, "undefined"))
	assert.Equal(t, "Family | : Hello", Format(missingFrom, ""))

	// Delimiters are not escaped
	// 分隔符不做转义
	ambiguous := Entry{Group: Field{"A | B", true}, From: Field{"x: y", true}, Text: Field{"t", true}}
	assert.Equal(t, "A | B | x: y: t", Format(ambiguous, "undefined"))

	assert.Equal(t, "undefined | undefined: undefined", Format(Entry{}, "undefined"))
}
