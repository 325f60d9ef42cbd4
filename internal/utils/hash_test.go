package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDocumentETag(t *testing.T) {
	a := DocumentETag([]byte(`{"initialBalance":0,"transactions":[]}`))
	b := DocumentETag([]byte(`{"initialBalance":0,"transactions":[]}`))
	c := DocumentETag([]byte(`{"initialBalance":1,"transactions":[]}`))

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Len(t, a, 64+2)
	assert.Equal(t, byte('"'), a[0])
	assert.Equal(t, byte('"'), a[len(a)-1])
	// sha256 of the empty input
	assert.Equal(t, `"e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"`, DocumentETag(nil))
}

func TestETagMatches(t *testing.T) {
	const etag = `"abc"`

	tests := []struct {
		name   string
		header string
		want   bool
	}{
		{name: "exact", header: `"abc"`, want: true},
		{name: "wildcard", header: `*`, want: true},
		{name: "weak", header: `W/"abc"`, want: true},
		{name: "in list", header: `"x", "abc" , "y"`, want: true},
		{name: "other", header: `"abd"`, want: false},
		{name: "unquoted", header: `abc`, want: false},
		{name: "empty", header: ``, want: false},
		{name: "only separators", header: ` , ,`, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ETagMatches(tt.header, etag))
		})
	}
}
