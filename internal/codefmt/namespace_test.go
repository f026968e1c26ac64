package codefmt

import (
	"iter"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisambiguate(t *testing.T) {
	pull, stop := iter.Pull(DisambiguateName("example"))
	defer stop()

	var name string
	var more bool

	name, more = pull()
	assert.Equal(t, "example", name)
	assert.True(t, more)

	name, more = pull()
	assert.Equal(t, "example2", name)
	assert.True(t, more)

	name, more = pull()
	assert.Equal(t, "example3", name)
	assert.True(t, more)
}

func TestDisambiguateNumSuffix(t *testing.T) {
	pull, stop := iter.Pull(DisambiguateName("answer42"))
	defer stop()

	var name string

	name, _ = pull()
	assert.Equal(t, "answer42", name)

	name, _ = pull()
	assert.Equal(t, "answer42_2", name)
}

func TestNSName(t *testing.T) {
	ns := make(NS)
	assert.Equal(t, "u", ns.Name("u"))
	assert.Equal(t, "u2", ns.Name("u"))
	assert.Equal(t, "u3", ns.Name("u"))
}

func TestNSReserve(t *testing.T) {
	ns := make(NS)
	assert.True(t, ns.Reserve("value"))
	assert.False(t, ns.Reserve("value"))
	assert.Equal(t, "value2", ns.Name("value"))
}

func TestNSKeyword(t *testing.T) {
	ns := make(NS)
	assert.Equal(t, "type", ns.Name("type"))
	assert.Equal(t, "type", ns.Name("type"))
}

func TestNormalizeName(t *testing.T) {
	assert.Equal(t, "fooBar", NormalizeName("foo-bar"))
	assert.Equal(t, "userID", NormalizeName("userID"))
}
