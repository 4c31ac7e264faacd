package uuid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	a := New()
	b := New()

	assert.True(t, IsValid(a))
	assert.NotEqual(t, a, b)
	assert.Equal(t, byte('7'), a[14], "expected version 7 in %s", a)
}

func TestParse(t *testing.T) {
	got, err := Parse("0190A6E2-7C1B-7D4E-9F00-000000000001")
	require.NoError(t, err)
	assert.Equal(t, "0190a6e2-7c1b-7d4e-9f00-000000000001", got)

	_, err = Parse("not-a-uuid")
	assert.Error(t, err)
	assert.False(t, IsValid("12345"))
}
