package common

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOptional(t *testing.T) {
	assert := require.New(t)

	absent := NewOptional("foo", false)
	assert.Equal("foo", absent.Value)
	assert.False(absent.IsPresent)
	assert.Equal("[-]", absent.String())

	present := NewPresent(42)
	assert.Equal(42, present.Value)
	assert.True(present.IsPresent)
	assert.Equal("[42]", present.String())
}

func TestNewEmail(t *testing.T) {
	assert := require.New(t)

	assert.Equal(Email("test@test.test"), NewEmail("Test@Test.TEST"))
	assert.Equal(Email("test@test.test"), NewEmail("  test@test.test "))
}
