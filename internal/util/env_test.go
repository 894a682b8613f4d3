package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetenv(t *testing.T) {
	assert.Equal(t, "fallback", Getenv("DRAWPOKER_TEST_UNSET", "fallback"))

	t.Setenv("DRAWPOKER_TEST_SET", "value")
	assert.Equal(t, "value", Getenv("DRAWPOKER_TEST_SET", "fallback"))
}
