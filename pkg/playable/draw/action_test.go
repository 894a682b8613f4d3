package draw

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromString(t *testing.T) {
	for _, s := range []string{"check", "bet", "call", "raise", "fold"} {
		action, err := FromString(s)
		assert.NoError(t, err)
		assert.Equal(t, Action(s), action)
		assert.True(t, action.IsValid())
	}

	action, err := FromString("shrug")
	assert.Equal(t, Action(""), action)
	assert.EqualError(t, err, "unknown action for identifier: shrug")
	assert.False(t, Action("shrug").IsValid())
}

func TestAction_String(t *testing.T) {
	assert.Equal(t, "Check", Check.String())
	assert.Equal(t, "Bet", Bet.String())
	assert.Equal(t, "Call", Call.String())
	assert.Equal(t, "Raise", Raise.String())
	assert.Equal(t, "Fold", Fold.String())
	assert.Panics(t, func() {
		_ = Action("shrug").String()
	})
}

func TestAction_LogMessage(t *testing.T) {
	assert.Equal(t, "checked", Check.LogMessage(0))
	assert.Equal(t, "bet ${100}", Bet.LogMessage(100))
	assert.Equal(t, "called ${100}", Call.LogMessage(100))
	assert.Equal(t, "raised to ${200}", Raise.LogMessage(200))
	assert.Equal(t, "folded", Fold.LogMessage(0))
}
