package playable

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSimpleLogMessage(t *testing.T) {
	msg := SimpleLogMessage("dealer", "dealt %d cards", 5)
	assert.NotEmpty(t, msg.UUID)
	assert.Equal(t, []string{"dealer"}, msg.Players)
	assert.Equal(t, "dealt 5 cards", msg.Message)
	assert.False(t, msg.Time.IsZero())

	// no player means a general statement
	msg = SimpleLogMessage("", "round over")
	assert.Nil(t, msg.Players)

	msgs := SimpleLogMessageSlice("dealer", "shuffled")
	assert.Equal(t, 1, len(msgs))
	assert.Equal(t, "shuffled", msgs[0].Message)
}
