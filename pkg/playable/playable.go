package playable

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"drawpoker/pkg/deck"
)

// LogMessage is the format a game sends table-talk messages in
// If Players is empty, assume it's a general statement, otherwise the message
// will be rendered like "{player} did X, Y, Z"
type LogMessage struct {
	UUID    string       `json:"uuid"`
	Players []string     `json:"players"`
	Cards   []*deck.Card `json:"cards"`
	Message string       `json:"message"`
	Time    time.Time    `json:"time"`
}

// SimpleLogMessage returns a new LogMessage
func SimpleLogMessage(player string, format string, a ...interface{}) *LogMessage {
	var players []string
	if player != "" {
		players = []string{player}
	}

	return &LogMessage{
		UUID:    uuid.New().String(),
		Players: players,
		Message: fmt.Sprintf(format, a...),
		Time:    time.Now(),
	}
}

// SimpleLogMessageSlice returns a single log message
func SimpleLogMessageSlice(player string, format string, a ...interface{}) []*LogMessage {
	return []*LogMessage{SimpleLogMessage(player, format, a...)}
}
