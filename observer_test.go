package statemachine

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoggingObserverLogsTransitions(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	machine := doorSchema().NewMachine(&door{})
	machine.AddObserver(NewLoggingObserver[doorState, doorEvent](logger.With("machine", machine.ID())))

	machine.HandleEvent(openDoor)

	out := buf.String()
	assert.Contains(t, out, "transition")
	assert.Contains(t, out, "from=0")
	assert.Contains(t, out, "to=1")
	assert.Contains(t, out, machine.ID().String())
}

func TestLoggingObserverNilLoggerUsesDefault(t *testing.T) {
	observer := NewLoggingObserver[string, string](nil)

	assert.NotNil(t, observer)
	assert.NotPanics(t, func() {
		observer.OnTransition("a", "go", "b")
	})
}
