package statemachine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchemaBuilderBuildsTableSchema(t *testing.T) {
	schema := NewSchemaBuilder[string, string, *door]("locked").
		Permit("locked", "coin", "unlocked").
		Permit("unlocked", "push", "locked").
		Build()

	machine := schema.NewMachine(&door{})
	require.Equal(t, "locked", machine.State())

	machine.HandleEvent("push")
	assert.Equal(t, "locked", machine.State())

	machine.HandleEvent("coin")
	assert.Equal(t, "unlocked", machine.State())

	machine.HandleEvent("push")
	assert.Equal(t, "locked", machine.State())
}

func TestSchemaBuilderPermitWithAction(t *testing.T) {
	opened := 0
	schema := NewSchemaBuilder[doorState, doorEvent, *door](doorClosed).
		PermitWithAction(doorClosed, openDoor, doorOpen, func(d *door) {
			d.openCount++
			opened++
		}).
		Build()

	subject := &door{}
	machine := schema.NewMachine(subject)
	machine.HandleEvent(openDoor)

	assert.Equal(t, doorOpen, machine.State())
	assert.Equal(t, 1, subject.openCount)
	assert.Equal(t, 1, opened)
}

func TestSchemaBuilderOverwritesDuplicatePair(t *testing.T) {
	schema := NewSchemaBuilder[string, string, struct{}]("a").
		Permit("a", "go", "b").
		Permit("a", "go", "c").
		Build()

	transition, defined := schema.Transition("a", "go")
	require.True(t, defined)
	assert.Equal(t, "c", transition.Target)
}

func TestSchemaBuilderBuildSnapshots(t *testing.T) {
	builder := NewSchemaBuilder[string, string, struct{}]("a").
		Permit("a", "go", "b")

	first := builder.Build()
	builder.Permit("b", "go", "c")
	second := builder.Build()

	_, defined := first.Transition("b", "go")
	assert.False(t, defined, "declarations made after Build must not leak into built schemas")

	_, defined = second.Transition("b", "go")
	assert.True(t, defined)
}
