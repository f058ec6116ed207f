package statemachine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadYAMLSchema(t *testing.T) {
	doc := []byte(`
initial: locked
transitions:
  - {from: locked, event: coin, to: unlocked}
  - {from: unlocked, event: push, to: locked}
`)

	schema, err := LoadYAMLSchema[struct{}](doc)
	require.NoError(t, err)
	require.Equal(t, "locked", schema.InitialState())

	machine := schema.NewMachine(struct{}{})
	machine.HandleEvent("coin")
	assert.Equal(t, "unlocked", machine.State())

	machine.HandleEvent("coin")
	assert.Equal(t, "unlocked", machine.State())

	machine.HandleEvent("push")
	assert.Equal(t, "locked", machine.State())
}

func TestLoadYAMLSchemaMissingInitial(t *testing.T) {
	doc := []byte(`
transitions:
  - {from: a, event: go, to: b}
`)

	_, err := LoadYAMLSchema[struct{}](doc)
	require.Error(t, err)

	var defErr *DefinitionError
	require.ErrorAs(t, err, &defErr)
	assert.Equal(t, "initial", defErr.Field)
}

func TestLoadYAMLSchemaIncompleteTransition(t *testing.T) {
	tests := []struct {
		name  string
		doc   string
		field string
	}{
		{
			name:  "missing from",
			doc:   "initial: a\ntransitions:\n  - {event: go, to: b}\n",
			field: "transitions[0].from",
		},
		{
			name:  "missing event",
			doc:   "initial: a\ntransitions:\n  - {from: a, to: b}\n",
			field: "transitions[0].event",
		},
		{
			name:  "missing to",
			doc:   "initial: a\ntransitions:\n  - {from: a, event: go}\n",
			field: "transitions[0].to",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadYAMLSchema[struct{}]([]byte(tt.doc))
			require.Error(t, err)

			var defErr *DefinitionError
			require.ErrorAs(t, err, &defErr)
			assert.Equal(t, tt.field, defErr.Field)
		})
	}
}

func TestLoadYAMLSchemaMalformedDocument(t *testing.T) {
	_, err := LoadYAMLSchema[struct{}]([]byte("initial: [unterminated"))

	assert.Error(t, err)
}
