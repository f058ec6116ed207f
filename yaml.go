package statemachine

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

type yamlTransition struct {
	From  string `yaml:"from"`
	Event string `yaml:"event"`
	To    string `yaml:"to"`
}

type yamlSchema struct {
	Initial     string           `yaml:"initial"`
	Transitions []yamlTransition `yaml:"transitions"`
}

// LoadYAMLSchema builds a string-typed schema from a YAML document of
// the form:
//
//	initial: locked
//	transitions:
//	  - {from: locked, event: coin, to: unlocked}
//	  - {from: unlocked, event: push, to: locked}
//
// Transition blocks cannot be expressed declaratively; attach side
// effects through the machine's OnTransition callback or an observer,
// or build the schema with SchemaBuilder instead.
func LoadYAMLSchema[T any](data []byte) (*SchemaDefinition[string, string, T], error) {
	var doc yamlSchema
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse schema definition: %w", err)
	}

	if doc.Initial == "" {
		return nil, NewDefinitionError("initial", "initial state is required")
	}

	builder := NewSchemaBuilder[string, string, T](doc.Initial)
	for i, transition := range doc.Transitions {
		switch {
		case transition.From == "":
			return nil, NewDefinitionError(fmt.Sprintf("transitions[%d].from", i), "source state is required")
		case transition.Event == "":
			return nil, NewDefinitionError(fmt.Sprintf("transitions[%d].event", i), "event is required")
		case transition.To == "":
			return nil, NewDefinitionError(fmt.Sprintf("transitions[%d].to", i), "target state is required")
		}
		builder.Permit(transition.From, transition.Event, transition.To)
	}

	return builder.Build(), nil
}
