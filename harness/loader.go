package harness

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// File is the on-disk YAML form of a scenario.
//
// Event payloads stay raw yaml.Node values because the event type is
// caller-defined and opaque to the harness; LoadScenario decodes them
// with the caller's decoder. The want clause is decoded into the state
// type directly.
type File struct {
	Name        string      `yaml:"name"`
	Description string      `yaml:"description"`
	Prologue    []yaml.Node `yaml:"prologue,omitempty"`
	Events      []yaml.Node `yaml:"events"`
	Epilogue    []yaml.Node `yaml:"epilogue,omitempty"`
	Want        *yaml.Node  `yaml:"want,omitempty"`
}

// LoadScenario reads and parses a scenario YAML file, decoding each
// event node with decodeEvent. Returns an error if the file doesn't
// exist, is malformed, contains unknown fields (typos), is missing
// required fields, or an event fails to decode.
func LoadScenario[S, E any](path string, decodeEvent func(node *yaml.Node) (E, error)) (*Scenario[S, E], error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	// Parse YAML with strict field validation (catches typos like
	// "event:" vs "events:")
	var file File
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&file); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	scenario := &Scenario[S, E]{
		Name:        file.Name,
		Description: file.Description,
	}

	if scenario.Prologue, err = decodeEvents(file.Prologue, decodeEvent, "prologue"); err != nil {
		return nil, err
	}
	if scenario.Events, err = decodeEvents(file.Events, decodeEvent, "events"); err != nil {
		return nil, err
	}
	if scenario.Epilogue, err = decodeEvents(file.Epilogue, decodeEvent, "epilogue"); err != nil {
		return nil, err
	}

	if file.Want != nil {
		var want S
		if err := file.Want.Decode(&want); err != nil {
			return nil, fmt.Errorf("failed to decode want clause: %w", err)
		}
		scenario.Want = &want
	}

	if err := scenario.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	return scenario, nil
}

// decodeEvents decodes one phase's event nodes in document order.
func decodeEvents[E any](nodes []yaml.Node, decode func(node *yaml.Node) (E, error), phase string) ([]E, error) {
	if len(nodes) == 0 {
		return nil, nil
	}

	events := make([]E, 0, len(nodes))
	for i := range nodes {
		event, err := decode(&nodes[i])
		if err != nil {
			return nil, fmt.Errorf("%s[%d]: %w", phase, i, err)
		}
		events = append(events, event)
	}
	return events, nil
}

// DecodeInto is a convenience event decoder for event types that decode
// directly from YAML (struct events with yaml tags). Event types with
// variant payloads should supply their own decoder instead.
func DecodeInto[E any](node *yaml.Node) (E, error) {
	var event E
	if err := node.Decode(&event); err != nil {
		var zero E
		return zero, err
	}
	return event, nil
}
