package harness

import "fmt"

// testSystem is the example system under test: named fields that events
// overwrite. Tags keep golden snapshots and YAML want clauses stable.
type testSystem struct {
	A string `json:"a" yaml:"a"`
	B string `json:"b" yaml:"b"`
	C string `json:"c" yaml:"c"`
}

// testEvent sets one named field to a value.
type testEvent struct {
	Field string `json:"field" yaml:"field"`
	Value string `json:"value" yaml:"value"`
}

func set(field, value string) testEvent {
	return testEvent{Field: field, Value: value}
}

func applyEvent(event testEvent, system testSystem) testSystem {
	switch event.Field {
	case "a":
		system.A = event.Value
	case "b":
		system.B = event.Value
	case "c":
		system.C = event.Value
	}
	return system
}

// applyEventFallible resolves like applyEvent except that setting C
// always fails.
func applyEventFallible(event testEvent, system testSystem) (testSystem, error) {
	if event.Field == "c" {
		return testSystem{}, fmt.Errorf("could not set C to %s", event.Value)
	}
	return applyEvent(event, system), nil
}
