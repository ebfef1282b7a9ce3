package eventual

import "fmt"

// systemUnderTest is the motivating example system: a few named fields
// that events overwrite.
type systemUnderTest struct {
	A string
	B string
	C string
}

// setField is the synthetic event type: set one named field to a value.
type setField struct {
	field string
	value string
}

func setA(v string) setField { return setField{field: "a", value: v} }
func setB(v string) setField { return setField{field: "b", value: v} }
func setC(v string) setField { return setField{field: "c", value: v} }

// resolveSet maps setField events to real changes in the system.
func resolveSet(event setField, system systemUnderTest) systemUnderTest {
	switch event.field {
	case "a":
		system.A = event.value
	case "b":
		system.B = event.value
	case "c":
		system.C = event.value
	}
	return system
}

// failOnC resolves like resolveSet except that setting C always fails.
func failOnC(event setField, system systemUnderTest) (systemUnderTest, error) {
	if event.field == "c" {
		return systemUnderTest{}, fmt.Errorf("could not set C to %s", event.value)
	}
	return resolveSet(event, system), nil
}

func zeroSystem() systemUnderTest {
	return systemUnderTest{}
}

// reversed is a test-local ordering strategy; the library deliberately
// ships none beyond Identity.
func reversed(events []setField) []setField {
	out := make([]setField, len(events))
	for i, event := range events {
		out[len(events)-1-i] = event
	}
	return out
}

// swapFirstTwo swaps the first two events, leaving the rest in place.
func swapFirstTwo(events []setField) []setField {
	if len(events) < 2 {
		return events
	}
	out := make([]setField, len(events))
	copy(out, events)
	out[0], out[1] = out[1], out[0]
	return out
}
