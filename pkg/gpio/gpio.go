package gpio

import (
	"fmt"
	"strings"

	rpio "github.com/stianeikeland/go-rpio"
)

//State IO pin state
type State = rpio.State

//States state names
var States = map[State]string{
	Low:  "low",
	High: "high",
}

const (
	//Low signal
	Low = rpio.Low

	//High signal
	High = rpio.High
)

//ParseState parse a state from a string
func ParseState(s string) (State, error) {
	if strings.ToLower(s) == States[Low] {
		return Low, nil
	} else if strings.ToLower(s) == States[High] {
		return High, nil
	}
	return State(0), fmt.Errorf("unexpected string %s, expected HIGH or LOW", s)
}

//FromBool converts a logic value into a pin state
func FromBool(high bool) State {
	if high {
		return High
	}
	return Low
}

//ParseSequence parses a comma or whitespace separated list of levels. Each
//token is one of high/low, 1/0 or true/false.
func ParseSequence(s string) ([]bool, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})

	seq := make([]bool, 0, len(fields))
	for i, f := range fields {
		switch strings.ToLower(f) {
		case "1", "true":
			seq = append(seq, true)
		case "0", "false":
			seq = append(seq, false)
		default:
			state, err := ParseState(f)
			if err != nil {
				return nil, fmt.Errorf("bad level at position %d: %w", i+1, err)
			}
			seq = append(seq, state == High)
		}
	}
	return seq, nil
}

//OutputPin minimal interface for a GPIO pin
//go:generate counterfeiter . OutputPin
type OutputPin interface {
	Output()
	High()
	Low()
}

//InputPin minimal interface for a GPIO pin
//go:generate counterfeiter . InputPin
type InputPin interface {
	Input()
	Read() State
}

//LevelPin reads a pin as a logic value
//go:generate counterfeiter . LevelPin
type LevelPin interface {
	IsHigh() bool
	IsLow() bool
}

//Pin minimal interface for a GPIO pin
//go:generate counterfeiter . Pin
type Pin interface {
	OutputPin
	InputPin
}

//Set sets the state of the pin
func Set(pin OutputPin, high bool) {
	pin.Output()
	if high {
		pin.High()
	} else {
		pin.Low()
	}
}

//PollUntil reads the pin until it reports `want`, giving up after maxPolls
//reads. It returns the number of reads that did not match.
func PollUntil(pin InputPin, want State, maxPolls int) (polls int, ok bool) {
	pin.Input()
	for polls < maxPolls {
		if pin.Read() == want {
			ok = true
			return
		}
		polls++
	}
	return
}
