package gpiotest

import (
	"github.com/xanderflood/pinmock/pkg/gpio"
)

//Mode how a MockPin treats the transactions it sees
type Mode int

const (
	//Enforcing replay a fixed script and check every transaction against it
	Enforcing Mode = iota

	//Monitor record every write for later rendering
	Monitor
)

func (m Mode) String() string {
	if m == Monitor {
		return "monitor"
	}
	return "enforcing"
}

//MockPin a scripted or recording stand-in for a single GPIO line.
//
//In Enforcing mode reads and writes draw from one shared cursor, so the
//script must list every expected value in the order the driver under test
//will write or read it. A write past the end of the script or a write that
//disagrees with the script is fatal. A read past the end is reported but
//returns the last value read, so poll loops still terminate.
//
//In Monitor mode writes are appended to the sequence and never fail; Render
//turns the capture into an Enforcing constructor call.
type MockPin struct {
	reporter Reporter
	label    string
	mode     Mode

	sequence []bool
	cursor   int
	last     bool

	violations []error
}

var (
	_ gpio.Pin      = &MockPin{}
	_ gpio.LevelPin = &MockPin{}
)

//NewMockPin creates an Enforcing pin that expects exactly `sequence`
func NewMockPin(r Reporter, label string, sequence []bool) *MockPin {
	return &MockPin{
		reporter: r,
		label:    label,
		mode:     Enforcing,
		sequence: append([]bool{}, sequence...),
	}
}

//NewMonitorPin creates a Monitor pin with nothing recorded
func NewMonitorPin(r Reporter, label string) *MockPin {
	return &MockPin{
		reporter: r,
		label:    label,
		mode:     Monitor,
		sequence: []bool{},
	}
}

//Label display name used in diagnostics
func (p *MockPin) Label() string { return p.label }

//Mode the mode fixed at construction
func (p *MockPin) Mode() Mode { return p.mode }

//Cursor number of script slots consumed so far
func (p *MockPin) Cursor() int { return p.cursor }

//Sequence a copy of the script, or of the capture in Monitor mode
func (p *MockPin) Sequence() []bool {
	return append([]bool{}, p.sequence...)
}

//Remaining unconsumed script slots
func (p *MockPin) Remaining() int {
	if p.cursor >= len(p.sequence) {
		return 0
	}
	return len(p.sequence) - p.cursor
}

//Done reports whether the script has been fully consumed. Monitor pins are
//always done.
func (p *MockPin) Done() bool {
	return p.mode == Monitor || p.cursor >= len(p.sequence)
}

//AssertDone reports a non-fatal violation if scripted slots were never used
func (p *MockPin) AssertDone() {
	p.helper()
	if p.Done() {
		return
	}
	p.report(&Violation{
		Label:  p.label,
		Op:     OpDone,
		Index:  p.cursor,
		Length: len(p.sequence),
		err:    ErrSequenceUnconsumed,
	})
}

//Violations every violation reported so far, oldest first
func (p *MockPin) Violations() []error {
	return append([]error{}, p.violations...)
}

//Output switches the line to output. It consumes no script slot.
func (p *MockPin) Output() {}

//Input switches the line to input. It consumes no script slot.
func (p *MockPin) Input() {}

//Low drives the line low
func (p *MockPin) Low() {
	p.helper()
	p.write(false)
}

//High drives the line high
func (p *MockPin) High() {
	p.helper()
	p.write(true)
}

func (p *MockPin) write(v bool) {
	p.helper()
	if p.mode == Monitor {
		p.sequence = append(p.sequence, v)
		return
	}

	p.cursor++
	if p.cursor > len(p.sequence) {
		p.report(&Violation{
			Label: p.label,
			Op:    OpWrite,
			Index: p.cursor,
			Got:   v,
			Fatal: true,
			err:   ErrSequenceExhausted,
		})
		return
	}

	if expected := p.sequence[p.cursor-1]; expected != v {
		p.report(&Violation{
			Label:    p.label,
			Op:       OpWrite,
			Index:    p.cursor,
			Expected: expected,
			Got:      v,
			Fatal:    true,
			err:      ErrValueMismatch,
		})
	}
}

//IsHigh consumes the next script slot and returns it
func (p *MockPin) IsHigh() bool {
	p.helper()
	p.cursor++
	if p.cursor > len(p.sequence) {
		p.report(&Violation{
			Label: p.label,
			Op:    OpRead,
			Index: p.cursor,
			Got:   p.last,
			err:   ErrSequenceExhausted,
		})
		return p.last
	}

	p.last = p.sequence[p.cursor-1]
	return p.last
}

//IsLow consumes the next script slot and returns its negation
func (p *MockPin) IsLow() bool {
	p.helper()
	return !p.IsHigh()
}

//Read consumes the next script slot as a pin state
func (p *MockPin) Read() gpio.State {
	p.helper()
	return gpio.FromBool(p.IsHigh())
}

func (p *MockPin) report(v *Violation) {
	p.helper()
	p.violations = append(p.violations, v)

	r := p.reporter
	if r == nil {
		r = PanicReporter{}
	}
	if v.Fatal {
		r.Fatalf("%v", v)
	} else {
		r.Errorf("%v", v)
	}
}

func (p *MockPin) helper() {
	if h, ok := p.reporter.(interface{ Helper() }); ok {
		h.Helper()
	}
}
