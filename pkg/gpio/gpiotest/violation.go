package gpiotest

import (
	"fmt"
	"log"

	"github.com/pkg/errors"
)

var (
	//ErrSequenceExhausted an operation ran past the end of the script
	ErrSequenceExhausted = errors.New("sequence exhausted")

	//ErrValueMismatch a write disagreed with the scripted value
	ErrValueMismatch = errors.New("unexpected value")

	//ErrSequenceUnconsumed the test finished with scripted slots left over
	ErrSequenceUnconsumed = errors.New("sequence not fully consumed")
)

//Op the kind of pin transaction that produced a violation
type Op string

const (
	OpWrite Op = "write"
	OpRead  Op = "read"
	OpDone  Op = "done"
)

//Violation a single broken expectation on a MockPin. Index is the 1-based
//script position the offending operation tried to consume.
type Violation struct {
	Label    string
	Op       Op
	Index    int
	Length   int
	Expected bool
	Got      bool
	Fatal    bool

	err error
}

func (v *Violation) Error() string {
	switch {
	case v.err == ErrValueMismatch:
		return fmt.Sprintf("pin %s: %s at %d: expected %t, got %t",
			v.Label, v.err, v.Index, v.Expected, v.Got)
	case v.err == ErrSequenceUnconsumed:
		return fmt.Sprintf("pin %s: %s: %d of %d used", v.Label, v.err, v.Index, v.Length)
	case v.Op == OpRead:
		return fmt.Sprintf("pin %s: %s at %d: returning last known state %t",
			v.Label, v.err, v.Index, v.Got)
	default:
		return fmt.Sprintf("pin %s: %s at %d: unexpected %s of %t",
			v.Label, v.err, v.Index, v.Op, v.Got)
	}
}

//Unwrap exposes the sentinel for errors.Is
func (v *Violation) Unwrap() error { return v.err }

//Cause exposes the sentinel for errors.Cause
func (v *Violation) Cause() error { return v.err }

//Reporter receives violations. *testing.T and ginkgo's GinkgoT() both
//satisfy it; Fatalf is expected to stop the running test.
type Reporter interface {
	Errorf(format string, args ...interface{})
	Fatalf(format string, args ...interface{})
}

//PanicReporter a Reporter for use outside of a test runner
type PanicReporter struct{}

//Errorf logs the violation
func (PanicReporter) Errorf(format string, args ...interface{}) {
	log.Printf(format, args...)
}

//Fatalf panics with the violation
func (PanicReporter) Fatalf(format string, args ...interface{}) {
	panic(fmt.Sprintf(format, args...))
}
