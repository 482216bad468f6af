package gpiotest

import (
	"time"

	"github.com/pkg/errors"
	"periph.io/x/periph/conn/gpio"
	"periph.io/x/periph/conn/gpio/gpioreg"
	"periph.io/x/periph/conn/physic"
)

//PeriphPin exposes a MockPin as a periph.io gpio.PinIO so drivers written
//against periph can be exercised with a script
type PeriphPin struct {
	*MockPin

	out bool
}

var _ gpio.PinIO = &PeriphPin{}

//NewPeriphPin wraps a MockPin
func NewPeriphPin(pin *MockPin) *PeriphPin {
	return &PeriphPin{MockPin: pin}
}

func (p *PeriphPin) String() string { return p.label }

//Halt implements conn.Resource.
func (p *PeriphPin) Halt() error { return nil }

//Name returns the label of the underlying MockPin
func (p *PeriphPin) Name() string { return p.label }

//Number always -1; emulated pins have no header position
func (p *PeriphPin) Number() int { return -1 }

//Function returns "Out" or "In" depending on the last direction used
func (p *PeriphPin) Function() string {
	if p.out {
		return "Out"
	}
	return "In"
}

//In switches to input. Edge detection needs timing and is not supported.
func (p *PeriphPin) In(pull gpio.Pull, edge gpio.Edge) error {
	if edge != gpio.NoEdge {
		return errors.Errorf("gpiotest: pin %s: edge detection not supported", p.label)
	}
	p.out = false
	p.MockPin.Input()
	return nil
}

//Read consumes the next script slot
func (p *PeriphPin) Read() gpio.Level {
	return gpio.Level(p.MockPin.IsHigh())
}

//WaitForEdge never sees an edge
func (p *PeriphPin) WaitForEdge(timeout time.Duration) bool { return false }

//Pull is not emulated
func (p *PeriphPin) Pull() gpio.Pull { return gpio.PullNoChange }

//DefaultPull is not emulated
func (p *PeriphPin) DefaultPull() gpio.Pull { return gpio.Float }

//Out drives the line, consuming one script slot
func (p *PeriphPin) Out(l gpio.Level) error {
	p.out = true
	p.MockPin.Output()
	if l == gpio.High {
		p.MockPin.High()
	} else {
		p.MockPin.Low()
	}
	return nil
}

//PWM is not supported
func (p *PeriphPin) PWM(duty gpio.Duty, f physic.Frequency) error {
	return errors.Errorf("gpiotest: pin %s: PWM not supported", p.label)
}

//Register publishes the pin in periph's gpioreg under its label, so code
//that resolves pins with gpioreg.ByName receives the emulator
func Register(p *PeriphPin) error {
	if err := gpioreg.Register(p); err != nil {
		return errors.Wrapf(err, "failed registering pin %s", p.label)
	}
	return nil
}

//Unregister removes a pin published with Register
func Unregister(p *PeriphPin) error {
	if err := gpioreg.Unregister(p.label); err != nil {
		return errors.Wrapf(err, "failed unregistering pin %s", p.label)
	}
	return nil
}
