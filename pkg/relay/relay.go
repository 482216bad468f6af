package relay

import "github.com/xanderflood/pinmock/pkg/gpio"

//Relay a relay module
type Relay interface {
	Set(bool)
	On()
	Off()
	Toggle()
	IsOn() bool
}

//RelayAgent standard relay implementation
type RelayAgent struct {
	pin      gpio.OutputPin
	inverted bool
	on       bool
}

//New control a relay. The relay is not driven until the first Set.
func New(pin gpio.OutputPin, inverted bool) *RelayAgent {
	return &RelayAgent{
		pin:      pin,
		inverted: inverted,
	}
}

//Set switch the relay on or off
func (r *RelayAgent) Set(on bool) {
	val := (on != r.inverted) //xor
	gpio.Set(r.pin, val)
	r.on = on
}

//On turn the relay on
func (r *RelayAgent) On() { r.Set(true) }

//Off turn the relay off
func (r *RelayAgent) Off() { r.Set(false) }

//Toggle flip the last commanded state
func (r *RelayAgent) Toggle() { r.Set(!r.on) }

//IsOn last commanded state
func (r *RelayAgent) IsOn() bool { return r.on }
