package sample

import "strconv"

// Signal is either a Marker or a Payload.
//
// The set is closed: the signal method is unexported, so only this package
// can add variants. Use a type switch to tell them apart.
type Signal interface {
	signal()
	String() string
}

// Marker is the variant without data.
type Marker struct{}

// Payload is the variant carrying one integer.
type Payload struct {
	value int
}

// NewMarker returns the Marker variant.
func NewMarker() Signal {
	return Marker{}
}

// NewPayload returns the Payload variant carrying v.
func NewPayload(v int) Signal {
	return Payload{value: v}
}

// Value returns the carried integer.
func (p Payload) Value() int {
	return p.value
}

// PayloadOf returns the integer carried by s and true when s is a Payload.
func PayloadOf(s Signal) (int, bool) {
	p, ok := s.(Payload)
	if !ok {
		return 0, false
	}

	return p.value, true
}

func (Marker) signal() {}
func (Payload) signal() {}

func (Marker) String() string {
	return "marker"
}

func (p Payload) String() string {
	return "payload(" + strconv.Itoa(p.value) + ")"
}
