// Package model defines the data structures shown to the user.
package model

// Variant names the active alternative of an inspected signal.
type Variant string

const (
	// VariantMarker is the payload-less alternative.
	VariantMarker Variant = "marker"
	// VariantPayload is the alternative carrying an integer.
	VariantPayload Variant = "payload"
)

// Inspection is the display view of one signal.
type Inspection struct {
	Input   string  `yaml:"input"`
	Variant Variant `yaml:"variant"`
	Payload *int    `yaml:"payload,omitempty"`
}

// HasPayload reports whether the inspection carries a payload value.
func (i Inspection) HasPayload() bool {
	return i.Payload != nil
}

// CounterReport is the display view of a counter.
type CounterReport struct {
	Value int `yaml:"value"`
}
