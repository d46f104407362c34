// Package domain turns command line input into fixture values and hands the
// results to a UI.
package domain

import (
	"fmt"
	"strconv"
	"strings"

	m "fixture.dev/pkg/fixture/internal/model"
	"fixture.dev/pkg/fixture/pkg/sample"
)

const payloadSeparator = ":"

// ParseSignal builds a Signal from its text form: "marker" or "payload:<int>".
// Variant names are case-insensitive and surrounding spaces are ignored.
func ParseSignal(text string) (sample.Signal, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, ErrEmptySignal
	}

	name, rawPayload, hasPayload := strings.Cut(trimmed, payloadSeparator)

	switch m.Variant(strings.ToLower(strings.TrimSpace(name))) {
	case m.VariantMarker:
		if hasPayload {
			return nil, fmt.Errorf("%w: %q takes no payload", ErrInvalidPayload, text)
		}

		return sample.NewMarker(), nil

	case m.VariantPayload:
		if !hasPayload {
			return nil, fmt.Errorf("%w: %q is missing a payload", ErrInvalidPayload, text)
		}

		value, err := strconv.Atoi(strings.TrimSpace(rawPayload))
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %w", ErrInvalidPayload, text, err)
		}

		return sample.NewPayload(value), nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownVariant, name)
}

// Inspect reports which variant s holds and its payload, if any.
func Inspect(input string, s sample.Signal) m.Inspection {
	inspection := m.Inspection{Input: input}

	switch v := s.(type) {
	case sample.Marker:
		inspection.Variant = m.VariantMarker
	case sample.Payload:
		value := v.Value()
		inspection.Variant = m.VariantPayload
		inspection.Payload = &value
	}

	return inspection
}
