// SPDX-License-Identifier: MIT

package probability

import (
	"fmt"
	"reflect"
)

// Select returns the model matching the structure's (R, G).
//
// A nil structure yields (nil, nil): no owner, no model. This includes a
// typed nil pointer such as a (*phase.Phase)(nil), whose methods are never
// called. Otherwise the rules of New apply.
func Select(s Structure, opts ...Option) (Model, error) {
	if s == nil || isNilPointer(s) {
		return nil, nil
	}

	return New(s.Reichweite(), s.Components(), opts...)
}

// isNilPointer reports whether s holds a nil pointer of some concrete type.
func isNilPointer(s Structure) bool {
	v := reflect.ValueOf(s)

	return v.Kind() == reflect.Ptr && v.IsNil()
}

// New dispatches (r, g) to a concrete model:
//
//	g < 1                 → ErrInvalidComponents
//	r < 0                 → ErrUnsupportedCombination
//	g == 1 or r == 0      → R0Model (g <= 4)
//	r == 1, g == 2        → R1G2Model
//	r == 1, g == 3        → R1G3Model
//	anything else         → *UnsupportedError (matches ErrUnsupportedCombination)
//
// Unsupported pairs are never approximated by a neighbouring model.
func New(r, g int, opts ...Option) (Model, error) {
	if g < 1 {
		return nil, fmt.Errorf("probability.New: %w: G=%d", ErrInvalidComponents, g)
	}
	if r < 0 {
		return nil, unsupported(r, g)
	}

	switch {
	case g == 1 || r == 0:
		m, err := NewR0(g, opts...)
		if err != nil {
			return nil, err
		}
		return m, nil
	case r == 1 && g == 2:
		m, err := NewR1G2(opts...)
		if err != nil {
			return nil, err
		}
		return m, nil
	case r == 1 && g == 3:
		m, err := NewR1G3(opts...)
		if err != nil {
			return nil, err
		}
		return m, nil
	}

	return nil, unsupported(r, g)
}
