package core

import (
	"fmt"
	"strings"
)

// Func transforms the Data restricted to a converter's declared inputs into
// Data keyed by its declared outputs.
type Func func(in Data) (Data, error)

// Converter is a named handle around a Func. Two Converters are the same
// converter only if they are the same pointer; equal names or equal
// behavior do not make them interchangeable in a Table.
type Converter struct {
	name string
	fn   Func
}

// NewConverter wraps fn under name. A nil fn yields a handle that
// validate.Check reports as RuleNilConverter.
func NewConverter(name string, fn Func) *Converter {
	return &Converter{name: name, fn: fn}
}

// Unary adapts a single-value function to a Converter reading label in and
// writing label out. Register it under {in} → {out}.
func Unary(name string, in, out Label, fn func(v any) (any, error)) *Converter {
	if fn == nil {
		return NewConverter(name, nil)
	}

	return NewConverter(name, func(data Data) (Data, error) {
		v, ok := data[in]
		if !ok {
			return nil, &MissingInputError{Label: in, Step: -1}
		}
		res, err := fn(v)
		if err != nil {
			return nil, err
		}

		return Data{out: res}, nil
	})
}

// Name returns the registration name of c.
func (c *Converter) Name() string {
	if c == nil {
		return "<nil>"
	}

	return c.name
}

// Valid reports whether c can be invoked.
func (c *Converter) Valid() bool { return c != nil && c.fn != nil }

// Call invokes the underlying function.
func (c *Converter) Call(in Data) (Data, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("%w: converter %q has no function", ErrConverterFailed, c.Name())
	}

	return c.fn(in)
}

// String implements fmt.Stringer.
func (c *Converter) String() string { return c.Name() }

// Edge is one (inputs, outputs, converter) candidate of a Table.
type Edge struct {
	Inputs    LabelSet
	Outputs   LabelSet
	Converter *Converter
}

// String renders e as name:{in}->{out}.
func (e Edge) String() string {
	return fmt.Sprintf("%s:%s->%s", e.Converter.Name(), e.Inputs, e.Outputs)
}

// Path is an ordered chain of Edges; edge i consumes only labels that are
// known initially or produced by edges 0..i-1.
type Path []Edge

// Produces returns the union of every edge's outputs.
func (p Path) Produces() LabelSet {
	var out LabelSet
	for _, e := range p {
		out = out.Union(e.Outputs)
	}

	return out
}

// Converters returns the converter handles of p in order.
func (p Path) Converters() []*Converter {
	out := make([]*Converter, len(p))
	for i, e := range p {
		out[i] = e.Converter
	}

	return out
}

// String renders p as "f:{a}->{b} | g:{b}->{c}".
func (p Path) String() string {
	parts := make([]string, len(p))
	for i, e := range p {
		parts[i] = e.String()
	}

	return strings.Join(parts, " | ")
}
