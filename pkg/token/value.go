package token

import (
	"encoding/json"
	"math"
	"strconv"
)

// Value is a literal value carried by a token or an AST literal node.
// The set of implementations is closed: Text, Number, Boolean and Null.
type Value interface {
	// String returns the canonical textual form of the value.
	String() string
	isValue()
}

// Text is a string literal. The quotes are not part of the value.
type Text string

// Number is a numeric literal. All Lox numbers are 64-bit floats.
type Number float64

// Boolean is the value of the true and false keywords.
type Boolean bool

// Null is the value of the nil keyword, and the literal of every token that
// carries no literal.
type Null struct{}

func (Text) isValue()    {}
func (Number) isValue()  {}
func (Boolean) isValue() {}
func (Null) isValue()    {}

func (v Text) String() string { return string(v) }

// String renders integral numbers without a fractional part (123) and all
// others in their shortest exact decimal form (12.5).
func (v Number) String() string {
	return strconv.FormatFloat(float64(v), 'f', -1, 64)
}

// MarshalJSON encodes finite numbers as JSON numbers. JSON has no infinity,
// so literals beyond the float64 range encode as the strings "+Inf" and "-Inf".
func (v Number) MarshalJSON() ([]byte, error) {
	f := float64(v)
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return json.Marshal(v.String())
	}
	return json.Marshal(f)
}

func (v Boolean) String() string { return strconv.FormatBool(bool(v)) }

func (Null) String() string { return "nil" }

// MarshalJSON encodes Null as the JSON null literal.
func (Null) MarshalJSON() ([]byte, error) { return []byte("null"), nil }

// MarshalYAML encodes Null as the YAML null node.
func (Null) MarshalYAML() (any, error) { return nil, nil }

// Equal reports whether two literal values have the same variant and content.
func Equal(a, b Value) bool {
	if a == nil || b == nil {
		return isNull(a) && isNull(b)
	}
	return a == b
}

func isNull(v Value) bool {
	if v == nil {
		return true
	}
	_, ok := v.(Null)
	return ok
}
