// Package gen renders the add_int*/add_uint* method stubs for the
// ContractFunctionParameters builder and assembles them into the
// generated output file.
package gen

import "fmt"

const (
	// MinWidth and MaxWidth bound the supported Solidity integer widths.
	MinWidth = 8
	MaxWidth = 256

	widthStep = 8
)

// UnderlyingType is the (signed, unsigned) numeric type pair that backs a
// Solidity integer width on the SDK side.
type UnderlyingType struct {
	Signed   string
	Unsigned string
}

// typeBuckets maps width upper bounds to underlying type pairs. Ordered
// ascending; the first bucket whose bound covers the width wins. Widths
// above the last bucket are invalid, never silently arbitrary-precision.
var typeBuckets = []struct {
	upTo  int
	types UnderlyingType
}{
	{8, UnderlyingType{"i8", "u8"}},
	{16, UnderlyingType{"i16", "u16"}},
	{32, UnderlyingType{"i32", "u32"}},
	{64, UnderlyingType{"i64", "u64"}},
	{128, UnderlyingType{"i128", "u128"}},
	{256, UnderlyingType{"BigInt", "BigUint"}},
}

// ValidWidth reports whether width is a supported Solidity integer width:
// a multiple of 8 between 8 and 256 inclusive.
func ValidWidth(width int) bool {
	return width >= MinWidth && width <= MaxWidth && width%widthStep == 0
}

// TypeFor resolves the underlying type pair for a bit width. Widths outside
// the supported set are rejected, never defaulted to the arbitrary-precision
// pair.
func TypeFor(width int) (UnderlyingType, error) {
	if !ValidWidth(width) {
		return UnderlyingType{}, fmt.Errorf("unsupported bit width %d — must be a multiple of 8 between %d and %d", width, MinWidth, MaxWidth)
	}
	for _, b := range typeBuckets {
		if width <= b.upTo {
			return b.types, nil
		}
	}
	// Unreachable: ValidWidth caps width at the last bucket bound.
	return UnderlyingType{}, fmt.Errorf("no type bucket covers width %d", width)
}

// Widths returns every supported bit width in ascending order: 8, 16, ..., 256.
func Widths() []int {
	ws, _ := WidthsBetween(MinWidth, MaxWidth)
	return ws
}

// WidthsBetween returns the ascending widths from..to inclusive. Both bounds
// must be supported widths and from must not exceed to.
func WidthsBetween(from, to int) ([]int, error) {
	if !ValidWidth(from) {
		return nil, fmt.Errorf("invalid lower bound %d — must be a multiple of 8 between %d and %d", from, MinWidth, MaxWidth)
	}
	if !ValidWidth(to) {
		return nil, fmt.Errorf("invalid upper bound %d — must be a multiple of 8 between %d and %d", to, MinWidth, MaxWidth)
	}
	if from > to {
		return nil, fmt.Errorf("lower bound %d exceeds upper bound %d", from, to)
	}
	var ws []int
	for w := from; w <= to; w += widthStep {
		ws = append(ws, w)
	}
	return ws, nil
}
