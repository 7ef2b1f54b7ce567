package integration_test

import (
	"strings"
	"testing"

	"github.com/Mohsinsiddi/paramgen/internal/gen"
	"github.com/Mohsinsiddi/paramgen/test/fixtures"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The golden file is a known-good generation of the full width range. Any
// diff against it means the rendered text changed, which breaks downstream
// SDK code that diffs the generated file.
func TestFullGenerationMatchesGolden(t *testing.T) {
	golden := string(fixtures.LoadGolden(t, "output.txt"))

	res, err := gen.Generate(gen.Widths())
	require.NoError(t, err)

	assert.Equal(t, golden, res.Assemble())
}

func TestGoldenBlockStructure(t *testing.T) {
	golden := string(fixtures.LoadGolden(t, "output.txt"))

	// 128 records, each closed by "}" and followed by a blank line.
	assert.Equal(t, 128, strings.Count(golden, "}\n\n"))

	// Category blocks appear in the fixed order.
	intScalar := strings.Index(golden, "pub fn add_int8(")
	intArray := strings.Index(golden, "pub fn add_int8_array(")
	uintScalar := strings.Index(golden, "pub fn add_uint8(")
	uintArray := strings.Index(golden, "pub fn add_uint8_array(")
	require.True(t, intScalar >= 0 && intArray >= 0 && uintScalar >= 0 && uintArray >= 0)
	assert.Less(t, intScalar, intArray)
	assert.Less(t, intArray, uintScalar)
	assert.Less(t, uintScalar, uintArray)
}
