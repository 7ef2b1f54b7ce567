package cmd

import (
	"testing"

	"github.com/Mohsinsiddi/paramgen/internal/config"
	"github.com/Mohsinsiddi/paramgen/internal/gen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWidthRangeDefaultsToConfig(t *testing.T) {
	from, to := widthRange(0, 0, false, false, config.Widths{From: 8, To: 256})
	assert.Equal(t, 8, from)
	assert.Equal(t, 256, to)
}

func TestWidthRangeFlagsOverrideConfig(t *testing.T) {
	from, to := widthRange(16, 64, true, true, config.Widths{From: 8, To: 256})
	assert.Equal(t, 16, from)
	assert.Equal(t, 64, to)
}

func TestWidthRangePartialOverride(t *testing.T) {
	from, to := widthRange(24, 0, true, false, config.Widths{From: 8, To: 128})
	assert.Equal(t, 24, from)
	assert.Equal(t, 128, to)
}

func TestWidthRangeKeepsExplicitZero(t *testing.T) {
	// An explicitly passed 0 must survive to validation, not fall back
	// to the configured bound.
	from, to := widthRange(0, 32, true, true, config.Widths{From: 8, To: 256})
	assert.Equal(t, 0, from)
	assert.Equal(t, 32, to)

	_, err := gen.WidthsBetween(from, to)
	assert.Error(t, err)
}

func TestBrowserItemsKeepRecordOrder(t *testing.T) {
	res, err := gen.Generate(gen.Widths())
	require.NoError(t, err)

	items := browserItems(res)
	require.Len(t, items, 128)
	assert.Equal(t, "add_int8", items[0].Label)
	assert.Equal(t, "int8", items[0].SubLabel)
	assert.Equal(t, "add_uint256_array", items[127].Label)
	assert.Equal(t, "uint256[]", items[127].SubLabel)
	assert.Contains(t, items[127].Body, `self.add_int_array(values, "uint256[]", 32)`)
}
