package gen_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Mohsinsiddi/paramgen/internal/gen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullResult(t *testing.T) *gen.Result {
	t.Helper()
	res, err := gen.Generate(gen.Widths())
	require.NoError(t, err)
	return res
}

func TestGenerateCounts(t *testing.T) {
	res := fullResult(t)
	assert.Len(t, res.SignedScalar, 32)
	assert.Len(t, res.SignedArray, 32)
	assert.Len(t, res.UnsignedScalar, 32)
	assert.Len(t, res.UnsignedArray, 32)
	assert.Equal(t, 128, res.Total())
}

func TestRecordsGroupingAndOrder(t *testing.T) {
	res := fullResult(t)
	recs := res.Records()
	require.Len(t, recs, 128)

	// Four contiguous blocks, in fixed category order.
	blocks := []gen.Category{gen.SignedScalar, gen.SignedArray, gen.UnsignedScalar, gen.UnsignedArray}
	for b, cat := range blocks {
		for i := 0; i < 32; i++ {
			rec := recs[b*32+i]
			assert.Equal(t, cat, rec.Category, "record %d", b*32+i)
			assert.Equal(t, 8*(i+1), rec.Width, "record %d must ascend by width", b*32+i)
		}
	}
}

func TestRecordNaming(t *testing.T) {
	res := fullResult(t)

	// Width 24 is index 2 (8, 16, 24).
	sa := res.SignedArray[2]
	assert.Equal(t, "add_int24_array", sa.Name)
	assert.Equal(t, "int24[]", sa.SolType)
	assert.Contains(t, sa.Text, "/// Add an `int24[]` argument to the `ContractFunctionParameters`")

	ua := res.UnsignedArray[2]
	assert.Equal(t, "add_uint24_array", ua.Name)
	assert.Equal(t, "uint24[]", ua.SolType)
	assert.Contains(t, ua.Text, "/// Add a `uint24[]` argument to the `ContractFunctionParameters`")
}

func TestRecordByteWidths(t *testing.T) {
	res := fullResult(t)
	for _, rec := range res.Records() {
		assert.Equal(t, rec.Width/8, rec.ByteWidth())
	}

	// Byte count appears verbatim in the delegation call.
	assert.Contains(t, res.SignedScalar[2].Text, `self.add_int(&val, "int24", 3)`)
	assert.Contains(t, res.UnsignedArray[31].Text, `self.add_int_array(values, "uint256[]", 32)`)
}

func TestUnderlyingTypesInRenderedText(t *testing.T) {
	res := fullResult(t)

	// Width 64 must use the 64-bit pair, not 128-bit.
	assert.Contains(t, res.SignedScalar[7].Text, "val: i64")
	assert.Contains(t, res.UnsignedScalar[7].Text, "val: u64")

	// Width 136 and above use arbitrary precision.
	assert.Contains(t, res.SignedScalar[16].Text, "val: BigInt")
	assert.Contains(t, res.UnsignedArray[16].Text, "values: &[BigUint]")
}

func TestAssembleSeparatesRecordsWithBlankLines(t *testing.T) {
	res := fullResult(t)
	out := res.Assemble()

	// Every record block ends "}\n" and is followed by one blank line.
	assert.Equal(t, 128, strings.Count(out, "}\n\n"))
	assert.True(t, strings.HasSuffix(out, "}\n\n"))
	assert.NotContains(t, out, "\n\n\n", "no double blank lines")
}

func TestDeterminism(t *testing.T) {
	a := fullResult(t)
	b := fullResult(t)
	assert.Equal(t, a.Assemble(), b.Assemble())
	assert.Equal(t, a.Digest(), b.Digest())
}

func TestDigestFormat(t *testing.T) {
	res := fullResult(t)
	d := res.Digest()
	assert.True(t, strings.HasPrefix(d, "0x"))
	assert.Len(t, d, 66, "0x + 32 hex-encoded bytes")
}

func TestWriteFileEndToEnd(t *testing.T) {
	res := fullResult(t)
	path := filepath.Join(t.TempDir(), "output.txt")
	require.NoError(t, res.WriteFile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(data)

	assert.Equal(t, res.Assemble(), out)
	assert.True(t, strings.HasPrefix(out, "/// Add an `int8` argument to the `ContractFunctionParameters`"))
	assert.Contains(t, out, `self.add_int(&val, "int8", 1)`)

	// Last record in the file is the uint256 array stub.
	lastIdx := strings.LastIndex(out, "/// Add a `uint256[]`")
	require.GreaterOrEqual(t, lastIdx, 0)
	assert.Contains(t, out[lastIdx:], "pub fn add_uint256_array")
}

func TestWriteFileOverwritesPrior(t *testing.T) {
	res := fullResult(t)
	path := filepath.Join(t.TempDir(), "output.txt")
	require.NoError(t, os.WriteFile(path, []byte("stale content\n"), 0o644))

	require.NoError(t, res.WriteFile(path))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, res.Assemble(), string(data))
}

func TestWriteFileMissingDirFails(t *testing.T) {
	res := fullResult(t)
	err := res.WriteFile(filepath.Join(t.TempDir(), "no-such-dir", "output.txt"))
	assert.Error(t, err)
}

func TestGenerateRejectsInvalidWidth(t *testing.T) {
	_, err := gen.Generate([]int{8, 12})
	assert.Error(t, err)
}
