package gen

import (
	"encoding/hex"
	"fmt"
	"os"
	"strings"

	"golang.org/x/crypto/sha3"
)

// DefaultOutputPath is where generate writes when neither a flag nor the
// config overrides it.
const DefaultOutputPath = "output.txt"

// Result holds the four rendered sequences of one generation run. Each
// sequence is append-only, populated in ascending width order, and never
// reordered.
type Result struct {
	SignedScalar   []Record
	SignedArray    []Record
	UnsignedScalar []Record
	UnsignedArray  []Record
}

// Generate renders all four stub categories for the given widths. Widths
// must already be valid (use Widths or WidthsBetween); every emitted
// Solidity type name is checked against the ABI type grammar before the
// result is returned.
func Generate(widths []int) (*Result, error) {
	res := &Result{}
	for _, w := range widths {
		ut, err := TypeFor(w)
		if err != nil {
			return nil, err
		}
		res.SignedScalar = append(res.SignedScalar, renderRecord(w, SignedScalar, ut))
		res.SignedArray = append(res.SignedArray, renderRecord(w, SignedArray, ut))
		res.UnsignedScalar = append(res.UnsignedScalar, renderRecord(w, UnsignedScalar, ut))
		res.UnsignedArray = append(res.UnsignedArray, renderRecord(w, UnsignedArray, ut))
	}
	for _, r := range res.Records() {
		if err := checkSolType(r.SolType); err != nil {
			return nil, err
		}
	}
	return res, nil
}

// Records returns all records in output order: signed scalars, signed
// arrays, unsigned scalars, unsigned arrays, each ascending by width.
func (r *Result) Records() []Record {
	out := make([]Record, 0, r.Total())
	out = append(out, r.SignedScalar...)
	out = append(out, r.SignedArray...)
	out = append(out, r.UnsignedScalar...)
	out = append(out, r.UnsignedArray...)
	return out
}

// Total is the number of records across all four sequences.
func (r *Result) Total() int {
	return len(r.SignedScalar) + len(r.SignedArray) + len(r.UnsignedScalar) + len(r.UnsignedArray)
}

// Assemble concatenates the four sequences into the final file content.
// Every record is followed by exactly one blank line.
func (r *Result) Assemble() string {
	var sb strings.Builder
	for _, rec := range r.Records() {
		sb.WriteString(rec.Text)
		sb.WriteString("\n")
	}
	return sb.String()
}

// Digest returns the 0x-prefixed Keccak-256 hash of the assembled output.
// Generation is deterministic, so the digest doubles as a staleness check
// for the on-disk file.
func (r *Result) Digest() string {
	h := sha3.NewLegacyKeccak256()
	h.Write([]byte(r.Assemble()))
	return "0x" + hex.EncodeToString(h.Sum(nil))
}

// WriteFile truncates/creates path and writes the assembled output. The
// only expected failure is I/O on the destination.
func (r *Result) WriteFile(path string) error {
	if err := os.WriteFile(path, []byte(r.Assemble()), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
