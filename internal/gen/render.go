package gen

import "fmt"

// Category identifies one of the four generated method-stub groups.
type Category int

const (
	SignedScalar Category = iota
	SignedArray
	UnsignedScalar
	UnsignedArray
)

// String returns a short human-readable label, used in summaries and errors.
func (c Category) String() string {
	switch c {
	case SignedScalar:
		return "signed scalar"
	case SignedArray:
		return "signed array"
	case UnsignedScalar:
		return "unsigned scalar"
	case UnsignedArray:
		return "unsigned array"
	default:
		return fmt.Sprintf("Category(%d)", int(c))
	}
}

// Record is one fully rendered method stub.
type Record struct {
	Width    int
	Category Category
	Name     string // generated method name, e.g. "add_int24_array"
	SolType  string // Solidity type the stub wraps, e.g. "int24[]"
	Text     string // full rendered block, ends with "}\n"
}

// ByteWidth is the encoded byte count the stub passes to the builder
// primitive. Widths are always multiples of 8, so the division is exact.
func (r Record) ByteWidth() int { return r.Width / 8 }

// renderRecord produces the stub for one width and category. The rendered
// text must stay byte-for-byte stable: downstream SDK code diffs the
// generated file, and `verify` compares digests.
func renderRecord(width int, c Category, ut UnderlyingType) Record {
	bytes := width / 8
	switch c {
	case SignedScalar:
		solType := fmt.Sprintf("int%d", width)
		name := fmt.Sprintf("add_int%d", width)
		text := fmt.Sprintf(
			"/// Add an `%s` argument to the `ContractFunctionParameters`\n"+
				"#[allow(dead_code)]\n"+
				"pub fn %s(&mut self, val: %s) -> &mut Self {\n"+
				"    self.add_int(&val, \"%s\", %d)\n"+
				"}\n",
			solType, name, ut.Signed, solType, bytes)
		return Record{Width: width, Category: c, Name: name, SolType: solType, Text: text}
	case SignedArray:
		solType := fmt.Sprintf("int%d[]", width)
		name := fmt.Sprintf("add_int%d_array", width)
		text := fmt.Sprintf(
			"/// Add an `%s` argument to the `ContractFunctionParameters`\n"+
				"#[allow(dead_code)]\n"+
				"pub fn %s(&mut self, values: &[%s]) -> &mut Self {\n"+
				"    self.add_int_array(values, \"%s\", %d)\n"+
				"}\n",
			solType, name, ut.Signed, solType, bytes)
		return Record{Width: width, Category: c, Name: name, SolType: solType, Text: text}
	case UnsignedScalar:
		solType := fmt.Sprintf("uint%d", width)
		name := fmt.Sprintf("add_uint%d", width)
		text := fmt.Sprintf(
			"/// Add a `%s` argument to the `ContractFunctionParameters`\n"+
				"#[allow(dead_code)]\n"+
				"pub fn %s(&mut self, val: %s) -> &mut Self {\n"+
				"    self.add_int(&val, \"%s\", %d)\n"+
				"}\n",
			solType, name, ut.Unsigned, solType, bytes)
		return Record{Width: width, Category: c, Name: name, SolType: solType, Text: text}
	case UnsignedArray:
		solType := fmt.Sprintf("uint%d[]", width)
		name := fmt.Sprintf("add_uint%d_array", width)
		text := fmt.Sprintf(
			"/// Add a `%s` argument to the `ContractFunctionParameters`\n"+
				"#[allow(dead_code)]\n"+
				"pub fn %s(&mut self, values: &[%s]) -> &mut Self {\n"+
				"    self.add_int_array(values, \"%s\", %d)\n"+
				"}\n",
			solType, name, ut.Unsigned, solType, bytes)
		return Record{Width: width, Category: c, Name: name, SolType: solType, Text: text}
	default:
		panic(fmt.Sprintf("unknown category %d", int(c)))
	}
}
