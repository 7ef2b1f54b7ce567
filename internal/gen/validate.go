package gen

import (
	"fmt"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

// checkSolType confirms an emitted Solidity type name parses as a real ABI
// type. The generator only writes text, so this is the one hook keeping the
// stubs honest against actual ABI type grammar.
func checkSolType(name string) error {
	if _, err := abi.NewType(name, "", nil); err != nil {
		return fmt.Errorf("generated Solidity type %q is not a valid ABI type: %w", name, err)
	}
	return nil
}
