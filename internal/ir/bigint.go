package ir

import "math/big"

// BigUint is a non-negative literal magnitude too wide for a uint64. It
// wraps math/big the same way the teacher's MaxValueBig
// (pkg/ir/mir/translate_to_picus.go) reaches for math/big whenever plain
// integer bitwidth arithmetic would otherwise overflow machine words.
type BigUint struct {
	Val big.Int
}

// NewBigUint constructs a BigUint from its decimal string representation.
func NewBigUint(decimal string) (*BigUint, bool) {
	var v big.Int
	if _, ok := v.SetString(decimal, 10); !ok {
		return nil, false
	}
	return &BigUint{Val: v}, true
}

// String renders the decimal form of the magnitude.
func (b *BigUint) String() string {
	return b.Val.String()
}

// MaxUnsignedValue returns (1<<bitwidth)-1 as a big.Int; a bitwidth of 0
// yields 0.
func MaxUnsignedValue(bitwidth Width) *big.Int {
	if bitwidth == 0 {
		return new(big.Int)
	}

	one := big.NewInt(1)

	return new(big.Int).Sub(new(big.Int).Lsh(one, uint(bitwidth)), one)
}
