package model

import (
	"fmt"
	"math/big"
)

// BigAmount is an arbitrary-precision token amount carried as a decimal
// string. BRC-20 mint amounts routinely exceed int64.
type BigAmount struct {
	Value string `json:"value"`
}

func ParseBigAmount(s string) (BigAmount, error) {
	if _, ok := new(big.Int).SetString(s, 10); !ok {
		return BigAmount{}, fmt.Errorf("invalid amount: %q", s)
	}

	return BigAmount{Value: s}, nil
}

func (a BigAmount) String() string {
	return a.Value
}

func (a BigAmount) Add(other BigAmount) BigAmount {
	num1 := new(big.Int)
	num1.SetString(a.Value, 10)

	num2 := new(big.Int)
	num2.SetString(other.Value, 10)

	result := new(big.Int)
	result.Add(num1, num2)

	return BigAmount{Value: result.String()}
}
