package algo

import "math/big"

// FactorialRecursive returns n! via the textbook recursion
// 0! = 1, n! = n * (n-1)!.
func FactorialRecursive(n int) (*big.Int, error) {
	if n < 0 {
		return nil, ErrNegativeInput
	}

	return factRec(n), nil
}

func factRec(n int) *big.Int {
	if n == 0 {
		return big.NewInt(1)
	}

	return new(big.Int).Mul(big.NewInt(int64(n)), factRec(n-1))
}

// FactorialIterative returns n! as a running product, avoiding recursion
// depth for large n.
func FactorialIterative(n int) (*big.Int, error) {
	if n < 0 {
		return nil, ErrNegativeInput
	}

	product := big.NewInt(1)

	for i := 2; i <= n; i++ {
		product.Mul(product, big.NewInt(int64(i)))
	}

	return product, nil
}
