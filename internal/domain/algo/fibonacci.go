package algo

import "math/big"

// FibonacciNaive returns the n-th Fibonacci term using the textbook
// two-branch recursion: F(0)=0, F(1)=1, F(n)=F(n-1)+F(n-2).
//
// The shape is exponential in n and kept deliberately unoptimized; it is the
// reference the other variants are checked against. Callers are expected to
// guard n (see the run.naive_max_n setting).
func FibonacciNaive(n int) (*big.Int, error) {
	if n < 0 {
		return nil, ErrNegativeInput
	}

	return fibNaive(n), nil
}

func fibNaive(n int) *big.Int {
	if n <= 1 {
		return big.NewInt(int64(n))
	}

	return new(big.Int).Add(fibNaive(n-1), fibNaive(n-2))
}

// FibonacciIterative returns the n-th Fibonacci term in linear time.
func FibonacciIterative(n int) (*big.Int, error) {
	if n < 0 {
		return nil, ErrNegativeInput
	}

	a := big.NewInt(0)
	b := big.NewInt(1)

	for i := 0; i < n; i++ {
		a.Add(a, b)
		a, b = b, a
	}

	return a, nil
}

// FibonacciMemoized returns the n-th Fibonacci term keeping the recursive
// shape but caching every computed term, making it linear in n.
func FibonacciMemoized(n int) (*big.Int, error) {
	if n < 0 {
		return nil, ErrNegativeInput
	}

	memo := make(map[int]*big.Int, n+1)

	return fibMemo(n, memo), nil
}

func fibMemo(n int, memo map[int]*big.Int) *big.Int {
	if n <= 1 {
		return big.NewInt(int64(n))
	}

	if v, ok := memo[n]; ok {
		return v
	}

	v := new(big.Int).Add(fibMemo(n-1, memo), fibMemo(n-2, memo))
	memo[n] = v

	return v
}
