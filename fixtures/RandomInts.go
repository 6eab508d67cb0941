package fixtures

import (
	"sync"
)

var mutex sync.Mutex

// RandomIntn returns, as an int, a non-negative pseudo-random number in [0,n).
// It panics if n <= 0.
func RandomIntn(n int) int {
	mutex.Lock()
	defer mutex.Unlock()
	return rnd.Intn(n)
}

// RandomInts returns a slice with the given length filled with pseudo-random numbers.
// This is primary and only used for testing,
// when a generator test or benchmark needs input data without caring about the concrete values.
func RandomInts(length int) []int {
	mutex.Lock()
	defer mutex.Unlock()

	values := make([]int, length)
	for i := range values {
		values[i] = rnd.Intn(1000)
	}
	return values
}
