// Package fixtures provides random input sequences for tests.
// This is primary and only used for testing.
package fixtures

import (
	"sync"

	"github.com/Pallinder/go-randomdata"
)

// randomdata shares a non thread safe source between its functions
var mutex sync.Mutex

// Words returns n random words, duplicates included.
func Words(n int) []string {
	mutex.Lock()
	defer mutex.Unlock()
	vs := make([]string, 0, n)
	for i := 0; i < n; i++ {
		vs = append(vs, randomdata.SillyName())
	}
	return vs
}

// Ints returns n random integers in the [0, max) range.
func Ints(n, max int) []int {
	mutex.Lock()
	defer mutex.Unlock()
	vs := make([]int, 0, n)
	for i := 0; i < n; i++ {
		vs = append(vs, randomdata.Number(max))
	}
	return vs
}

// Bool returns a random boolean.
func Bool() bool {
	mutex.Lock()
	defer mutex.Unlock()
	return randomdata.Boolean()
}
