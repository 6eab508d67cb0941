package fixtures

import (
	"github.com/Pallinder/go-randomdata"
)

// RandomNames returns a slice with the given length filled with random silly names.
func RandomNames(length int) []string {
	mutex.Lock()
	defer mutex.Unlock()

	names := make([]string, length)
	for i := range names {
		names[i] = randomdata.SillyName()
	}
	return names
}
