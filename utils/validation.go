// utils/validation.go
package utils

const (
	MinGridSize     = 4
	MaxGridSize     = 20
	DefaultGridSize = 9
)

// ValidGridSize checks the allowed range for stamps-per-reward.
func ValidGridSize(size int) bool {
	return size >= MinGridSize && size <= MaxGridSize
}
