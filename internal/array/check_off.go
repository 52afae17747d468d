//go:build stridednocheck

package array

// Bounds checking compiled out. See check_on.go.
const rangeChecks = false
