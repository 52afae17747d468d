//go:build !stridednocheck

package array

// rangeChecks selects at compile time whether bounds checking and diagnostic
// invocation exist at all. Building with -tags stridednocheck sets it to
// false, and every check guarded by it folds away.
const rangeChecks = true
