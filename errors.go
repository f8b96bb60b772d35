package swisstable

import "errors"

// ErrAllocationFailed is returned by operations that need to grow the table
// when the underlying allocation panics. The table recovers the panic and
// is left exactly as it was before the call — a failed grow must not
// corrupt the previous state.
var ErrAllocationFailed = errors.New("swisstable: allocation failed during grow")
