// Package swisstable implements an open-addressed hash table in the
// SwissTable style: a dense array of key/value slots alongside a parallel
// array of one-byte control metadata, so a 7-bit hash fingerprint can be
// compared against many slots in a single pass before any key is touched.
//
// Map and Set are the two public facades. Both grow transparently — once an
// insert of a new key would push live entries plus tombstones past 7/8 of
// capacity, the table doubles (or
// compacts in place, if tombstones from prior removals already occupy half
// of capacity) before the insert completes.
//
// The container is not safe for concurrent use. A single Map or Set must be
// owned by one goroutine at a time, or else guarded by the caller with an
// external mutex.
package swisstable
