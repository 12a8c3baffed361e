// Package stations models the fixed catalogue of London rail and metro
// stations: the Station record, its display identity, and the read-only
// catalogue built once from the dataset.
//
// The catalogue is immutable after Load; it may be shared across goroutines
// without synchronization. Derived values (Stations, Lines) are fresh copies
// owned by the caller.
//
// Station equality is identity-string equality only: two stations are the
// same iff Station.String() renders the same text. Structural comparison of
// the other fields is deliberately never used, since two distinct stations
// could coincidentally share them.
package stations
