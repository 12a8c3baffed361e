// Package picker selects stations from the catalogue: basket filtering by
// criteria, exclusion of previously chosen stations, and validated random
// draws with an optional anchored starting station.
//
// All functions are pure over their inputs; results are fresh slices owned
// by the caller.
package picker
