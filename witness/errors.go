package witness

import "errors"

// ErrUnsatisfiable indicates that no string of the requested length can match
// the predicate at all (run < 1 or run > length) — as opposed to the space
// simply holding fewer matches than asked for, which is not an error.
var ErrUnsatisfiable = errors.New("witness: no example can satisfy the query")
