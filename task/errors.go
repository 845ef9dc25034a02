package task

import "errors"

// ErrMalformedTask is wrapped with context when a loaded task file fails
// structural validation (domain sizes, fact references, axiom layers).
var ErrMalformedTask = errors.New("task: malformed task")
