package eagersearch

import (
	"errors"

	"github.com/axiomplan/planner/internalerror"
)

// Sentinel error kinds (spec §7). Concrete failures wrap one of these with
// fmt.Errorf("%w: ...") so callers can classify an error with errors.Is
// while still reading a specific message.
var (
	ErrInputError         = errors.New("eagersearch: input error")
	ErrUnsupportedFeature = errors.New("eagersearch: unsupported feature")
	ErrOutOfResources     = errors.New("eagersearch: out of resources")
	ErrNoPlan             = errors.New("eagersearch: no plan exists")
)

// InternalError is re-exported so invariant-violation panics read as
// eagersearch.InternalError at call sites, per spec §7, even though most such
// panics originate in lower packages (state, openlist) that cannot import
// eagersearch without a cycle.
type InternalError = internalerror.InternalError
