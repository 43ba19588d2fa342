// Package numeric holds pieces shared by the numeric computation packages.
package numeric

import "errors"

// ErrInvalidArgument is wrapped by every precondition failure reported by the
// numeric packages. Callers match it with errors.Is and can still surface the
// per-condition message to the user.
var ErrInvalidArgument = errors.New("invalid argument")
