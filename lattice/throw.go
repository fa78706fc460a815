package lattice

import "github.com/pkg/errors"

// The builder is a handful of nested loops, and the only failures are bad
// configs. Rather than thread errors through every level, we panic with a
// BuildError and the public constructors recover it.

// BuildError wraps the error so that a panic carrying some other error (a
// runtime error, say) is never mistaken for one of ours.
type BuildError struct {
	error
}

// Panic with a BuildError.
func fatalf(format string, args ...interface{}) {
	panic(BuildError{errors.Errorf(format, args...)})
}

func HandleBuildPanicRecover(r interface{}) error {
	if r != nil {
		if buildError, ok := r.(BuildError); ok {
			return buildError
		}
		panic(r)
	}
	return nil
}
