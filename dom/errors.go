package dom

import "github.com/pkg/errors"

// The wrapper's error taxonomy. Raise sites wrap these with context;
// callers test with errors.Is. Operations on an instance that is
// merely invalid never raise; they return neutral values so chains
// need no null-checking.
var (
	// ErrArgumentType reports a malformed call argument: a non-string
	// class value, a nil Each func, an unsupported query or content
	// kind.
	ErrArgumentType = errors.New("invalid argument type")

	// ErrInvalidOperation reports an operation structurally
	// incompatible with the current cardinality, such as setting an
	// id on a collection.
	ErrInvalidOperation = errors.New("operation invalid for wrapped target")

	// ErrInternal reports a broken invariant inside this layer
	// itself, not caller misuse.
	ErrInternal = errors.New("internal consistency violation")
)
