package model

import "errors"

var (
	// ErrFrozen wraps every structural mutation attempted on a class
	// after Freeze. The wrapping message always names the class by
	// qualified name.
	ErrFrozen = errors.New("class is frozen")

	// ErrDuplicateClass wraps registration of a second class under an
	// already-taken qualified name.
	ErrDuplicateClass = errors.New("class already registered")

	// ErrSignatureCodebase is returned by source-only operations, such
	// as InheritMethodFromNonApiAncestor, when the codebase was not
	// built from primary source input.
	ErrSignatureCodebase = errors.New("codebase does not preserve source fidelity")
)
