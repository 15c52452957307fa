package codec

import "errors"

var (
	// ErrParse reports a malformed wire document.
	ErrParse = errors.New("parse error")

	// ErrUnsupportedStructure reports a tree the wire format cannot
	// express, a bare list nested directly inside another list.
	ErrUnsupportedStructure = errors.New("unsupported structure")
)
