package ir

import "errors"

// ErrPathNotFound reports that a path segment named a field absent from
// the tree being walked.
var ErrPathNotFound = errors.New("path not found")
