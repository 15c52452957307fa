package catalog

import (
	"errors"

	"github.com/crateful/wirecat/ir"
)

var (
	// ErrRecordNotFound reports an identity lookup miss.
	ErrRecordNotFound = errors.New("record not found")

	// ErrRecordDeleted reports an operation on a record that was
	// deleted and evicted.
	ErrRecordDeleted = errors.New("record deleted")

	// ErrUnsupportedOperation reports a verb/selector combination the
	// entity type's policy forbids.
	ErrUnsupportedOperation = errors.New("unsupported operation")

	// ErrUnknownEntityType reports an entity type lookup miss.
	ErrUnknownEntityType = errors.New("unknown entity type")

	ErrPathNotFound = ir.ErrPathNotFound
)
