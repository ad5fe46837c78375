// SPDX-License-Identifier: MIT

package instance

import "errors"

var (
	// ErrUnsupportedFormat indicates a file extension Load does not know.
	ErrUnsupportedFormat = errors.New("instance: unsupported file format")

	// ErrBadCell indicates a CSV weight that is not a number.
	ErrBadCell = errors.New("instance: weight cell is not a number")

	// ErrMalformed indicates a document that cannot be decoded at all
	// (syntax errors, unequal CSV records, unknown YAML keys).
	ErrMalformed = errors.New("instance: malformed document")

	// ErrEmpty indicates a document without any weight row.
	ErrEmpty = errors.New("instance: no weights")
)
