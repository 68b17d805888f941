/*
Copyright 2023 by Chen-Kai Liang

This software is provided 'as-is', without any express or implied warranty. In
no event will the authors be held liable for any damages arising from the use of
this software.

Permission is granted to anyone to use this software for any purpose, including
commercial applications, and to alter it and redistribute it freely, subject to
the following restrictions:

1. The origin of this software must not be misrepresented; you must not claim
that you wrote the original software. If you use this software in a product, an
acknowledgment in the product documentation would be appreciated but is not
required.

2. Altered source versions must be plainly marked as such, and must not be
misrepresented as being the original software.

3. This notice may not be removed or altered from any source distribution.
*/

package andromoney

import (
	"fmt"
	"strings"
)

// ParseError is returned by the Reader when a row fails basic structural
// parsing. The offending row is included whole so the bad export line can
// be found without rerunning anything.
type ParseError struct {
	Field  string   // The field that failed to parse.
	Record []string // The offending row.
	Err    error
}

func (err *ParseError) Error() string {
	return fmt.Sprintf("Malformed %v in record [%v]: %v", err.Field, strings.Join(err.Record, ", "), err.Err)
}

func (err *ParseError) Unwrap() error { return err.Err }

// DataIntegrityError is returned by the Reader when a row parses cleanly
// but violates an invariant of the export format.
type DataIntegrityError struct {
	Reason string
	Record []string
}

func (err *DataIntegrityError) Error() string {
	return fmt.Sprintf("Record [%v] violates export invariant: %v", strings.Join(err.Record, ", "), err.Reason)
}
