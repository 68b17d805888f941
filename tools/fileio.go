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

package tools

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// FormatError is returned for input files this tool cannot read. It fires
// on the file name alone, before any row is processed.
type FormatError struct {
	Path   string
	Reason string
}

func (err FormatError) Error() string {
	return fmt.Sprintf("Cannot read %v: %v", err.Path, err.Reason)
}

// ExportFile is an open export file with its UTF-8 decoder applied.
type ExportFile struct {
	io.Reader
	f *os.File
}

func (e *ExportFile) Close() error { return e.f.Close() }

// OpenExport opens an AndroMoney export for reading. Only CSV exports are
// supported: the app can also emit .xls/.xlsx but no reader exists for
// those, and any other extension is rejected outright.
func OpenExport(path string) (*ExportFile, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
	case ".xls", ".xlsx":
		return nil, FormatError{Path: path, Reason: "Excel exports are not implemented, re-export as CSV."}
	default:
		return nil, FormatError{Path: path, Reason: fmt.Sprintf("unsupported format %q.", filepath.Ext(path))}
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	r, err := NewUTF8Reader(f)
	if err != nil {
		f.Close()
		return nil, err
	}

	return &ExportFile{Reader: r, f: f}, nil
}

// DefaultOutputPath derives the output ledger path from the input path by
// swapping the extension for .ledger.
func DefaultOutputPath(input string) string {
	return strings.TrimSuffix(input, filepath.Ext(input)) + ".ledger"
}
