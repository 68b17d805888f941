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

package ledger

import (
	"bytes"
	"fmt"
	"io"
	"strings"
)

// UnsupportedFeatureError is returned by the Writer when a transaction asks
// for something that has no rendering rule.
type UnsupportedFeatureError string

func (err UnsupportedFeatureError) Error() string {
	return fmt.Sprintf("No rendering rule for %v.", string(err))
}

// DefaultIndent is the leg and tag indent width used by NewWriter.
const DefaultIndent = 4

// Writer renders transactions as ledger text blocks, each followed by a
// blank line. It carries no state between transactions beyond the indent.
type Writer struct {
	w      io.Writer
	indent string
}

// NewWriter returns a Writer with the default indent width.
func NewWriter(w io.Writer) *Writer {
	return NewWriterIndent(w, DefaultIndent)
}

// NewWriterIndent returns a Writer that indents legs and tags by width spaces.
func NewWriterIndent(w io.Writer, width int) *Writer {
	return &Writer{w: w, indent: strings.Repeat(" ", width)}
}

// WriteTransaction renders one transaction block followed by a blank line.
// The block is rendered in full before anything is written, so a rendering
// error never leaves a partial block behind.
func (w *Writer) WriteTransaction(t *Transaction) error {
	if !t.EffectiveDate.IsZero() {
		return UnsupportedFeatureError("effective dates on transactions")
	}

	buf := new(bytes.Buffer)

	buf.WriteString(t.Date.Format("2006-01-02"))

	switch t.Status {
	case StatusClear:
		buf.WriteString(" * ")
	case StatusPending:
		buf.WriteString(" ! ")
	default:
		buf.WriteString(" ")
	}

	fmt.Fprintf(buf, "%v\n", t.Payee)

	for _, p := range t.Postings {
		if !p.EffectiveDate.IsZero() {
			return UnsupportedFeatureError("effective dates on postings")
		}

		// Runs of whitespace inside account names confuse ledger, collapse
		// them to single spaces.
		buf.WriteString(w.indent)
		buf.WriteString(strings.Join(strings.Fields(p.Account), " "))
		if !p.Null {
			fmt.Fprintf(buf, "  %v %v", p.Amount.Number, p.Amount.Currency)
		}
		buf.WriteByte('\n')
	}

	for _, tag := range t.Tags {
		name := strings.Join(strings.Fields(tag.Name), "_")
		value := strings.Join(strings.Split(tag.Value, "\n"), " ")
		fmt.Fprintf(buf, "%v; :%v: %v\n", w.indent, name, value)
	}

	buf.WriteByte('\n')

	_, err := w.w.Write(buf.Bytes())
	return err
}

// WriteLedger writes all transactions to w in order using the default
// indent. The output is a complete ledger file.
func WriteLedger(w io.Writer, trs []Transaction) error {
	lw := NewWriter(w)
	for i := range trs {
		if err := lw.WriteTransaction(&trs[i]); err != nil {
			return err
		}
	}
	return nil
}
