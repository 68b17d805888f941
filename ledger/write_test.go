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

package ledger_test

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/ckliang/andro2ledger/ledger"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// This is a simple sanity check that makes sure a normal transaction block
// renders exactly as expected.
func TestWriteTransaction(t *testing.T) {
	tr := &ledger.Transaction{
		Date:   date(2021, 3, 5),
		Status: ledger.StatusClear,
		Payee:  "Bob",
		Postings: []ledger.Posting{
			{Account: "Expenses:Food:Lunch", Amount: ledger.Amount{Number: "12.50", Currency: "USD"}},
			{Account: "Asset:Checking", Null: true},
		},
		Tags: []ledger.Tag{
			{Name: "AndroMoney_uid", Value: "123"},
			{Name: "AndroMoney_time", Value: "1230"},
		},
	}

	buf := new(bytes.Buffer)
	err := ledger.NewWriter(buf).WriteTransaction(tr)
	if err != nil {
		t.Fatal(err)
	}

	want := "2021-03-05 * Bob\n" +
		"    Expenses:Food:Lunch  12.50 USD\n" +
		"    Asset:Checking\n" +
		"    ; :AndroMoney_uid: 123\n" +
		"    ; :AndroMoney_time: 1230\n" +
		"\n"
	if buf.String() != want {
		t.Errorf("Incorrect block:\n%q\nwant:\n%q", buf.String(), want)
	}
}

func TestWriteCollapsesWhitespace(t *testing.T) {
	tr := &ledger.Transaction{
		Date:   date(2021, 3, 5),
		Status: ledger.StatusClear,
		Payee:  "Bob",
		Postings: []ledger.Posting{
			{Account: "Assets:C   a\tsh", Null: true},
		},
		Tags: []ledger.Tag{
			{Name: "my tag", Value: "line one\nline two"},
		},
	}

	buf := new(bytes.Buffer)
	err := ledger.NewWriter(buf).WriteTransaction(tr)
	if err != nil {
		t.Fatal(err)
	}

	want := "2021-03-05 * Bob\n" +
		"    Assets:C a sh\n" +
		"    ; :my_tag: line one line two\n" +
		"\n"
	if buf.String() != want {
		t.Errorf("Incorrect block:\n%q\nwant:\n%q", buf.String(), want)
	}
}

func TestWriteTransactionEffectiveDateFails(t *testing.T) {
	tr := &ledger.Transaction{
		Date:          date(2021, 3, 5),
		EffectiveDate: date(2021, 3, 8),
		Status:        ledger.StatusClear,
		Payee:         "Bob",
	}

	buf := new(bytes.Buffer)
	err := ledger.NewWriter(buf).WriteTransaction(tr)

	var uerr ledger.UnsupportedFeatureError
	if !errors.As(err, &uerr) {
		t.Fatalf("Expected UnsupportedFeatureError, got: %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("Partial block written after rendering error: %q", buf.String())
	}
}

func TestWritePostingEffectiveDateFails(t *testing.T) {
	tr := &ledger.Transaction{
		Date:   date(2021, 3, 5),
		Status: ledger.StatusClear,
		Payee:  "Bob",
		Postings: []ledger.Posting{
			{Account: "Asset:Checking", Null: true, EffectiveDate: date(2021, 3, 8)},
		},
	}

	buf := new(bytes.Buffer)
	err := ledger.NewWriter(buf).WriteTransaction(tr)

	var uerr ledger.UnsupportedFeatureError
	if !errors.As(err, &uerr) {
		t.Fatalf("Expected UnsupportedFeatureError, got: %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("Partial block written after rendering error: %q", buf.String())
	}
}

func TestWriteIndentWidth(t *testing.T) {
	tr := &ledger.Transaction{
		Date:   date(2021, 3, 5),
		Status: ledger.StatusClear,
		Payee:  "Bob",
		Postings: []ledger.Posting{
			{Account: "Asset:Checking", Null: true},
		},
	}

	buf := new(bytes.Buffer)
	err := ledger.NewWriterIndent(buf, 2).WriteTransaction(tr)
	if err != nil {
		t.Fatal(err)
	}

	want := "2021-03-05 * Bob\n  Asset:Checking\n\n"
	if buf.String() != want {
		t.Errorf("Incorrect block:\n%q\nwant:\n%q", buf.String(), want)
	}
}

func TestWriteLedger(t *testing.T) {
	trs := []ledger.Transaction{
		{Date: date(2021, 3, 5), Status: ledger.StatusClear, Payee: "One"},
		{Date: date(2021, 3, 6), Status: ledger.StatusClear, Payee: "Two"},
	}

	buf := new(bytes.Buffer)
	err := ledger.WriteLedger(buf, trs)
	if err != nil {
		t.Fatal(err)
	}

	want := "2021-03-05 * One\n\n2021-03-06 * Two\n\n"
	if buf.String() != want {
		t.Errorf("Incorrect output:\n%q\nwant:\n%q", buf.String(), want)
	}
}

func TestCleanCopy(t *testing.T) {
	tr := &ledger.Transaction{
		Date:     date(2021, 3, 5),
		Payee:    "Bob",
		Postings: []ledger.Posting{{Account: "Asset:Checking", Null: true}},
		Tags:     []ledger.Tag{{Name: "AndroMoney_uid", Value: "123"}},
	}

	cp := tr.CleanCopy()
	cp.Postings[0].Account = "Asset:Savings"
	cp.Tags[0].Value = "456"

	if tr.Postings[0].Account != "Asset:Checking" {
		t.Errorf("Copy shares postings with parent: %v", tr.Postings[0].Account)
	}
	if tr.Tags[0].Value != "123" {
		t.Errorf("Copy shares tags with parent: %v", tr.Tags[0].Value)
	}
}
