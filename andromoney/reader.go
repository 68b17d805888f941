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

/*
Package andromoney classifies rows of an AndroMoney CSV export into
double-entry transactions.

Every export row lands in one of four archetypes: opening balance,
transfer, income, or expense. The archetype decides how the category and
sub-category columns map onto the two account legs, and which account-type
namespace each leg gets when the transaction is converted to ledger form.
*/
package andromoney

import (
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ckliang/andro2ledger/ledger"
)

// Kind is the transaction archetype an export row classifies into.
type Kind int

const (
	KindOpening  Kind = iota // SYSTEM rows holding the opening balance of an account.
	KindTransfer             // Money moved between two of the user's own accounts.
	KindIncome               // Money arriving from outside.
	KindExpense              // Everything else. Any unrecognized category is an expense.
)

func (k Kind) String() string {
	switch k {
	case KindOpening:
		return "Opening"
	case KindTransfer:
		return "Transfer"
	case KindIncome:
		return "Income"
	default:
		return "Expense"
	}
}

// Namespaces returns the account-type prefixes applied to the from and to
// legs of this archetype when converting to ledger form.
func (k Kind) Namespaces() (from, to string) {
	switch k {
	case KindOpening:
		return "Equity", "Asset"
	case KindTransfer:
		return "Asset", "Asset"
	case KindIncome:
		return "Income", "Asset"
	default:
		return "Asset", "Expenses"
	}
}

// Category and marker values as they appear in the export.
const (
	categorySystem   = "SYSTEM"
	categoryTransfer = "Transfer"
	categoryIncome   = "Income"

	subCategoryInit = "INIT_AMOUNT"
	openingAccount  = "Opening Balances"
)

// Opening balances at or below this are placeholder rows the app emits for
// every account. They are filtered out, not converted.
var zeroThreshold = decimal.New(1, -6)

// Transaction is one classified export row.
type Transaction struct {
	ID    int64
	Kind  Kind
	Time  time.Time
	Payee string

	// Bare account names, no namespace prefix. To holds the amount when
	// converted to ledger form, From is the balancing leg.
	From string
	To   string

	Amount ledger.Amount

	Remark   string
	Project  string
	UID      string
	Periodic string

	Status    int // Valid only if HasStatus. Always 0 or 1.
	HasStatus bool
}

// RowSource yields one export row at a time and io.EOF when the input is
// exhausted. *csv.Reader satisfies it.
type RowSource interface {
	Read() ([]string, error)
}

// Reader classifies AndroMoney export rows into Transactions. It consumes
// its source in a single pass and cannot be restarted, build a fresh one
// to reprocess.
type Reader struct {
	src RowSource

	// Date of the most recent dated row. Opening-balance rows are dated
	// here rather than at their own date field: the app stamps them with
	// the export date, which would scatter them through the file.
	currDate time.Time
}

// NewReader returns a Reader over src. initDate is the date given to any
// opening-balance rows seen before the first dated transaction.
func NewReader(src RowSource, initDate time.Time) *Reader {
	return &Reader{src: src, currDate: initDate}
}

// Next returns the next transaction, or io.EOF once the source is
// exhausted. Zero-amount opening-balance rows are skipped silently, which
// is why this loops instead of returning once per source row.
func (r *Reader) Next() (*Transaction, error) {
	for {
		row, err := r.src.Read()
		if err != nil {
			return nil, err
		}

		rec, err := parseRecord(row)
		if err != nil {
			return nil, err
		}

		if rec.hasStatus && rec.status != 0 && rec.status != 1 {
			return nil, &DataIntegrityError{
				Reason: fmt.Sprintf("status must be 0 or 1, got %v", rec.status),
				Record: row,
			}
		}

		t := &Transaction{
			ID:        rec.id,
			Time:      rec.time,
			Amount:    ledger.Amount{Number: rec.amount, Currency: rec.currency},
			From:      rec.from,
			To:        rec.to,
			Remark:    rec.remark,
			Project:   rec.project,
			UID:       rec.uid,
			Periodic:  rec.periodic,
			Status:    rec.status,
			HasStatus: rec.hasStatus,
		}

		switch rec.category {
		case categorySystem:
			if rec.subCategory != subCategoryInit {
				return nil, &DataIntegrityError{
					Reason: fmt.Sprintf("SYSTEM row with sub-category %q, want %q", rec.subCategory, subCategoryInit),
					Record: row,
				}
			}
			if rec.amountVal.Cmp(zeroThreshold) <= 0 {
				continue
			}
			t.Kind = KindOpening
			t.Payee = rec.subCategory
			t.Time = r.currDate
			t.From = openingAccount
		case categoryTransfer:
			t.Kind = KindTransfer
			t.Payee = rec.subCategory
			r.currDate = rec.time
		case categoryIncome:
			t.Kind = KindIncome
			t.From = rec.subCategory
			r.currDate = rec.time
		default:
			t.Kind = KindExpense
			t.To = rec.category + ":" + rec.subCategory
			r.currDate = rec.time
		}

		return t, nil
	}
}

// Ledger converts the classified transaction to its ledger form: the
// namespaced to-leg carrying the amount, the from-leg left null to balance,
// and the AndroMoney metadata tags in their fixed order.
func (t *Transaction) Ledger() *ledger.Transaction {
	from, to := t.Kind.Namespaces()

	// The uid tag always goes out, holding the column verbatim even when it
	// is empty. Inventing a value here would make the output differ from
	// run to run.
	tags := []ledger.Tag{
		{Name: "AndroMoney_uid", Value: t.UID},
		{Name: "AndroMoney_time", Value: t.Time.Format("1504")},
	}
	if t.HasStatus {
		tags = append(tags, ledger.Tag{Name: "AndroMoney_status", Value: strconv.Itoa(t.Status)})
	}
	if t.Project != "" {
		tags = append(tags, ledger.Tag{Name: "AndroMoney_project", Value: t.Project})
	}
	if t.Remark != "" {
		tags = append(tags, ledger.Tag{Name: "AndroMoney_remark", Value: t.Remark})
	}

	return &ledger.Transaction{
		Date:   t.Time,
		Status: ledger.StatusClear,
		Payee:  t.Payee,
		Postings: []ledger.Posting{
			{Account: to + ":" + t.To, Amount: t.Amount},
			{Account: from + ":" + t.From, Null: true},
		},
		Tags: tags,
	}
}
