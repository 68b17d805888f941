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
Package ledger contains a minimal model of Ledger CLI transactions and a
writer that renders them as plain text blocks.

This only covers what a one-way converter needs: simple transactions with
one priced leg, one balancing leg, and some metadata tags. There is no
parser here, this package writes ledger files and never reads them back.
*/
package ledger

import (
	"time"

	"golang.org/x/exp/slices"
)

type status int

// Status constants for Transaction.Status
const (
	StatusUndefined = status(iota)
	StatusPending
	StatusClear
)

// Amount is a money value: decimal text plus a currency code. The number is
// carried verbatim from the source, it never round-trips through a float.
type Amount struct {
	Number   string // 12.50
	Currency string // USD
}

// Posting is a single account leg in a Transaction.
type Posting struct {
	Account string // Account:Name
	Amount  Amount // 12.50 USD
	Null    bool   // True if the amount is implied. Amount may or may not hold a valid value.

	// EffectiveDate has no rendering rule. The Writer refuses any posting
	// where this is set rather than dropping it on the floor.
	EffectiveDate time.Time
}

// Tag is one metadata key/value pair. Tags are an ordered list rather than
// a map, the writer emits them in slice order.
type Tag struct {
	Name  string
	Value string
}

// Transaction is a single transaction destined for a ledger file.
type Transaction struct {
	Date time.Time // 2020-10-10

	// EffectiveDate has no rendering rule, same as on postings. The Writer
	// refuses any transaction where this is set.
	EffectiveDate time.Time

	Status status //   | ! | * (optional)
	Payee  string

	Postings []Posting
	Tags     []Tag
}

// CleanCopy takes a perfect copy of the transaction object, safe for editing
// without making any changes to the parent.
func (t *Transaction) CleanCopy() *Transaction {
	nt := *t
	nt.Postings = slices.Clone(t.Postings)
	nt.Tags = slices.Clone(t.Tags)
	return &nt
}
