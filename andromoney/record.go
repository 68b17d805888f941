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
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// Column layout of an AndroMoney CSV export. The export ships two header
// rows ahead of the data, callers are expected to skip those before
// handing rows to this package.
const (
	colID = iota
	colCurrency
	colAmount
	colCategory
	colSubCategory
	colDate
	colFromAccount
	colToAccount
	colRemark
	colPeriodic
	colProject
	colPayee
	colUID
	colTime
	colStatus

	numCols
)

// record is one raw export row with the positional fields pulled out and
// typed. The raw payee column is deliberately not carried over: the app
// fills it in every archetype from other fields, so the column itself
// holds nothing usable.
type record struct {
	id          int64
	currency    string
	amount      string          // Verbatim decimal text, emitted as-is.
	amountVal   decimal.Decimal // Parsed form, used only for the zero filter.
	category    string
	subCategory string
	time        time.Time
	from        string
	to          string
	remark      string
	periodic    string
	project     string
	uid         string
	status      int
	hasStatus   bool
}

func parseRecord(row []string) (*record, error) {
	if len(row) < numCols {
		return nil, &ParseError{Field: "row", Record: row,
			Err: fmt.Errorf("need at least %v fields, have %v", numCols, len(row))}
	}

	id, err := strconv.ParseInt(row[colID], 10, 64)
	if err != nil {
		return nil, &ParseError{Field: "id", Record: row, Err: err}
	}

	amount, err := decimal.NewFromString(row[colAmount])
	if err != nil {
		return nil, &ParseError{Field: "amount", Record: row, Err: err}
	}

	// The time-of-day column ranges from "0" to "2359", pad it back out to
	// four digits before gluing it to the date.
	hhmm := row[colTime]
	for len(hhmm) < 4 {
		hhmm = "0" + hhmm
	}
	ts, err := time.Parse("200601021504", row[colDate]+hhmm)
	if err != nil {
		return nil, &ParseError{Field: "time", Record: row, Err: err}
	}

	rec := &record{
		id:          id,
		currency:    row[colCurrency],
		amount:      row[colAmount],
		amountVal:   amount,
		category:    row[colCategory],
		subCategory: row[colSubCategory],
		time:        ts,
		from:        row[colFromAccount],
		to:          row[colToAccount],
		remark:      row[colRemark],
		periodic:    row[colPeriodic],
		project:     row[colProject],
		uid:         row[colUID],
	}

	if row[colStatus] != "" {
		s, err := strconv.Atoi(row[colStatus])
		if err != nil {
			return nil, &ParseError{Field: "status", Record: row, Err: err}
		}
		rec.status, rec.hasStatus = s, true
	}

	return rec, nil
}
