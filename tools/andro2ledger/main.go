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

package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/ckliang/andro2ledger/andromoney"
	"github.com/ckliang/andro2ledger/ledger"
	"github.com/ckliang/andro2ledger/tools"
)

var usage string = `Usage: andro2ledger [options] <export.csv>

Converts an AndroMoney CSV export to a ledger file. The output file is
regenerated whole on every run.

	-h, -help
		Show this help.
	-output <file> (default: input path with a .ledger extension)
		Write the ledger to this file.
	-ignore_row <n> (default 2)
		Skip this many leading rows. The export ships two header rows.
	-init_date <YYYYMMDD> (default 20160824)
		Date given to opening-balance rows that come before any dated
		transaction.
`

var output string
var ignoreRows int
var initDate string
var help bool

func main() {
	flag.StringVar(&output, "output", "", "file to write the ledger to")
	flag.IntVar(&ignoreRows, "ignore_row", 2, "number of leading rows to skip")
	flag.StringVar(&initDate, "init_date", "20160824", "date for leading opening balances")
	flag.BoolVar(&help, "help", false, "show this help")
	flag.BoolVar(&help, "h", false, "show this help")
	flag.Parse()
	if help {
		fmt.Print(usage)
		os.Exit(0)
	}

	input := flag.Arg(0)
	tools.HandleErrS(input == "", "No input file given.")

	start, err := time.Parse("20060102", initDate)
	tools.HandleErrS(err != nil, fmt.Sprintf("-init_date is not a YYYYMMDD date: %v", initDate))

	if output == "" {
		output = tools.DefaultOutputPath(input)
	}

	in := tools.HandleErrV(tools.OpenExport(input))
	defer in.Close()

	rows := csv.NewReader(in)
	rows.FieldsPerRecord = -1 // Row width is checked downstream, with the record in the message.

	for i := 0; i < ignoreRows; i++ {
		if _, err := rows.Read(); err != nil {
			tools.HandleErrS(err != io.EOF, fmt.Sprint(err))
			break
		}
	}

	out := tools.HandleErrV(os.Create(output))
	defer out.Close()

	w := ledger.NewWriter(out)
	reader := andromoney.NewReader(rows, start)
	for {
		tr, err := reader.Next()
		if err == io.EOF {
			break
		}
		tools.HandleErr(err)

		tools.HandleErr(w.WriteTransaction(tr.Ledger()))
	}
}
