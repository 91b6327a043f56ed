// Package transfer encodes and decodes transaction rows as CSV for
// export/import between wallets.
package transfer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finbook-dev/finbook/internal/model"
)

// Header is the CSV header for transaction exports.
const Header = "date,type,category,description,amount"

const (
	numFields  = 5
	dateFormat = "2006-01-02"
	colDate    = 0
	colType    = 1
	colCat     = 2
	colDesc    = 3
	colAmount  = 4
)

// Export writes the header and one row per transaction in storage order.
func Export(w io.Writer, txs []*model.Transaction) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, tx := range txs {
		if err := cw.Write(marshalTransaction(tx)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// Import reads transaction rows and appends them to the wallet, returning
// the number of rows imported. The header row is discarded. Rows with fewer
// than five fields, a non-positive amount, or a parse failure are silently
// skipped; a skipped row never aborts the import. Only a failure to read
// the input itself is an error.
func Import(r io.Reader, w *model.Wallet) (int, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	// Header row. An empty file imports nothing.
	if _, err := cr.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return 0, nil
		}
		return 0, fmt.Errorf("reading header: %w", err)
	}

	imported := 0
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		var parseErr *csv.ParseError
		if errors.As(err, &parseErr) {
			continue
		}
		if err != nil {
			return imported, fmt.Errorf("reading row: %w", err)
		}

		tx, ok := unmarshalTransaction(record)
		if !ok {
			continue
		}
		w.AddTransaction(tx)
		imported++
	}
	return imported, nil
}

func marshalTransaction(tx *model.Transaction) []string {
	row := make([]string, numFields)
	row[colDate] = tx.Date.Format(dateFormat)
	row[colType] = string(tx.Type)
	row[colCat] = tx.Category
	row[colDesc] = tx.Description
	row[colAmount] = tx.Amount.String()
	return row
}

// unmarshalTransaction parses one row, reporting ok=false for rows that
// must be skipped. Any type other than INCOME is treated as EXPENSE, and
// amounts accept both '.' and ',' as the decimal separator.
func unmarshalTransaction(record []string) (*model.Transaction, bool) {
	if len(record) < numFields {
		return nil, false
	}

	date, err := time.Parse(dateFormat, strings.TrimSpace(record[colDate]))
	if err != nil {
		return nil, false
	}

	txType := model.TypeExpense
	if strings.ToUpper(strings.TrimSpace(record[colType])) == string(model.TypeIncome) {
		txType = model.TypeIncome
	}

	amount, err := decimal.NewFromString(strings.ReplaceAll(strings.TrimSpace(record[colAmount]), ",", "."))
	if err != nil || !amount.IsPositive() {
		return nil, false
	}

	return &model.Transaction{
		Type:        txType,
		Amount:      amount,
		Category:    strings.TrimSpace(record[colCat]),
		Description: strings.TrimSpace(record[colDesc]),
		Date:        date,
	}, true
}
