package storage

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spendwise/spendwise/internal/common"
	"github.com/spendwise/spendwise/internal/dateutil"
	"github.com/spendwise/spendwise/internal/model"
)

// fieldCount is the number of comma-separated fields in a transaction line:
// id,kind,category,amount,date,note.
const fieldCount = 6

// EncodeTransaction renders one transaction as a persisted line. Commas in
// the note are replaced with semicolons so the field count stays stable;
// the substitution is lossy and not undone on load.
func EncodeTransaction(t model.Transaction) string {
	note := strings.ReplaceAll(t.Note, ",", ";")
	return fmt.Sprintf("%d,%s,%s,%.2f,%s,%s", t.ID, t.Kind, t.Category, t.Amount, t.Date, note)
}

// ParseTransaction parses one persisted line. Any malformed line is an
// error to the caller; LoadTransactions turns that into a silent skip.
func ParseTransaction(line string) (model.Transaction, error) {
	parts := strings.SplitN(line, ",", fieldCount)
	if len(parts) != fieldCount {
		return model.Transaction{}, fmt.Errorf("expected %d fields, got %d", fieldCount, len(parts))
	}

	id, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil || id <= 0 {
		return model.Transaction{}, fmt.Errorf("bad transaction id %q", parts[0])
	}

	kind, err := model.ParseKind(parts[1])
	if err != nil {
		return model.Transaction{}, err
	}

	category := strings.TrimSpace(parts[2])
	if category == "" {
		return model.Transaction{}, common.ErrEmptyCategory
	}

	amount, err := strconv.ParseFloat(strings.TrimSpace(parts[3]), 64)
	if err != nil || amount <= 0 {
		return model.Transaction{}, fmt.Errorf("bad amount %q", parts[3])
	}

	date, err := dateutil.ParseValid(parts[4])
	if err != nil {
		return model.Transaction{}, err
	}

	return model.Transaction{
		ID:       id,
		Kind:     kind,
		Category: category,
		Amount:   amount,
		Date:     date,
		Note:     strings.TrimSpace(parts[5]),
	}, nil
}

// LoadTransactions reads a user's transaction file. A missing file is an
// empty ledger, not an error. Malformed lines are skipped and logged at
// debug level; partially corrupt files must stay loadable.
func (f *FileStore) LoadTransactions(username string) ([]model.Transaction, error) {
	file, err := os.Open(f.TransactionsPath(username))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to open transactions file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var txns []model.Transaction
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		t, err := ParseTransaction(line)
		if err != nil {
			common.LogDebug("skipping malformed transaction line", common.Fields{
				"user":   username,
				"reason": err.Error(),
			})
			continue
		}
		txns = append(txns, t)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read transactions file: %w", err)
	}
	return txns, nil
}

// SaveTransactions writes the full transaction list for a user. The write is
// atomic; on failure the previous file is untouched.
func (f *FileStore) SaveTransactions(username string, txns []model.Transaction) error {
	var b strings.Builder
	for i := range txns {
		b.WriteString(EncodeTransaction(txns[i]))
		b.WriteByte('\n')
	}
	if err := writeFileAtomic(f.TransactionsPath(username), []byte(b.String())); err != nil {
		return fmt.Errorf("failed to save transactions: %w", err)
	}
	return nil
}
