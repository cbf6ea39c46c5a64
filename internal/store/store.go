// Package store persists the account table as a flat CSV file, the system of
// record for the ledger. The file is rewritten in full on every save; writes
// go through a temp file and an atomic rename so a crash mid-write can never
// corrupt the previous table.
package store

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/minibank/minibank/internal/domain"
)

var accountHeader = []string{
	"account_id", "first_name", "last_name", "age",
	"state", "job", "account_type", "balance",
}

// AccountRecord is one persisted account row.
type AccountRecord struct {
	ID      string
	Profile domain.Profile
	Balance decimal.Decimal
}

// FileStore reads and rewrites one CSV account table.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Path() string { return s.path }

// Load reads the whole account table. A missing file is not an error: it
// returns (nil, nil) so the caller can seed a fresh table.
func (s *FileStore) Load() ([]AccountRecord, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("Load: %w", err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("Load: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	if !slices.Equal(rows[0], accountHeader) {
		return nil, fmt.Errorf("Load: unexpected header %v", rows[0])
	}

	records := make([]AccountRecord, 0, len(rows)-1)
	for i, row := range rows[1:] {
		rec, err := parseAccountRow(row)
		if err != nil {
			return nil, fmt.Errorf("Load: row %d: %w", i+2, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

// Save rewrites the full table. The new content is staged in a sibling temp
// file, synced, then renamed over the old table.
func (s *FileStore) Save(records []AccountRecord) error {
	tmp := s.path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("Save: %w", err)
	}

	w := csv.NewWriter(f)
	writeErr := w.Write(accountHeader)
	for _, rec := range records {
		if writeErr != nil {
			break
		}
		writeErr = w.Write(accountRow(rec))
	}
	if writeErr == nil {
		w.Flush()
		writeErr = w.Error()
	}
	if writeErr == nil {
		writeErr = f.Sync()
	}
	if closeErr := f.Close(); writeErr == nil {
		writeErr = closeErr
	}
	if writeErr != nil {
		os.Remove(tmp)
		return fmt.Errorf("Save: %w", writeErr)
	}

	if err := os.Rename(tmp, s.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("Save: %w", err)
	}
	return nil
}

func accountRow(rec AccountRecord) []string {
	return []string{
		rec.ID,
		rec.Profile.FirstName,
		rec.Profile.LastName,
		strconv.Itoa(rec.Profile.Age),
		rec.Profile.State,
		string(rec.Profile.Job),
		string(rec.Profile.Type),
		rec.Balance.StringFixed(2),
	}
}

func parseAccountRow(row []string) (AccountRecord, error) {
	if len(row) != len(accountHeader) {
		return AccountRecord{}, fmt.Errorf("parseAccountRow: got %d columns, want %d", len(row), len(accountHeader))
	}
	age, err := strconv.Atoi(row[3])
	if err != nil {
		return AccountRecord{}, fmt.Errorf("parseAccountRow: age: %w", err)
	}
	if age < domain.MinAge || age > domain.MaxAge {
		return AccountRecord{}, fmt.Errorf("parseAccountRow: age %d outside %d-%d", age, domain.MinAge, domain.MaxAge)
	}
	job, err := domain.ParseJob(row[5])
	if err != nil {
		return AccountRecord{}, fmt.Errorf("parseAccountRow: %w", err)
	}
	typ, err := domain.ParseAccountType(row[6])
	if err != nil {
		return AccountRecord{}, fmt.Errorf("parseAccountRow: %w", err)
	}
	balance, err := decimal.NewFromString(row[7])
	if err != nil {
		return AccountRecord{}, fmt.Errorf("parseAccountRow: balance: %w", err)
	}
	if balance.Sign() < 0 {
		return AccountRecord{}, fmt.Errorf("parseAccountRow: negative balance %s", row[7])
	}
	return AccountRecord{
		ID: row[0],
		Profile: domain.Profile{
			FirstName: row[1],
			LastName:  row[2],
			Age:       age,
			State:     row[4],
			Job:       job,
			Type:      typ,
		},
		Balance: balance,
	}, nil
}
