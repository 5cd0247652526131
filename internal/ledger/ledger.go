// Package ledger persists label assignments as a CSV file keyed by image path.
//
// The ledger holds at most one row per image path: assigning a new label to
// an already-labeled image replaces its row. Every mutation rewrites the CSV
// in full through a temp-file rename, so a reader (or a crash) never observes
// a torn row.
package ledger

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"time"
)

// TimestampFormat is the layout used for rows written by this application.
const TimestampFormat = time.RFC3339

// header is the fixed CSV header row.
var header = []string{"timestamp", "image_path", "label"}

// Row is a single label assignment. The timestamp is kept as the verbatim
// text from the CSV so rows written by other tools round-trip unchanged.
type Row struct {
	Timestamp string
	ImagePath string
	Label     string
}

// Ledger maps image paths to their assigned label and keeps the backing CSV
// file consistent with the in-memory mapping after every mutation.
type Ledger struct {
	path string
	rows map[string]Row
}

// New creates a ledger backed by the CSV file at path. The file is not
// touched until Load or Upsert is called.
func New(path string) *Ledger {
	return &Ledger{
		path: path,
		rows: make(map[string]Row),
	}
}

// Path returns the backing CSV file path.
func (l *Ledger) Path() string {
	return l.path
}

// Load parses the backing CSV if it exists, replacing the in-memory mapping.
// A missing file yields an empty ledger and no error. Rows with the wrong
// column count are skipped rather than aborting the load; the count of
// skipped rows is returned so the caller can surface a warning. Rows whose
// image no longer exists in the corpus are kept to avoid silent data loss.
// When the file contains several rows for one path, the last row wins.
func (l *Ledger) Load() (skipped int, err error) {
	file, err := os.Open(l.path)
	if os.IsNotExist(err) {
		l.rows = make(map[string]Row)
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to open ledger: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1 // column count validated per row below

	rows := make(map[string]Row)
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// A quoting error spoils one record; the reader resumes on
			// the next line.
			skipped++
			continue
		}
		if len(record) != len(header) {
			skipped++
			continue
		}
		if record[0] == header[0] && record[1] == header[1] && record[2] == header[2] {
			continue // header row
		}
		rows[record[1]] = Row{
			Timestamp: record[0],
			ImagePath: record[1],
			Label:     record[2],
		}
	}

	l.rows = rows
	return skipped, nil
}

// Upsert inserts or replaces the row for imagePath and rewrites the CSV.
// If the write fails the in-memory mapping is rolled back, so the assignment
// is treated as not having happened and the caller can retry.
func (l *Ledger) Upsert(imagePath, label string, ts time.Time) error {
	prev, existed := l.rows[imagePath]

	l.rows[imagePath] = Row{
		Timestamp: ts.Format(TimestampFormat),
		ImagePath: imagePath,
		Label:     label,
	}

	if err := l.save(); err != nil {
		if existed {
			l.rows[imagePath] = prev
		} else {
			delete(l.rows, imagePath)
		}
		return err
	}
	return nil
}

// Get returns the label currently assigned to imagePath.
func (l *Ledger) Get(imagePath string) (label string, ok bool) {
	row, ok := l.rows[imagePath]
	return row.Label, ok
}

// Len returns the number of rows, including rows for images outside the
// active corpus.
func (l *Ledger) Len() int {
	return len(l.rows)
}

// Rows returns all rows sorted by image path.
func (l *Ledger) Rows() []Row {
	rows := make([]Row, 0, len(l.rows))
	for _, row := range l.rows {
		rows = append(rows, row)
	}
	sort.Slice(rows, func(i, j int) bool {
		return rows[i].ImagePath < rows[j].ImagePath
	})
	return rows
}

// CountByLabel tallies assignments over the active corpus only. Every label
// in labelSet is present in the result, zero included, and unlabeled is the
// number of corpus images with no row. Rows for images outside the corpus
// contribute to no bucket.
func (l *Ledger) CountByLabel(labelSet, corpus []string) (counts map[string]int, unlabeled int) {
	counts = make(map[string]int, len(labelSet))
	for _, label := range labelSet {
		counts[label] = 0
	}
	for _, path := range corpus {
		row, ok := l.rows[path]
		if !ok {
			unlabeled++
			continue
		}
		if _, known := counts[row.Label]; known {
			counts[row.Label]++
		} else {
			// A row labeled outside the current label set still occupies
			// the image, so it is not unlabeled either.
			counts[row.Label] = 1
		}
	}
	return counts, unlabeled
}

// save rewrites the full CSV atomically: rows are written to a temp file in
// the destination directory and renamed over the old file, so a concurrent
// read observes either the old complete ledger or the new one.
func (l *Ledger) save() error {
	dir := filepath.Dir(l.path)
	tmp, err := os.CreateTemp(dir, ".labels-*.csv")
	if err != nil {
		return fmt.Errorf("failed to create ledger temp file: %w", err)
	}

	writer := csv.NewWriter(tmp)
	writeErr := writer.Write(header)
	if writeErr == nil {
		for _, row := range l.Rows() {
			if writeErr = writer.Write([]string{row.Timestamp, row.ImagePath, row.Label}); writeErr != nil {
				break
			}
		}
	}
	if writeErr == nil {
		writer.Flush()
		writeErr = writer.Error()
	}
	if closeErr := tmp.Close(); writeErr == nil {
		writeErr = closeErr
	}
	if writeErr != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write ledger: %w", writeErr)
	}

	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write ledger: %w", err)
	}
	if err := os.Rename(tmp.Name(), l.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to replace ledger: %w", err)
	}
	return nil
}
