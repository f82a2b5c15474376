package auditlog

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/heartmarshall/twitter-backend/internal/domain"
)

const maxLineSize = 1 << 20

// Reader loads every persisted audit line, rotated backups included.
type Reader struct {
	path string
}

// NewReader creates a reader for the log at path.
func NewReader(path string) *Reader {
	return &Reader{path: path}
}

// ReadAll returns all records in write order: rotated backups oldest first,
// then the active file. Lines that are not JSON objects are skipped.
func (r *Reader) ReadAll(ctx context.Context) ([]domain.LogRecord, error) {
	backups, err := r.backups()
	if err != nil {
		return nil, err
	}

	records := make([]domain.LogRecord, 0)
	for _, p := range append(backups, r.path) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		records, err = readFile(p, records)
		if err != nil {
			return nil, err
		}
	}
	return records, nil
}

// backups lists rotated files named <name>-<timestamp><ext>. The timestamp
// layout sorts lexicographically in chronological order.
func (r *Reader) backups() ([]string, error) {
	ext := filepath.Ext(r.path)
	prefix := strings.TrimSuffix(r.path, ext) + "-"

	matches, err := filepath.Glob(globEscape(prefix) + "*" + ext)
	if err != nil {
		return nil, fmt.Errorf("auditlog: list backups: %w", err)
	}
	sort.Strings(matches)
	return matches, nil
}

func readFile(path string, into []domain.LogRecord) ([]domain.LogRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("auditlog: open %s: %w: %v", path, domain.ErrLogUnavailable, err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for sc.Scan() {
		line := sc.Bytes()
		if len(bytes.TrimSpace(line)) == 0 {
			continue
		}
		var rec domain.LogRecord
		if err := json.Unmarshal(line, &rec); err != nil || rec == nil {
			continue
		}
		into = append(into, rec)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("auditlog: read %s: %w: %v", path, domain.ErrLogUnavailable, err)
	}
	return into, nil
}

func globEscape(s string) string {
	r := strings.NewReplacer(`[`, `\[`, `*`, `\*`, `?`, `\?`)
	return r.Replace(s)
}
