// archive.go — SQLite archival of a finished results file.
//
// Mirrors the write-then-reload shape of the sink: the search streams plain
// text for speed, and archival re-reads the finished file into a queryable
// solutions table afterwards, outside the hot path.

package results

import (
	"database/sql"
	"os"
	"strings"

	_ "github.com/mattn/go-sqlite3"
)

const archiveSchema = `
CREATE TABLE IF NOT EXISTS solutions (
	a   INTEGER NOT NULL,
	b   INTEGER NOT NULL,
	c   INTEGER NOT NULL,
	d   INTEGER NOT NULL,
	sum TEXT    NOT NULL
);
CREATE INDEX IF NOT EXISTS solutions_sum_idx ON solutions(sum);
`

// ArchiveFile loads every solution line of resultsPath into the solutions
// table at dbPath, replacing any previous archive. The sum column stays TEXT:
// SQLite integers are 64-bit and the sums are not. All inserts ride one
// transaction, so a failed archive leaves the previous contents intact.
func ArchiveFile(dbPath, resultsPath string) (int, error) {
	data, err := os.ReadFile(resultsPath)
	if err != nil {
		return 0, err
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return 0, err
	}
	defer db.Close()

	if _, err := db.Exec(archiveSchema); err != nil {
		return 0, err
	}

	tx, err := db.Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM solutions`); err != nil {
		return 0, err
	}
	stmt, err := tx.Prepare(`INSERT INTO solutions (a, b, c, d, sum) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return 0, err
	}
	defer stmt.Close()

	count := 0
	for _, line := range strings.Split(string(data), "\n") {
		if line == "" {
			continue
		}
		a, b, c, d, sum, ok := splitLine(line)
		if !ok {
			return 0, ErrMalformedLine
		}
		if _, err := stmt.Exec(int64(a), int64(b), int64(c), int64(d), sum); err != nil {
			return 0, err
		}
		count++
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return count, nil
}
