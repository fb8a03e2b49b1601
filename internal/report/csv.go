package report

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/bartekus/gitstat/internal/gitlog"
)

// csvHeader is the fixed export schema: one row per commit, statistics
// bypassed entirely.
const csvHeader = "hash,timestamp,author,changes,message"

// ExportCSV serializes commits to path. The message field is passed through
// unescaped, so a message containing a comma corrupts its row; that matches
// the tool's historical output and stays until an escaping policy is chosen,
// which is also why encoding/csv (which would quote) is not used here.
func ExportCSV(path string, commits []gitlog.Commit) error {
	var b strings.Builder
	b.WriteString(csvHeader + "\n")
	for _, c := range commits {
		b.WriteString(fmt.Sprintf("%s,%s,%s,%d,%s\n",
			c.Hash,
			c.Timestamp.Format(time.RFC3339),
			c.Author,
			c.Changes,
			c.Message))
	}

	if err := os.WriteFile(path, []byte(b.String()), 0o600); err != nil {
		return fmt.Errorf("writing csv to %s: %w", path, err)
	}
	return nil
}
