package util

import (
	"crypto/md5"
	"encoding/hex"
	"strings"

	"github.com/ardiansf/career-copilot/internal/dto"
)

// HashAspiration fingerprints an aspiration by content. Not wired into the
// lookup path; the latest/history reads are employee-keyed. Kept as the
// extension point for a per-aspiration cache.
func HashAspiration(asp dto.Aspiration) string {
	key := strings.Join([]string{
		strings.ToLower(strings.TrimSpace(asp.FunctionArea)),
		strings.ToLower(strings.TrimSpace(asp.ShortTerm)),
		strings.ToLower(strings.TrimSpace(asp.LongTerm)),
	}, "|")
	sum := md5.Sum([]byte(key))
	return hex.EncodeToString(sum[:])
}
