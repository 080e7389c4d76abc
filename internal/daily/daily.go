// internal/daily/daily.go
//
// Deterministic daily target selection.
//
// There is no finite answer list to index into: targets are generated.
// To keep the daily target stable across restarts and replicas, the
// generator is driven by a PRNG seeded from HMAC-SHA256(salt, date key),
// so the same (date, salt) pair always produces the same equation.

package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"math/rand/v2"
	"time"

	"github.com/nerdle/go-server/internal/equation"
)

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// EquationFor returns the deterministic target equation for a date.
// The HMAC keeps the target unpredictable without knowledge of the salt.
func EquationFor(date time.Time, salt string) string {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(DateKey(date)))
	sum := h.Sum(nil)
	rnd := rand.New(rand.NewPCG(
		binary.BigEndian.Uint64(sum[:8]),
		binary.BigEndian.Uint64(sum[8:16]),
	))
	return equation.New(rnd).Generate()
}
