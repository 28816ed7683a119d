package auth

import (
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/lru"

	"github.com/chainsafe/aa-bridge-middleware/pkg/types"
)

const (
	// DefaultRequestWindow bounds the age of a signed request's X-Timestamp.
	DefaultRequestWindow = 5 * time.Minute

	defaultSeenRequests = 65536
)

// replayGuard remembers signed request digests until their timestamp leaves
// the accepted window.
type replayGuard struct {
	mu   sync.Mutex
	seen lru.BasicLRU[common.Hash, time.Time]
}

func newReplayGuard(capacity int) *replayGuard {
	return &replayGuard{seen: lru.NewBasicLRU[common.Hash, time.Time](capacity)}
}

// observe records (caller, digest) and reports false if it was already seen
// and has not expired.
func (g *replayGuard) observe(caller types.Address, digest []byte, expires, now time.Time) bool {
	key := Hash(caller[:], digest)

	g.mu.Lock()
	defer g.mu.Unlock()
	if until, ok := g.seen.Get(key); ok && now.Before(until) {
		return false
	}
	g.seen.Add(key, expires)
	return true
}
