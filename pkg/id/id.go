// Package id mints ULIDs for import batch records. ULIDs sort by creation
// time, so listing batches chronologically is a plain ORDER BY on the id
// column. Fill ids are not minted here; those derive deterministically from
// content fingerprints so re-imports collapse to the same record.
package id

import (
	cryptoRand "crypto/rand"
	"encoding/binary"
	"io"
	"math/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

var (
	mu   sync.Mutex
	mono io.Reader
)

func init() {
	// Seed from crypto/rand so batch ids are unpredictable; ulid.Monotonic
	// keeps ids generated within one millisecond lexicographically
	// increasing.
	var seed int64
	_ = binary.Read(cryptoRand.Reader, binary.LittleEndian, &seed)
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	mono = ulid.Monotonic(rand.New(rand.NewSource(seed)), 0)
}

// New returns a fresh ULID string.
func New() string {
	mu.Lock()
	defer mu.Unlock()

	id, err := ulid.New(ulid.Timestamp(time.Now().UTC()), mono)
	if err != nil {
		// only possible if time goes backwards or entropy is exhausted
		panic(err)
	}
	return id.String()
}
