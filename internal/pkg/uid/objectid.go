package uid

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"os"
	"strings"
	"sync/atomic"
	"time"
)

// ErrNoNodeIdentity is returned when neither /etc/machine-id nor the hostname
// yields a usable node identity.
var ErrNoNodeIdentity = errors.New("uid: no stable node identity available")

// ObjectID generates 64-character hex identifiers that are unique across
// processes and hosts. The layout is a 6-byte millisecond timestamp, a 6-byte
// node fingerprint, a 2-byte pid, a 4-byte counter and 14 random bytes, so
// the IDs sort roughly by creation time.
type ObjectID struct {
	node    [6]byte
	pid     uint16
	counter atomic.Uint32
}

// NewObjectID builds a generator bound to this host and process.
func NewObjectID() (*ObjectID, error) {
	identity, err := nodeIdentity()
	if err != nil {
		return nil, err
	}

	g := &ObjectID{pid: uint16(os.Getpid())}
	sum := sha256.Sum256([]byte(identity))
	copy(g.node[:], sum[:6])

	var seed [4]byte
	if _, err := rand.Read(seed[:]); err != nil {
		return nil, err
	}
	g.counter.Store(binary.BigEndian.Uint32(seed[:]))

	return g, nil
}

func nodeIdentity() (string, error) {
	if b, err := os.ReadFile("/etc/machine-id"); err == nil {
		if s := strings.TrimSpace(string(b)); s != "" {
			return s, nil
		}
	}
	if h, err := os.Hostname(); err == nil {
		if h = strings.TrimSpace(h); h != "" {
			return h, nil
		}
	}
	return "", ErrNoNodeIdentity
}

// Generate returns a new identifier.
func (g *ObjectID) Generate() string {
	var raw [32]byte

	ms := uint64(time.Now().UnixMilli())
	raw[0] = byte(ms >> 40)
	raw[1] = byte(ms >> 32)
	binary.BigEndian.PutUint32(raw[2:6], uint32(ms))

	copy(raw[6:12], g.node[:])
	binary.BigEndian.PutUint16(raw[12:14], g.pid)
	binary.BigEndian.PutUint32(raw[14:18], g.counter.Add(1))

	if _, err := rand.Read(raw[18:]); err != nil {
		// Without entropy, derive the tail from the deterministic prefix so
		// the ID stays unique per counter value.
		sum := sha256.Sum256(raw[:18])
		copy(raw[18:], sum[:14])
	}

	return hex.EncodeToString(raw[:])
}
