package password

import (
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

const (
	// MinCost is the lowest accepted bcrypt work factor.
	MinCost = bcrypt.MinCost
	// MaxCost is the highest accepted bcrypt work factor.
	MaxCost = bcrypt.MaxCost

	// DefaultPrefix is the version identifier stamped on generated digests.
	DefaultPrefix = "2y"

	generatedPrefix = "$2a$"
)

// ErrInvalidPrefix is returned by [NewBcrypt] for version identifiers
// other than 2a, 2b, or 2y.
var ErrInvalidPrefix = errors.New("invalid bcrypt version identifier")

// Hasher is the crypto primitive consumed by the engine. Implementations
// must be safe for concurrent use.
type Hasher interface {
	Hash(password string, cost int) (string, error)
	Verify(password, hash string) (bool, error)
}

// Bcrypt is the production [Hasher] backed by golang.org/x/crypto/bcrypt.
type Bcrypt struct {
	prefix string
}

// NewBcrypt creates a hasher that stamps digests with the given version
// identifier. An empty prefix selects [DefaultPrefix].
func NewBcrypt(prefix string) (*Bcrypt, error) {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	switch prefix {
	case "2a", "2b", "2y":
	default:
		return nil, ErrInvalidPrefix
	}
	return &Bcrypt{prefix: prefix}, nil
}

// Hash derives a 60-character bcrypt digest of password at the given
// cost. Cost is assumed to be in [MinCost, MaxCost]; out-of-range values
// surface as an error from the underlying primitive.
func (b *Bcrypt) Hash(password string, cost int) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}

	// GenerateFromPassword always emits the 2a identifier. The identifier
	// does not participate in the key schedule, so rewriting it preserves
	// the checksum.
	out := string(digest)
	if b.prefix != "2a" && strings.HasPrefix(out, generatedPrefix) {
		out = "$" + b.prefix + "$" + out[len(generatedPrefix):]
	}
	return out, nil
}

// Verify reports whether password matches the stored digest. A mismatch
// is (false, nil); a digest the primitive cannot parse is (false, err).
func (b *Bcrypt) Verify(password, hash string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	return false, err
}

var _ Hasher = (*Bcrypt)(nil)
