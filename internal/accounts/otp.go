package accounts

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// OTPStore keeps short-lived, single-use verification codes keyed by email.
type OTPStore interface {
	Put(email, code string)
	// Consume checks the code for the email and, on match, removes it so it
	// cannot be replayed. A miss covers both wrong and expired codes.
	Consume(email, code string) bool
}

// CacheOTPStore backs OTPStore with an expiring cache so OTP lifetime is
// enforced by the store itself rather than checked by hand per request.
type CacheOTPStore struct {
	cache *gocache.Cache
}

// NewCacheOTPStore creates a store whose entries expire after ttl.
func NewCacheOTPStore(ttl time.Duration) *CacheOTPStore {
	if ttl <= 0 {
		ttl = 15 * time.Minute
	}
	return &CacheOTPStore{cache: gocache.New(ttl, ttl)}
}

func (s *CacheOTPStore) Put(email, code string) {
	s.cache.SetDefault(email, code)
}

func (s *CacheOTPStore) Consume(email, code string) bool {
	stored, ok := s.cache.Get(email)
	if !ok {
		return false
	}
	if stored != code {
		return false
	}
	s.cache.Delete(email)
	return true
}

// generateOTP returns a 6-digit numeric code.
func generateOTP() string {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return fmt.Sprintf("%06d", time.Now().UnixNano()%900000+100000)
	}
	return fmt.Sprintf("%06d", n.Int64()+100000)
}
