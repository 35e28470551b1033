package credentials

import (
	"crypto/rand"
	"math/big"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhc-clinics/hms-api/internal/httperr"
)

// TokenTTL is the validity window for verification and reset tokens.
const TokenTTL = 24 * time.Hour

const passwordCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// GenerateSystemPassword returns a random alphanumeric one-time credential.
func GenerateSystemPassword(length int) (string, error) {
	if length <= 0 {
		length = 10
	}
	return randomFrom(passwordCharset, length)
}

// GenerateVerifyCode returns a 6-digit numeric code.
func GenerateVerifyCode() (string, error) {
	return randomFrom("0123456789", 6)
}

func randomFrom(charset string, length int) (string, error) {
	out := make([]byte, length)
	max := big.NewInt(int64(len(charset)))
	for i := range out {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		out[i] = charset[n.Int64()]
	}
	return string(out), nil
}

func HashSecret(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func CheckSecret(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}

// IssueTimedToken generates a 6-digit code and returns its plaintext, hash
// and expiry instant. The plaintext is delivered out-of-band only.
func IssueTimedToken(ttl time.Duration) (plain, hash string, expiresAt time.Time, err error) {
	plain, err = GenerateVerifyCode()
	if err != nil {
		return "", "", time.Time{}, err
	}
	hash, err = HashSecret(plain)
	if err != nil {
		return "", "", time.Time{}, err
	}
	return plain, hash, time.Now().Add(ttl), nil
}

// ConsumeTimedToken validates a supplied code against the stored hash and
// expiry. Expiry is checked before the hash comparison: an expired but
// otherwise correct token must report expiry, not success or mismatch.
// The caller clears both stored fields in the same update on success.
func ConsumeTimedToken(storedHash *string, storedExpiry *time.Time, supplied string) error {
	if storedHash == nil || storedExpiry == nil {
		return httperr.ErrBusiness("invalid_token", "invalid token...")
	}
	if time.Now().After(*storedExpiry) {
		return httperr.ErrBusiness("token_expired", "token has expired...")
	}
	if !CheckSecret(*storedHash, supplied) {
		return httperr.ErrBusiness("invalid_token", "invalid token...")
	}
	return nil
}
