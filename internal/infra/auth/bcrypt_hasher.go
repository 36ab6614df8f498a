package auth

import (
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/crypto/bcrypt"

	"beautymarket/config"
	domainerrors "beautymarket/internal/domain/errors"
	"beautymarket/internal/domain/service"
)

const (
	defaultMinPasswordLength = 8
	// bcrypt ignores input past 72 bytes.
	defaultMaxPasswordLength = 72
)

var forbiddenPasswordWords = []string{"password", "admin", "qwerty", "letmein", "beautymarket"}

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
type bcryptHasher struct {
	cost   int
	policy config.PasswordStrengthConfig
}

// NewBcryptHasher builds a hasher from the auth and password strength configuration.
func NewBcryptHasher(cfg *config.Config) service.PasswordHasher {
	cost := bcrypt.DefaultCost
	if cfg.Auth != nil && cfg.Auth.BcryptCost >= bcrypt.MinCost && cfg.Auth.BcryptCost <= bcrypt.MaxCost {
		cost = cfg.Auth.BcryptCost
	}

	policy := config.PasswordStrengthConfig{
		MinLength:        defaultMinPasswordLength,
		MaxLength:        defaultMaxPasswordLength,
		RequireUppercase: true,
		RequireLowercase: true,
		RequireNumbers:   true,
	}
	if cfg.PasswordStrength != nil {
		policy = *cfg.PasswordStrength
		if policy.MinLength <= 0 {
			policy.MinLength = defaultMinPasswordLength
		}
		if policy.MaxLength <= 0 || policy.MaxLength > defaultMaxPasswordLength {
			policy.MaxLength = defaultMaxPasswordLength
		}
	}

	return &bcryptHasher{cost: cost, policy: policy}
}

// Hash generates a salted hash from a plaintext password using bcrypt.
func (h *bcryptHasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
	}

	return string(bytes), nil
}

// Check compares a plaintext password with a bcrypt hash.
func (h *bcryptHasher) Check(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// ValidatePasswordStrength enforces the configured policy and rejects common words.
func (h *bcryptHasher) ValidatePasswordStrength(password string) error {
	if len(password) < h.policy.MinLength {
		return h.strengthError("must be at least " + strconv.Itoa(h.policy.MinLength) + " characters long")
	}
	if len(password) > h.policy.MaxLength {
		return h.strengthError("must be at most " + strconv.Itoa(h.policy.MaxLength) + " bytes long")
	}
	if h.policy.RequireLowercase && !hasRune(password, unicode.IsLower) {
		return h.strengthError("must contain at least one lowercase letter")
	}
	if h.policy.RequireUppercase && !hasRune(password, unicode.IsUpper) {
		return h.strengthError("must contain at least one uppercase letter")
	}
	if h.policy.RequireNumbers && !hasRune(password, unicode.IsDigit) {
		return h.strengthError("must contain at least one number")
	}
	if h.policy.RequireSpecial && !hasRune(password, isSpecial) {
		return h.strengthError("must contain at least one special character")
	}
	if containsForbiddenWords(password, forbiddenPasswordWords) {
		return domainerrors.ErrPasswordForbiddenWords.WrapMessage("password contains forbidden words")
	}

	return nil
}

func (h *bcryptHasher) strengthError(reason string) error {
	return domainerrors.ErrPasswordStrength.WrapMessage("password " + reason)
}

func hasRune(s string, pred func(rune) bool) bool {
	for _, r := range s {
		if pred(r) {
			return true
		}
	}

	return false
}

func isSpecial(r rune) bool {
	return unicode.IsPunct(r) || unicode.IsSymbol(r)
}

func containsForbiddenWords(password string, words []string) bool {
	lower := strings.ToLower(password)
	for _, word := range words {
		if strings.Contains(lower, word) {
			return true
		}
	}

	return false
}
