// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/crypto/bcrypt"

	"mediahub/config"
	domainerrors "mediahub/internal/domain/errors"
	"mediahub/internal/domain/service"
)

// bcrypt ignores anything past 72 bytes, so longer passwords are rejected outright.
const bcryptMaxPasswordBytes = 72

var defaultForbiddenWords = []string{"password", "admin", "qwerty", "123456", "letmein"}

// PasswordPolicy is the set of rules a new password must satisfy.
type PasswordPolicy struct {
	MinLength        int
	MaxLength        int
	RequireUppercase bool
	RequireLowercase bool
	RequireNumbers   bool
	RequireSpecial   bool
	ForbiddenWords   []string
}

// DefaultPasswordPolicy requires every character class and a length of 8 to 72.
func DefaultPasswordPolicy() PasswordPolicy {
	return PasswordPolicy{
		MinLength:        8,
		MaxLength:        bcryptMaxPasswordBytes,
		RequireUppercase: true,
		RequireLowercase: true,
		RequireNumbers:   true,
		RequireSpecial:   true,
		ForbiddenWords:   defaultForbiddenWords,
	}
}

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
type bcryptHasher struct {
	cost   int
	policy PasswordPolicy
}

// NewBcryptHasher is the constructor for bcryptHasher.
// It returns the implementation as a service.PasswordHasher interface.
func NewBcryptHasher() service.PasswordHasher {
	return &bcryptHasher{cost: bcrypt.DefaultCost, policy: DefaultPasswordPolicy()}
}

// NewBcryptHasherWithCost uses the default policy with a custom cost.
func NewBcryptHasherWithCost(cost int) service.PasswordHasher {
	return &bcryptHasher{cost: normalizeCost(cost), policy: DefaultPasswordPolicy()}
}

// NewBcryptHasherFromConfig builds the hasher from the auth and passwordStrength sections.
func NewBcryptHasherFromConfig(cfg *config.Config) service.PasswordHasher {
	cost := bcrypt.DefaultCost
	if cfg.Auth != nil {
		cost = normalizeCost(cfg.Auth.BcryptCost)
	}

	policy := DefaultPasswordPolicy()
	if ps := cfg.PasswordStrength; ps != nil {
		policy = PasswordPolicy{
			MinLength:        ps.MinLength,
			MaxLength:        ps.MaxLength,
			RequireUppercase: ps.RequireUppercase,
			RequireLowercase: ps.RequireLowercase,
			RequireNumbers:   ps.RequireNumbers,
			RequireSpecial:   ps.RequireSpecial,
			ForbiddenWords:   ps.ForbiddenWords,
		}
		if policy.MinLength <= 0 {
			policy.MinLength = 1
		}
		if policy.MaxLength <= 0 || policy.MaxLength > bcryptMaxPasswordBytes {
			policy.MaxLength = bcryptMaxPasswordBytes
		}
	}

	return &bcryptHasher{cost: cost, policy: policy}
}

func normalizeCost(cost int) int {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return bcrypt.DefaultCost
	}

	return cost
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

// ValidatePasswordStrength checks the password against the policy. Character classes
// are checked before forbidden words so the first message names the missing class.
func (h *bcryptHasher) ValidatePasswordStrength(password string) error {
	p := h.policy

	if len([]rune(password)) < p.MinLength {
		return strengthError(fmt.Sprintf("password must be at least %d characters long", p.MinLength))
	}
	if p.RequireLowercase && !h.hasLowercase(password) {
		return strengthError("password must contain at least one lowercase letter")
	}
	if p.RequireUppercase && !h.hasUppercase(password) {
		return strengthError("password must contain at least one uppercase letter")
	}
	if p.RequireNumbers && !h.hasNumbers(password) {
		return strengthError("password must contain at least one number")
	}
	if p.RequireSpecial && !h.hasSpecialChars(password) {
		return strengthError("password must contain at least one special character")
	}
	if h.containsForbiddenWords(password, p.ForbiddenWords) {
		return domainerrors.ErrPasswordForbiddenWords
	}
	if p.MaxLength > 0 && len(password) > p.MaxLength {
		return strengthError(fmt.Sprintf("password must be at most %d bytes long", p.MaxLength))
	}

	return nil
}

func strengthError(message string) error {
	return domainerrors.ErrPasswordStrength.WithMessage(message)
}

func (h *bcryptHasher) hasUppercase(s string) bool {
	return strings.IndexFunc(s, unicode.IsUpper) >= 0
}

func (h *bcryptHasher) hasLowercase(s string) bool {
	return strings.IndexFunc(s, unicode.IsLower) >= 0
}

func (h *bcryptHasher) hasNumbers(s string) bool {
	return strings.IndexFunc(s, unicode.IsDigit) >= 0
}

func (h *bcryptHasher) hasSpecialChars(s string) bool {
	return strings.IndexFunc(s, func(r rune) bool {
		return unicode.IsPunct(r) || unicode.IsSymbol(r)
	}) >= 0
}

func (h *bcryptHasher) containsForbiddenWords(s string, words []string) bool {
	lower := strings.ToLower(s)
	for _, w := range words {
		if w != "" && strings.Contains(lower, strings.ToLower(w)) {
			return true
		}
	}

	return false
}
