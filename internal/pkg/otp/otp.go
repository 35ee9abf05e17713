package otp

import (
	"context"
	"crypto/rand"
	"errors"
	"math/big"
	"strconv"
	"time"

	"github.com/shandysiswandi/godo/internal/pkg/kvstore"
)

var (
	// ErrCodeNotFound indicates no active code exists for the
	// identity: never requested, already consumed, or expired.
	ErrCodeNotFound = errors.New("otp code not found")

	// ErrCodeMismatch indicates the submitted code does not match the
	// active one. The active code stays valid until it expires.
	ErrCodeMismatch = errors.New("otp code mismatch")
)

// Codes are drawn uniformly from [1000,9999]. The range deliberately
// excludes leading-zero values; widening it to 0000-9999 would change
// the published code format and collision odds.
const (
	codeMin = 1000
	codeMax = 9999
)

const defaultTTL = 5 * time.Minute

// Issued conveys a freshly generated code and its validity window.
type Issued struct {
	Code      string
	ExpiresIn time.Duration
}

// Manager is the OTP service contract.
type Manager interface {
	RequestCode(ctx context.Context, identity string) (Issued, error)
	VerifyCode(ctx context.Context, identity, code string) error
	ResendCode(ctx context.Context, identity string) (Issued, error)
	RemainingValidity(ctx context.Context, identity string) (time.Duration, error)
	HasActiveCode(ctx context.Context, identity string) (bool, error)
}

// StoreManager implements Manager on a kvstore.Store. The store's TTL
// is the single source of truth for expiry; the manager never reads a
// clock, which avoids skew between issuance and verification.
type StoreManager struct {
	store kvstore.Store
	ttl   time.Duration
}

// Option configures the StoreManager.
type Option func(*StoreManager)

// WithTTL sets the validity window for issued codes.
func WithTTL(d time.Duration) Option {
	return func(m *StoreManager) {
		if d > 0 {
			m.ttl = d
		}
	}
}

// NewStoreManager creates a manager backed by the given store.
func NewStoreManager(store kvstore.Store, opts ...Option) *StoreManager {
	m := &StoreManager{store: store, ttl: defaultTTL}
	for _, opt := range opts {
		opt(m)
	}

	return m
}

// RequestCode generates a fresh code for identity and stores it with
// the configured TTL, replacing any previously active code. There is
// no uniqueness check against earlier codes.
func (m *StoreManager) RequestCode(ctx context.Context, identity string) (Issued, error) {
	code, err := generateCode()
	if err != nil {
		return Issued{}, err
	}

	if err := m.store.Set(ctx, identity, code, m.ttl); err != nil {
		return Issued{}, err
	}

	return Issued{Code: code, ExpiresIn: m.ttl}, nil
}

// VerifyCode checks the submitted code against the active one.
//
// Absent entries fail with ErrCodeNotFound and mismatches with
// ErrCodeMismatch; a mismatch does not consume the active code. On a
// match the entry is deleted atomically, so concurrent submissions of
// the same correct code yield exactly one success.
func (m *StoreManager) VerifyCode(ctx context.Context, identity, code string) error {
	stored, err := m.store.Get(ctx, identity)
	if errors.Is(err, kvstore.ErrNotFound) {
		return ErrCodeNotFound
	}
	if err != nil {
		return err
	}

	if stored != code {
		return ErrCodeMismatch
	}

	deleted, err := m.store.CompareAndDelete(ctx, identity, code)
	if err != nil {
		return err
	}
	if !deleted {
		// Lost the race to a concurrent verify or to expiry.
		return ErrCodeNotFound
	}

	return nil
}

// ResendCode invalidates any existing code and issues a new one,
// regardless of whether the prior code was still valid.
func (m *StoreManager) ResendCode(ctx context.Context, identity string) (Issued, error) {
	if err := m.store.Delete(ctx, identity); err != nil {
		return Issued{}, err
	}

	return m.RequestCode(ctx, identity)
}

// RemainingValidity reports how long the active code stays valid, or
// ErrCodeNotFound when none is active.
func (m *StoreManager) RemainingValidity(ctx context.Context, identity string) (time.Duration, error) {
	d, err := m.store.TTL(ctx, identity)
	if errors.Is(err, kvstore.ErrNotFound) {
		return 0, ErrCodeNotFound
	}
	if err != nil {
		return 0, err
	}

	return d, nil
}

// HasActiveCode reports whether an unexpired code exists for identity.
func (m *StoreManager) HasActiveCode(ctx context.Context, identity string) (bool, error) {
	return m.store.Exists(ctx, identity)
}

func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(codeMax-codeMin+1))
	if err != nil {
		return "", err
	}

	return strconv.FormatInt(n.Int64()+codeMin, 10), nil
}
