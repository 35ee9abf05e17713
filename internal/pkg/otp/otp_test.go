package otp

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/shandysiswandi/godo/internal/pkg/kvstore"
)

func newTestManager(t *testing.T, opts ...Option) (*StoreManager, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	store, err := kvstore.NewRedisStore(context.Background(), client)
	if err != nil {
		t.Fatalf("NewRedisStore: %v", err)
	}

	return NewStoreManager(store, opts...), mr
}

func TestRequestCodeFormat(t *testing.T) {
	ctx := context.Background()
	mgr, _ := newTestManager(t, WithTTL(5*time.Minute))

	for range 50 {
		issued, err := mgr.RequestCode(ctx, "a@x.com")
		if err != nil {
			t.Fatalf("RequestCode: %v", err)
		}

		n, err := strconv.Atoi(issued.Code)
		if err != nil || n < 1000 || n > 9999 {
			t.Fatalf("code outside [1000,9999]: %q", issued.Code)
		}
		if issued.ExpiresIn != 5*time.Minute {
			t.Fatalf("unexpected validity window: %v", issued.ExpiresIn)
		}
	}
}

func TestVerifyCodeOnce(t *testing.T) {
	ctx := context.Background()
	mgr, _ := newTestManager(t)

	issued, err := mgr.RequestCode(ctx, "a@x.com")
	if err != nil {
		t.Fatalf("RequestCode: %v", err)
	}

	if err := mgr.VerifyCode(ctx, "a@x.com", issued.Code); err != nil {
		t.Fatalf("first verify: %v", err)
	}

	if err := mgr.VerifyCode(ctx, "a@x.com", issued.Code); !errors.Is(err, ErrCodeNotFound) {
		t.Fatalf("second verify must fail with ErrCodeNotFound, got %v", err)
	}
}

func TestVerifyCodeWithoutRequest(t *testing.T) {
	mgr, _ := newTestManager(t)

	err := mgr.VerifyCode(context.Background(), "nobody@x.com", "1234")
	if !errors.Is(err, ErrCodeNotFound) {
		t.Fatalf("expected ErrCodeNotFound, got %v", err)
	}
}

func TestVerifyCodeMismatchDoesNotConsume(t *testing.T) {
	ctx := context.Background()
	mgr, _ := newTestManager(t)

	issued, err := mgr.RequestCode(ctx, "a@x.com")
	if err != nil {
		t.Fatalf("RequestCode: %v", err)
	}

	wrong := "1000"
	if wrong == issued.Code {
		wrong = "1001"
	}

	if err := mgr.VerifyCode(ctx, "a@x.com", wrong); !errors.Is(err, ErrCodeMismatch) {
		t.Fatalf("expected ErrCodeMismatch, got %v", err)
	}

	// The active code survives the mismatch.
	if err := mgr.VerifyCode(ctx, "a@x.com", issued.Code); err != nil {
		t.Fatalf("correct code after mismatch: %v", err)
	}
}

func TestRequestCodeReplacesActiveCode(t *testing.T) {
	ctx := context.Background()
	mgr, _ := newTestManager(t)

	first, err := mgr.RequestCode(ctx, "a@x.com")
	if err != nil {
		t.Fatalf("RequestCode: %v", err)
	}

	var second Issued
	for {
		second, err = mgr.RequestCode(ctx, "a@x.com")
		if err != nil {
			t.Fatalf("RequestCode: %v", err)
		}
		if second.Code != first.Code {
			break
		}
	}

	if err := mgr.VerifyCode(ctx, "a@x.com", first.Code); !errors.Is(err, ErrCodeMismatch) {
		t.Fatalf("old code must no longer match, got %v", err)
	}
	if err := mgr.VerifyCode(ctx, "a@x.com", second.Code); err != nil {
		t.Fatalf("latest code must verify: %v", err)
	}
}

func TestResendCodeInvalidatesOldCode(t *testing.T) {
	ctx := context.Background()
	mgr, _ := newTestManager(t)

	first, err := mgr.RequestCode(ctx, "a@x.com")
	if err != nil {
		t.Fatalf("RequestCode: %v", err)
	}

	var second Issued
	for {
		second, err = mgr.ResendCode(ctx, "a@x.com")
		if err != nil {
			t.Fatalf("ResendCode: %v", err)
		}
		if second.Code != first.Code {
			break
		}
	}

	if err := mgr.VerifyCode(ctx, "a@x.com", first.Code); errors.Is(err, nil) {
		t.Fatalf("old code must be invalid after resend")
	}
	if err := mgr.VerifyCode(ctx, "a@x.com", second.Code); err != nil {
		t.Fatalf("reissued code must verify: %v", err)
	}
}

func TestVerifyCodeAfterExpiry(t *testing.T) {
	ctx := context.Background()
	mgr, mr := newTestManager(t, WithTTL(2*time.Minute))

	issued, err := mgr.RequestCode(ctx, "b@x.com")
	if err != nil {
		t.Fatalf("RequestCode: %v", err)
	}

	mr.FastForward(2*time.Minute + time.Second)

	if err := mgr.VerifyCode(ctx, "b@x.com", issued.Code); !errors.Is(err, ErrCodeNotFound) {
		t.Fatalf("expected ErrCodeNotFound after expiry, got %v", err)
	}
}

func TestRemainingValidity(t *testing.T) {
	ctx := context.Background()
	mgr, mr := newTestManager(t, WithTTL(5*time.Minute))

	if _, err := mgr.RemainingValidity(ctx, "a@x.com"); !errors.Is(err, ErrCodeNotFound) {
		t.Fatalf("expected ErrCodeNotFound without active code, got %v", err)
	}

	if _, err := mgr.RequestCode(ctx, "a@x.com"); err != nil {
		t.Fatalf("RequestCode: %v", err)
	}

	mr.FastForward(2 * time.Minute)

	d, err := mgr.RemainingValidity(ctx, "a@x.com")
	if err != nil {
		t.Fatalf("RemainingValidity: %v", err)
	}
	if d <= 0 || d > 3*time.Minute {
		t.Fatalf("unexpected remaining validity: %v", d)
	}
}

func TestHasActiveCode(t *testing.T) {
	ctx := context.Background()
	mgr, _ := newTestManager(t)

	ok, err := mgr.HasActiveCode(ctx, "a@x.com")
	if err != nil || ok {
		t.Fatalf("expected no active code: %v, %v", ok, err)
	}

	if _, err := mgr.RequestCode(ctx, "a@x.com"); err != nil {
		t.Fatalf("RequestCode: %v", err)
	}

	ok, err = mgr.HasActiveCode(ctx, "a@x.com")
	if err != nil || !ok {
		t.Fatalf("expected active code: %v, %v", ok, err)
	}
}

func TestConcurrentVerifySingleSuccess(t *testing.T) {
	ctx := context.Background()
	mgr, _ := newTestManager(t)

	issued, err := mgr.RequestCode(ctx, "c@x.com")
	if err != nil {
		t.Fatalf("RequestCode: %v", err)
	}

	const workers = 8
	var wg sync.WaitGroup
	results := make(chan error, workers)

	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results <- mgr.VerifyCode(ctx, "c@x.com", issued.Code)
		}()
	}
	wg.Wait()
	close(results)

	successes, notFound := 0, 0
	for err := range results {
		switch {
		case err == nil:
			successes++
		case errors.Is(err, ErrCodeNotFound):
			notFound++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}

	if successes != 1 || notFound != workers-1 {
		t.Fatalf("expected exactly one success, got %d successes / %d not-found", successes, notFound)
	}
}
