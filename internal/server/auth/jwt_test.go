package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/walletgate/walletgate/internal/common"
	"github.com/walletgate/walletgate/internal/identity"
)

func newTestService(t *testing.T, secret string) *Service {
	t.Helper()
	s, err := NewService([]byte(secret), time.Hour)
	if err != nil {
		t.Fatalf("NewService error: %v", err)
	}
	return s
}

func TestNewService_EmptySecret(t *testing.T) {
	t.Parallel()

	_, err := NewService(nil, time.Hour)
	if !errors.Is(err, common.ErrInvalidInput) {
		t.Fatalf("expected common.ErrInvalidInput, got %v", err)
	}
}

func TestIssueAndVerify_Success(t *testing.T) {
	t.Parallel()

	s := newTestService(t, "super-secret")
	payload := SessionPayload{
		Identity:      "user@gmail.com",
		Flow:          identity.FlowEmail,
		WalletAddress: "9xQeWvG816bUx9EPjHmaT23yvVM2ZWbrrpZb9PusVFin",
	}

	tok, err := s.Issue(payload)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	got, err := s.Verify(tok)
	if err != nil {
		t.Fatalf("Verify error: %v", err)
	}
	if *got != payload {
		t.Fatalf("payload mismatch: got %+v want %+v", got, payload)
	}
}

func TestVerify_Expired(t *testing.T) {
	t.Parallel()

	s := newTestService(t, "secret")

	tok, err := s.IssueWithTTL(SessionPayload{Identity: "u@gmail.com", Flow: identity.FlowEmail}, -1*time.Second)
	if err != nil {
		t.Fatalf("IssueWithTTL error: %v", err)
	}

	_, err = s.Verify(tok)
	if !errors.Is(err, common.ErrTokenExpired) {
		t.Fatalf("expected common.ErrTokenExpired, got %v", err)
	}
}

func TestVerify_WrongSecret(t *testing.T) {
	t.Parallel()

	issuer := newTestService(t, "right-secret")
	verifier := newTestService(t, "wrong-secret")

	tok, err := issuer.Issue(SessionPayload{Identity: "u@gmail.com", Flow: identity.FlowEmail})
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	_, err = verifier.Verify(tok)
	if !errors.Is(err, common.ErrInvalidToken) {
		t.Fatalf("expected common.ErrInvalidToken, got %v", err)
	}
}

func TestVerify_Tampered(t *testing.T) {
	t.Parallel()

	s := newTestService(t, "secret")

	tok, err := s.Issue(SessionPayload{Identity: "u@gmail.com", Flow: identity.FlowEmail})
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	// Flip one character anywhere in the token; the signature must no
	// longer check out.
	for _, i := range []int{5, len(tok) / 2, len(tok) - 1} {
		b := []byte(tok)
		if b[i] == 'A' {
			b[i] = 'B'
		} else {
			b[i] = 'A'
		}

		_, err = s.Verify(string(b))
		if !errors.Is(err, common.ErrInvalidToken) {
			t.Fatalf("expected common.ErrInvalidToken for mutation at %d, got %v", i, err)
		}
	}
}

func TestVerify_Malformed(t *testing.T) {
	t.Parallel()

	s := newTestService(t, "secret")

	for _, tok := range []string{"", "not.a.jwt", "a.b", "...."} {
		_, err := s.Verify(tok)
		if !errors.Is(err, common.ErrInvalidToken) {
			t.Fatalf("expected common.ErrInvalidToken for %q, got %v", tok, err)
		}
	}
}
