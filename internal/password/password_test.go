package password

import (
	"errors"
	"strings"
	"testing"
)

func TestHashAndVerify_Success(t *testing.T) {
	t.Parallel()

	encoded, err := Hash("s3cret")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}
	if !strings.HasPrefix(encoded, "$argon2id$") {
		t.Fatalf("unexpected hash format: %q", encoded)
	}
	if err := Verify(encoded, "s3cret"); err != nil {
		t.Fatalf("Verify error: %v", err)
	}
}

func TestVerify_WrongPassword(t *testing.T) {
	t.Parallel()

	encoded, err := Hash("right")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}
	err = Verify(encoded, "wrong")
	if !errors.Is(err, ErrMismatch) {
		t.Fatalf("expected ErrMismatch, got %v", err)
	}
}

func TestHash_SaltsDiffer(t *testing.T) {
	t.Parallel()

	a, err := Hash("same")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}
	b, err := Hash("same")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}
	if a == b {
		t.Fatalf("two hashes of the same password must not be equal")
	}
	if err := Verify(b, "same"); err != nil {
		t.Fatalf("Verify error: %v", err)
	}
}

func TestVerify_Malformed(t *testing.T) {
	t.Parallel()

	cases := []string{
		"",
		"plaintext",
		"$bcrypt$v=19$m=65536,t=1,p=4$c2FsdA$a2V5",
		"$argon2id$v=19$m=65536,t=1,p=4$not-base64!$a2V5",
		"$argon2id$v=18$m=65536,t=1,p=4$c2FsdA$a2V5",
	}
	for _, enc := range cases {
		err := Verify(enc, "whatever")
		if err == nil {
			t.Fatalf("expected error for %q, got nil", enc)
		}
		if errors.Is(err, ErrMismatch) {
			t.Fatalf("malformed hash %q must not report a plain mismatch", enc)
		}
	}
}
