package service

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	dom "Bookmarker/internal/domain"
	"Bookmarker/internal/password"
	"Bookmarker/internal/repo"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// --- helpers ---

func uniqueViolation() error {
	return &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"}
}

type fakeUserRepo struct {
	createdEmail string
	createdHash  string
	createErr    error

	users map[string]dom.User // by email

	updateErr  error
	gotPatch   repo.UserPatch
	updateUser dom.User
}

func (f *fakeUserRepo) Create(ctx context.Context, email, hash string) (dom.User, error) {
	if f.createErr != nil {
		return dom.User{}, f.createErr
	}
	f.createdEmail = email
	f.createdHash = hash
	return dom.User{ID: 1, Email: email, Hash: hash, CreatedAt: time.Now(), UpdatedAt: time.Now()}, nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (dom.User, error) {
	u, ok := f.users[email]
	if !ok {
		return dom.User{}, pgx.ErrNoRows
	}
	return u, nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id int64) (dom.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return dom.User{}, pgx.ErrNoRows
}

func (f *fakeUserRepo) UpdateByID(ctx context.Context, id int64, patch repo.UserPatch) (dom.User, error) {
	f.gotPatch = patch
	if f.updateErr != nil {
		return dom.User{}, f.updateErr
	}
	u := f.updateUser
	if patch.Email != nil {
		u.Email = *patch.Email
	}
	if patch.FirstName != nil {
		u.FirstName = patch.FirstName
	}
	if patch.LastName != nil {
		u.LastName = patch.LastName
	}
	return u, nil
}

// --- Register ---

func TestRegister_Success(t *testing.T) {
	t.Parallel()

	f := &fakeUserRepo{}
	s := NewUserService(f)

	p, err := s.Register(context.Background(), "a@x.com", "p")
	if err != nil {
		t.Fatalf("Register error: %v", err)
	}
	if p.ID == 0 || p.Email != "a@x.com" {
		t.Fatalf("unexpected profile: %+v", p)
	}
	if f.createdHash == "p" || f.createdHash == "" {
		t.Fatalf("plaintext must not be stored: %q", f.createdHash)
	}
	if err := password.Verify(f.createdHash, "p"); err != nil {
		t.Fatalf("stored hash does not verify: %v", err)
	}
}

func TestRegister_EmailTaken(t *testing.T) {
	t.Parallel()

	f := &fakeUserRepo{createErr: uniqueViolation()}
	s := NewUserService(f)

	_, err := s.Register(context.Background(), "a@x.com", "p")
	if !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
	if err.Error() != "email already exists" {
		t.Fatalf("unexpected message: %q", err.Error())
	}
}

func TestRegister_StoreErrorPropagates(t *testing.T) {
	t.Parallel()

	storeErr := errors.New("connection reset")
	f := &fakeUserRepo{createErr: storeErr}
	s := NewUserService(f)

	_, err := s.Register(context.Background(), "a@x.com", "p")
	if err == nil {
		t.Fatalf("store failure must surface, got nil")
	}
	if !errors.Is(err, storeErr) {
		t.Fatalf("expected wrapped store error, got %v", err)
	}
}

func TestRegister_EmptyFields(t *testing.T) {
	t.Parallel()

	s := NewUserService(&fakeUserRepo{})
	if _, err := s.Register(context.Background(), "", "p"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for empty email, got %v", err)
	}
	if _, err := s.Register(context.Background(), "a@x.com", ""); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for empty password, got %v", err)
	}
}

// --- Authenticate ---

func seededRepo(t *testing.T, email, plaintext string) *fakeUserRepo {
	t.Helper()
	hash, err := password.Hash(plaintext)
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}
	return &fakeUserRepo{users: map[string]dom.User{
		email: {ID: 1, Email: email, Hash: hash},
	}}
}

func TestAuthenticate_Success(t *testing.T) {
	t.Parallel()

	s := NewUserService(seededRepo(t, "a@x.com", "p"))

	p, err := s.Authenticate(context.Background(), "a@x.com", "p")
	if err != nil {
		t.Fatalf("Authenticate error: %v", err)
	}
	if p.ID != 1 || p.Email != "a@x.com" {
		t.Fatalf("unexpected profile: %+v", p)
	}
}

func TestAuthenticate_WrongPasswordAndUnknownEmailLookAlike(t *testing.T) {
	t.Parallel()

	s := NewUserService(seededRepo(t, "a@x.com", "p"))

	_, errWrongPass := s.Authenticate(context.Background(), "a@x.com", "wrong")
	_, errNoUser := s.Authenticate(context.Background(), "b@x.com", "p")

	if !errors.Is(errWrongPass, ErrInvalidCredentials) {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", errWrongPass)
	}
	if !errors.Is(errNoUser, ErrInvalidCredentials) {
		t.Fatalf("unknown email: expected ErrInvalidCredentials, got %v", errNoUser)
	}
	if errWrongPass.Error() != errNoUser.Error() {
		t.Fatalf("messages must be identical: %q vs %q", errWrongPass, errNoUser)
	}
}

func TestAuthenticate_CaseSensitiveEmail(t *testing.T) {
	t.Parallel()

	s := NewUserService(seededRepo(t, "a@x.com", "p"))

	if _, err := s.Authenticate(context.Background(), "A@X.COM", "p"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("emails compare case-sensitively, got %v", err)
	}
}

// --- EditProfile ---

func TestEditProfile_MergePatch(t *testing.T) {
	t.Parallel()

	f := &fakeUserRepo{updateUser: dom.User{ID: 1, Email: "a@x.com", Hash: "h"}}
	s := NewUserService(f)

	first := "Ann"
	p, err := s.EditProfile(context.Background(), 1, repo.UserPatch{FirstName: &first})
	if err != nil {
		t.Fatalf("EditProfile error: %v", err)
	}
	if p.FirstName == nil || *p.FirstName != "Ann" {
		t.Fatalf("firstName not applied: %+v", p)
	}
	if p.Email != "a@x.com" {
		t.Fatalf("email must be untouched, got %q", p.Email)
	}
	if f.gotPatch.Email != nil || f.gotPatch.LastName != nil {
		t.Fatalf("absent fields must stay nil in the patch: %+v", f.gotPatch)
	}
}

func TestEditProfile_EmailTaken(t *testing.T) {
	t.Parallel()

	f := &fakeUserRepo{updateErr: uniqueViolation()}
	s := NewUserService(f)

	email := "taken@x.com"
	_, err := s.EditProfile(context.Background(), 1, repo.UserPatch{Email: &email})
	if !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestEditProfile_NotFound(t *testing.T) {
	t.Parallel()

	f := &fakeUserRepo{updateErr: pgx.ErrNoRows}
	s := NewUserService(f)

	first := "Ann"
	_, err := s.EditProfile(context.Background(), 999, repo.UserPatch{FirstName: &first})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestEditProfile_StoreErrorPropagates(t *testing.T) {
	t.Parallel()

	storeErr := errors.New("disk on fire")
	f := &fakeUserRepo{updateErr: storeErr}
	s := NewUserService(f)

	first := "Ann"
	_, err := s.EditProfile(context.Background(), 1, repo.UserPatch{FirstName: &first})
	if !errors.Is(err, storeErr) {
		t.Fatalf("expected wrapped store error, got %v", err)
	}
}

// --- redaction ---

func TestProfile_HasNoHashField(t *testing.T) {
	t.Parallel()

	typ := reflect.TypeOf(dom.Profile{})
	if _, ok := typ.FieldByName("Hash"); ok {
		t.Fatalf("Profile must not carry a hash field")
	}
}
