package services_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"golang.org/x/crypto/bcrypt"

	"ecycle/internal/repos"
	"ecycle/internal/services"
)

func memdb(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	// one connection so every query sees the same in-memory database
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func newAuth(t *testing.T, db *sqlx.DB) *services.AuthService {
	t.Helper()
	return &services.AuthService{
		Users:      repos.NewUserRepo(db),
		Secret:     "test-secret",
		AccessTTL:  time.Minute,
		RefreshTTL: time.Hour,
	}
}

func TestRegisterDuplicateEmailRejected(t *testing.T) {
	auth := newAuth(t, memdb(t))

	if _, err := auth.Register(services.RegisterInput{Email: "a@b.com", Username: "first", Password: "pw1"}); err != nil {
		t.Fatal(err)
	}
	// same email, different username: the email check wins
	_, err := auth.Register(services.RegisterInput{Email: "a@b.com", Username: "second", Password: "pw2"})
	if !errors.Is(err, services.ErrEmailTaken) {
		t.Fatalf("want ErrEmailTaken, got %v", err)
	}

	_, err = auth.Register(services.RegisterInput{Email: "c@d.com", Username: "first", Password: "pw3"})
	if !errors.Is(err, services.ErrUsernameTaken) {
		t.Fatalf("want ErrUsernameTaken, got %v", err)
	}
}

func TestRegisterStoresHashNotPlaintext(t *testing.T) {
	db := memdb(t)
	auth := newAuth(t, db)

	u, err := auth.Register(services.RegisterInput{Email: "a@b.com", Username: "ab", Password: "pw1"})
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(u.Hash, "pw1") || !strings.HasPrefix(u.Hash, "$2") {
		t.Fatalf("unexpected hash format: %q", u.Hash)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.Hash), []byte("pw1")); err != nil {
		t.Fatalf("hash does not verify the password: %v", err)
	}
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	auth := newAuth(t, memdb(t))
	if _, err := auth.Register(services.RegisterInput{Email: "a@b.com", Username: "ab", Password: "pw1"}); err != nil {
		t.Fatal(err)
	}

	_, errWrongPass := auth.Login("a@b.com", "nope")
	_, errNoUser := auth.Login("ghost@b.com", "pw1")
	if !errors.Is(errWrongPass, services.ErrBadCreds) || !errors.Is(errNoUser, services.ErrBadCreds) {
		t.Fatalf("want ErrBadCreds for both, got %v / %v", errWrongPass, errNoUser)
	}
	if errWrongPass.Error() != errNoUser.Error() {
		t.Fatal("failure messages differ between wrong password and unknown email")
	}
}

func TestLoginRefreshRoundtrip(t *testing.T) {
	auth := newAuth(t, memdb(t))
	if _, err := auth.Register(services.RegisterInput{Email: "a@b.com", Username: "ab", Password: "pw1"}); err != nil {
		t.Fatal(err)
	}

	pair, err := auth.Login("a@b.com", "pw1")
	if err != nil {
		t.Fatal(err)
	}
	if pair.TokenType != "bearer" || pair.AccessToken == "" || pair.RefreshToken == "" {
		t.Fatalf("bad token pair: %+v", pair)
	}

	u, err := auth.UserFromToken(pair.AccessToken)
	if err != nil {
		t.Fatal(err)
	}
	if u.Email != "a@b.com" {
		t.Fatalf("resolved wrong user: %s", u.Email)
	}

	next, err := auth.Refresh(pair.RefreshToken)
	if err != nil {
		t.Fatal(err)
	}
	if next.AccessToken == "" || next.RefreshToken == "" {
		t.Fatalf("bad refreshed pair: %+v", next)
	}

	if _, err := auth.UserFromToken("not-a-token"); !errors.Is(err, services.ErrTokenInvalid) {
		t.Fatalf("want ErrTokenInvalid, got %v", err)
	}
}

func TestInitAdminOnlyOnce(t *testing.T) {
	auth := newAuth(t, memdb(t))

	u, err := auth.InitAdmin()
	if err != nil {
		t.Fatal(err)
	}
	if !u.IsAdmin || u.Email != services.InitialAdminEmail {
		t.Fatalf("bad bootstrap admin: %+v", u)
	}

	if _, err := auth.InitAdmin(); !errors.Is(err, services.ErrAdminExists) {
		t.Fatalf("want ErrAdminExists on second call, got %v", err)
	}
}
