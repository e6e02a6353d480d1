package service

import (
	"context"
	"testing"

	"StockYard/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// fakeUserRepo is an in-memory repo.UserRepository.
type fakeUserRepo struct {
	users map[string]*model.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*model.User{}}
}

func (r *fakeUserRepo) GetByUsername(_ context.Context, username string) (*model.User, error) {
	u, ok := r.users[username]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) CreateIfAbsent(_ context.Context, u *model.User) (bool, error) {
	if _, ok := r.users[u.Username]; ok {
		return false, nil
	}
	u.ID = int64(len(r.users) + 1)
	r.users[u.Username] = u
	return true, nil
}

func seedUser(t *testing.T, r *fakeUserRepo, username, password string) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	_, err = r.CreateIfAbsent(context.Background(), &model.User{Username: username, PasswordHash: string(hash)})
	require.NoError(t, err)
}

func TestAuthenticate_TokenRoundTrip(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(t, repo, "demo", "demo1234")
	svc := NewAuthService(repo, "test-secret")

	token, err := svc.Authenticate(context.Background(), "demo", "demo1234")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := svc.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(1), userID)
}

func TestAuthenticate_BadCredentials(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(t, repo, "demo", "demo1234")
	svc := NewAuthService(repo, "test-secret")

	_, err := svc.Authenticate(context.Background(), "demo", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Authenticate(context.Background(), "nobody", "demo1234")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestVerifyToken_WrongSecret(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(t, repo, "demo", "demo1234")

	issuer := NewAuthService(repo, "secret-a")
	verifier := NewAuthService(repo, "secret-b")

	token, err := issuer.Authenticate(context.Background(), "demo", "demo1234")
	require.NoError(t, err)

	_, err = verifier.VerifyToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyToken_Garbage(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo(), "test-secret")
	_, err := svc.VerifyToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestEnsureUser_HashVerifies(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewAuthService(repo, "test-secret")

	require.NoError(t, svc.EnsureUser(context.Background(), "demo", "demo1234"))

	u := repo.users["demo"]
	require.NotNil(t, u)
	assert.NotEqual(t, "demo1234", u.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("demo1234")))
}
