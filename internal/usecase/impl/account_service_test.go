package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"bazaar/internal/domain/repository"
	"bazaar/internal/infra/auth"
	"bazaar/internal/infra/kv"
	"bazaar/internal/infra/persistence/kvstore"
	"bazaar/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type accountFixture struct {
	accounts    usecase.AccountUsecase
	sessionRepo repository.SessionRepository
	userRepo    repository.UserRepository
}

func newAccountFixture() *accountFixture {
	store := kv.NewMemoryStore()
	keys := kvstore.NewKeys("test")
	userRepo := kvstore.NewUserRepository(store, keys)
	sessionRepo := kvstore.NewSessionRepository(store, keys)

	accounts := NewAccountService(AccountServiceParams{
		UserRepo:    userRepo,
		SessionRepo: sessionRepo,
		Hasher:      auth.NewDemoHasher(),
		Fingerprint: auth.NewFingerprintService(),
		Logger:      testLogger(),
	})

	return &accountFixture{
		accounts:    accounts,
		sessionRepo: sessionRepo,
		userRepo:    userRepo,
	}
}

func TestAccountService_RegisterDoesNotOpenSession(t *testing.T) {
	ctx := context.Background()
	f := newAccountFixture()

	output, err := f.accounts.Register(ctx, &usecase.RegisterInput{
		Email:    "shopper@example.com",
		Password: "password123",
		Name:     "Shopper",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, output.User.ID)
	assert.Equal(t, "CUSTOMER", string(output.User.Role), "role defaults to customer")
	assert.NotEqual(t, "password123", output.User.PasswordHash, "plaintext never stored")

	_, err = f.sessionRepo.Current(ctx)
	assert.ErrorIs(t, err, repository.ErrNoSession, "registration must not log the user in")
}

func TestAccountService_RegisterSanitizesInput(t *testing.T) {
	ctx := context.Background()
	f := newAccountFixture()

	output, err := f.accounts.Register(ctx, &usecase.RegisterInput{
		Email:    "x@example.com",
		Password: "password123",
		Name:     "<b>Shopper</b>",
	})
	require.NoError(t, err)

	assert.Equal(t, "bShopper/b", output.User.Name, "angle brackets are stripped")
}

func TestAccountService_RegisterDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	f := newAccountFixture()

	input := &usecase.RegisterInput{Email: "dup@example.com", Password: "password123", Name: "One"}
	_, err := f.accounts.Register(ctx, input)
	require.NoError(t, err)

	_, err = f.accounts.Register(ctx, &usecase.RegisterInput{Email: "dup@example.com", Password: "other456", Name: "Two"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already registered")
}

func TestAccountService_LoginOpensSession(t *testing.T) {
	ctx := context.Background()
	f := newAccountFixture()

	_, err := f.accounts.Register(ctx, &usecase.RegisterInput{Email: "s@example.com", Password: "password123", Name: "S"})
	require.NoError(t, err)

	output, err := f.accounts.Login(ctx, &usecase.LoginInput{Email: "s@example.com", Password: "password123"})
	require.NoError(t, err)
	require.NotEmpty(t, output.Fingerprint)

	session, err := f.sessionRepo.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, output.User.ID, session.ID)
	assert.Equal(t, output.Fingerprint, session.Fingerprint)
}

func TestAccountService_LoginWrongPassword(t *testing.T) {
	ctx := context.Background()
	f := newAccountFixture()

	_, err := f.accounts.Register(ctx, &usecase.RegisterInput{Email: "s@example.com", Password: "password123", Name: "S"})
	require.NoError(t, err)

	_, err = f.accounts.Login(ctx, &usecase.LoginInput{Email: "s@example.com", Password: "nope"})
	require.Error(t, err)

	_, err = f.accounts.Login(ctx, &usecase.LoginInput{Email: "ghost@example.com", Password: "password123"})
	require.Error(t, err, "unknown email fails the same way")
}

func TestAccountService_LoginRotatesFingerprint(t *testing.T) {
	ctx := context.Background()
	f := newAccountFixture()

	_, err := f.accounts.Register(ctx, &usecase.RegisterInput{Email: "s@example.com", Password: "password123", Name: "S"})
	require.NoError(t, err)

	first, err := f.accounts.Login(ctx, &usecase.LoginInput{Email: "s@example.com", Password: "password123"})
	require.NoError(t, err)
	second, err := f.accounts.Login(ctx, &usecase.LoginInput{Email: "s@example.com", Password: "password123"})
	require.NoError(t, err)

	assert.NotEqual(t, first.Fingerprint, second.Fingerprint, "every login issues a fresh token")
}

func TestAccountService_SocialLoginCreatesAccountOnce(t *testing.T) {
	ctx := context.Background()
	f := newAccountFixture()

	input := &usecase.SocialLoginInput{Email: "g@example.com", Name: "G User", Provider: "google"}

	first, err := f.accounts.SocialLogin(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, "google", string(first.User.Provider))
	assert.Empty(t, first.User.PasswordHash, "social accounts carry no password")

	second, err := f.accounts.SocialLogin(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, first.User.ID, second.User.ID, "repeat social login reuses the account")

	users, err := f.accounts.ListUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestAccountService_SocialLoginRejectsLocalProvider(t *testing.T) {
	ctx := context.Background()
	f := newAccountFixture()

	_, err := f.accounts.SocialLogin(ctx, &usecase.SocialLoginInput{Email: "x@example.com", Name: "X", Provider: "local"})
	require.Error(t, err)
}

func TestAccountService_SocialAccountCannotPasswordLogin(t *testing.T) {
	ctx := context.Background()
	f := newAccountFixture()

	_, err := f.accounts.SocialLogin(ctx, &usecase.SocialLoginInput{Email: "g@example.com", Name: "G", Provider: "facebook"})
	require.NoError(t, err)

	_, err = f.accounts.Login(ctx, &usecase.LoginInput{Email: "g@example.com", Password: ""})
	require.Error(t, err, "empty password never matches an empty hash")
}
