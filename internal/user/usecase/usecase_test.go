package usecase

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/shandysiswandi/godo/internal/pkg/config"
	"github.com/shandysiswandi/godo/internal/pkg/goerror"
	"github.com/shandysiswandi/godo/internal/pkg/hash"
	"github.com/shandysiswandi/godo/internal/pkg/instrument"
	"github.com/shandysiswandi/godo/internal/pkg/jwt"
	"github.com/shandysiswandi/godo/internal/pkg/kvstore"
	"github.com/shandysiswandi/godo/internal/pkg/otp"
	"github.com/shandysiswandi/godo/internal/pkg/uid"
	"github.com/shandysiswandi/godo/internal/pkg/validator"
	"github.com/shandysiswandi/godo/internal/user/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC)

const testConfigYAML = `
app:
  env: development
modules:
  user:
    access_token_ttl_minutes: 30
`

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

type seqID struct{ next int64 }

func (s *seqID) Generate() int64 {
	s.next++
	return s.next
}

type fakeRepo struct {
	users map[int64]entity.User

	getErr    error
	createErr error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{users: map[int64]entity.User{}}
}

func (f *fakeRepo) GetUserByID(_ context.Context, id int64) (*entity.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	user, ok := f.users[id]
	if !ok {
		return nil, goerror.ErrNotFound
	}
	return &user, nil
}

func (f *fakeRepo) GetUserByUsername(_ context.Context, username string) (*entity.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	for _, user := range f.users {
		if user.Username == username {
			return &user, nil
		}
	}
	return nil, goerror.ErrNotFound
}

func (f *fakeRepo) GetUserList(_ context.Context, _ entity.UserListFilterData) ([]entity.User, int64, error) {
	var out []entity.User
	for _, user := range f.users {
		out = append(out, user)
	}
	return out, int64(len(out)), nil
}

func (f *fakeRepo) CreateUser(_ context.Context, user entity.User) error {
	if f.createErr != nil {
		return f.createErr
	}
	for _, existing := range f.users {
		if existing.Username == user.Username {
			return goerror.ErrConflict
		}
	}
	f.users[user.ID] = user
	return nil
}

func (f *fakeRepo) UpdateUser(_ context.Context, user entity.User) error {
	if _, ok := f.users[user.ID]; !ok {
		return goerror.ErrNotFound
	}
	f.users[user.ID] = user
	return nil
}

func (f *fakeRepo) DeleteUser(_ context.Context, id int64) error {
	if _, ok := f.users[id]; !ok {
		return goerror.ErrNotFound
	}
	delete(f.users, id)
	return nil
}

type fakeMessaging struct {
	published []OTPIssuedEvent
	err       error
}

func (f *fakeMessaging) PublishOTPIssued(_ context.Context, msg OTPIssuedEvent) error {
	if f.err != nil {
		return f.err
	}
	f.published = append(f.published, msg)
	return nil
}

type testEnv struct {
	uc   *Usecase
	repo *fakeRepo
	msg  *fakeMessaging
	red  *miniredis.Miniredis
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	red := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: red.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	store, err := kvstore.NewRedisStore(context.Background(), client, kvstore.WithPrefix("otp"))
	require.NoError(t, err)

	v, err := validator.NewV10Validator()
	require.NoError(t, err)

	cfg, err := config.NewViperFromBytes("yaml", bytes.TrimSpace([]byte(testConfigYAML)))
	require.NoError(t, err)

	clk := fixedClock{now: testNow}
	tokener, err := jwt.NewHS512(jwt.Config{
		Secret:     bytes.Repeat([]byte("s"), 64),
		Issuer:     "godo-test",
		Audiences:  []string{"godo"},
		TTLMinutes: 30 * time.Minute,
		Clock:      clk,
		UUID:       uid.NewUUID(),
	})
	require.NoError(t, err)

	repo := newFakeRepo()
	msg := &fakeMessaging{}

	uc := New(Dependency{
		RepoDB:        repo,
		RepoMessaging: msg,
		Validator:     v,
		Config:        cfg,
		Bcrypt:        hash.NewBcrypt(4, ""),
		UID:           &seqID{},
		OTP:           otp.NewStoreManager(store, otp.WithTTL(5*time.Minute)),
		Clock:         clk,
		JWT:           tokener,
		Instrument:    instrument.NewNoop(),
	})

	return &testEnv{uc: uc, repo: repo, msg: msg, red: red}
}

func authCtx(userID int64) context.Context {
	return jwt.SetAuth(context.Background(), jwt.Claims{UserID: userID, UserEmail: "user@example.com"})
}

func assertCode(t *testing.T, err error, kind goerror.Kind, code goerror.Code) {
	t.Helper()

	gerr, ok := goerror.From(err)
	require.True(t, ok, "expected a classified error, got %v", err)
	assert.Equal(t, kind, gerr.Kind())
	assert.Equal(t, code, gerr.Code())
}

func TestUserCreateAndLogin(t *testing.T) {
	env := newTestEnv(t)

	created, err := env.uc.UserCreate(context.Background(), UserCreateInput{
		Username: "alice",
		Email:    "Alice@Example.com",
		Password: "secret",
	})
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", created.User.Email)
	assert.NotEqual(t, "secret", created.User.Password, "password must be stored hashed")

	out, err := env.uc.Login(context.Background(), LoginInput{Username: "alice", Password: "secret"})
	require.NoError(t, err)
	assert.NotEmpty(t, out.AccessToken)
	assert.Equal(t, "bearer", out.TokenType)
	assert.Equal(t, int64(1800), out.ExpiresIn)
}

func TestUserCreateDuplicate(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.uc.UserCreate(context.Background(), UserCreateInput{Username: "alice", Password: "secret"})
	require.NoError(t, err)

	_, err = env.uc.UserCreate(context.Background(), UserCreateInput{Username: "alice", Password: "other"})
	assertCode(t, err, goerror.KindConflict, goerror.CodeUserAlreadyExists)
}

func TestLoginWrongPassword(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.uc.UserCreate(context.Background(), UserCreateInput{Username: "alice", Password: "secret"})
	require.NoError(t, err)

	_, err = env.uc.Login(context.Background(), LoginInput{Username: "alice", Password: "wrong"})
	assertCode(t, err, goerror.KindUnauthorized, goerror.CodeUserUnauthorized)

	_, err = env.uc.Login(context.Background(), LoginInput{Username: "nobody", Password: "wrong"})
	assertCode(t, err, goerror.KindUnauthorized, goerror.CodeUserUnauthorized)
}

func TestMe(t *testing.T) {
	env := newTestEnv(t)
	env.repo.users[7] = entity.User{ID: 7, Username: "alice"}

	out, err := env.uc.Me(authCtx(7))
	require.NoError(t, err)
	assert.Equal(t, "alice", out.User.Username)

	_, err = env.uc.Me(context.Background())
	assertCode(t, err, goerror.KindUnauthorized, goerror.CodeUserUnauthorized)
}

func TestUserUpdateRehashesPassword(t *testing.T) {
	env := newTestEnv(t)

	created, err := env.uc.UserCreate(context.Background(), UserCreateInput{Username: "alice", Password: "secret"})
	require.NoError(t, err)

	newPassword := "changed"
	_, err = env.uc.UserUpdate(authCtx(1), UserUpdateInput{ID: created.User.ID, Password: &newPassword})
	require.NoError(t, err)

	_, err = env.uc.Login(context.Background(), LoginInput{Username: "alice", Password: "secret"})
	assertCode(t, err, goerror.KindUnauthorized, goerror.CodeUserUnauthorized)

	out, err := env.uc.Login(context.Background(), LoginInput{Username: "alice", Password: "changed"})
	require.NoError(t, err)
	assert.NotEmpty(t, out.AccessToken)
}

func TestUserUpdateValidation(t *testing.T) {
	env := newTestEnv(t)
	env.repo.users[1] = entity.User{ID: 1, Username: "alice"}

	short := "a"
	_, err := env.uc.UserUpdate(authCtx(1), UserUpdateInput{ID: 1, Username: &short})
	assertCode(t, err, goerror.KindValidation, goerror.CodeUserValidation)
}

func TestUserDelete(t *testing.T) {
	env := newTestEnv(t)
	env.repo.users[1] = entity.User{ID: 1, Username: "alice"}

	require.NoError(t, env.uc.UserDelete(authCtx(7), UserDeleteInput{ID: 1}))

	err := env.uc.UserDelete(authCtx(7), UserDeleteInput{ID: 1})
	assertCode(t, err, goerror.KindNotFound, goerror.CodeUserNotFound)
}

func TestUserListDefaults(t *testing.T) {
	env := newTestEnv(t)
	env.repo.users[1] = entity.User{ID: 1, Username: "alice"}

	out, err := env.uc.UserList(authCtx(7), UserListInput{Size: 1000})
	require.NoError(t, err)
	assert.Equal(t, int32(10), out.Size)
	assert.Equal(t, int64(1), out.Total)
}

func TestOTPRequestVerifyFlow(t *testing.T) {
	env := newTestEnv(t)

	issued, err := env.uc.OTPRequest(context.Background(), OTPRequestInput{Email: "alice@example.com"})
	require.NoError(t, err)
	assert.Len(t, issued.Code, 4)
	assert.Equal(t, int64(300), issued.ExpiresInSeconds)
	assert.True(t, issued.EchoCode, "development config echoes the code")
	require.Len(t, env.msg.published, 1)
	assert.Equal(t, issued.Code, env.msg.published[0].Code)

	out, err := env.uc.OTPVerify(context.Background(), OTPVerifyInput{
		Email:   "alice@example.com",
		OTPCode: issued.Code,
	})
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", out.Email)

	// Consumed on success: a second submission finds nothing.
	_, err = env.uc.OTPVerify(context.Background(), OTPVerifyInput{
		Email:   "alice@example.com",
		OTPCode: issued.Code,
	})
	assertCode(t, err, goerror.KindOTPNotFound, goerror.CodeOTPNotFound)
}

func TestOTPVerifyMismatchKeepsCode(t *testing.T) {
	env := newTestEnv(t)

	issued, err := env.uc.OTPRequest(context.Background(), OTPRequestInput{Email: "alice@example.com"})
	require.NoError(t, err)

	wrong := "0000"
	if issued.Code == wrong {
		wrong = "1111"
	}

	_, err = env.uc.OTPVerify(context.Background(), OTPVerifyInput{Email: "alice@example.com", OTPCode: wrong})
	assertCode(t, err, goerror.KindOTPMismatch, goerror.CodeOTPMismatch)

	// Mismatch does not consume; the real code still verifies.
	_, err = env.uc.OTPVerify(context.Background(), OTPVerifyInput{Email: "alice@example.com", OTPCode: issued.Code})
	require.NoError(t, err)
}

func TestOTPResendInvalidatesPrevious(t *testing.T) {
	env := newTestEnv(t)

	first, err := env.uc.OTPRequest(context.Background(), OTPRequestInput{Email: "alice@example.com"})
	require.NoError(t, err)

	second, err := env.uc.OTPResend(context.Background(), OTPResendInput{Email: "alice@example.com"})
	require.NoError(t, err)
	require.Len(t, env.msg.published, 2)

	if first.Code != second.Code {
		_, err = env.uc.OTPVerify(context.Background(), OTPVerifyInput{Email: "alice@example.com", OTPCode: first.Code})
		assertCode(t, err, goerror.KindOTPMismatch, goerror.CodeOTPMismatch)
	}

	_, err = env.uc.OTPVerify(context.Background(), OTPVerifyInput{Email: "alice@example.com", OTPCode: second.Code})
	require.NoError(t, err)
}

func TestOTPExpiry(t *testing.T) {
	env := newTestEnv(t)

	issued, err := env.uc.OTPRequest(context.Background(), OTPRequestInput{Email: "alice@example.com"})
	require.NoError(t, err)

	env.red.FastForward(6 * time.Minute)

	_, err = env.uc.OTPVerify(context.Background(), OTPVerifyInput{Email: "alice@example.com", OTPCode: issued.Code})
	assertCode(t, err, goerror.KindOTPNotFound, goerror.CodeOTPNotFound)
}

func TestOTPRequestPublishFailureStillIssues(t *testing.T) {
	env := newTestEnv(t)
	env.msg.err = context.DeadlineExceeded

	issued, err := env.uc.OTPRequest(context.Background(), OTPRequestInput{Email: "alice@example.com"})
	require.NoError(t, err)

	_, err = env.uc.OTPVerify(context.Background(), OTPVerifyInput{Email: "alice@example.com", OTPCode: issued.Code})
	require.NoError(t, err)
}

func TestUserCreatePasswordTooShort(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.uc.UserCreate(context.Background(), UserCreateInput{Username: "alice", Password: "abc"})
	assertCode(t, err, goerror.KindValidation, goerror.CodeUserValidation)
}
