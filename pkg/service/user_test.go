package service_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"short-video-backend/pkg/auth"
	"short-video-backend/pkg/kakao"
	"short-video-backend/pkg/models"
	"short-video-backend/pkg/repository"
	"short-video-backend/pkg/service"
)

func newUserService(t *testing.T, kakaoURL string) (*service.UserService, *auth.TokenProvider) {
	t.Helper()
	db := openTestDB(t)
	seedUsers(t, db)

	local := models.User{
		Email:    "local@sample.com",
		Nickname: "local",
	}
	hash, err := bcrypt.GenerateFromPassword([]byte("secret-pw"), bcrypt.MinCost)
	require.NoError(t, err)
	local.Password = string(hash)
	require.NoError(t, db.Create(&local).Error)

	tokens := auth.NewTokenProvider("test-secret", time.Hour)
	client := kakao.NewClient(kakaoURL, time.Second)
	return service.NewUserService(repository.NewUsers(db), tokens, client), tokens
}

func TestSignInUnknownEmail(t *testing.T) {
	svc, _ := newUserService(t, "")

	_, err := svc.SignIn("nobody@sample.com", "whatever")
	assert.ErrorIs(t, err, service.ErrLoginFailed)
}

func TestSignInIssuesVerifiableToken(t *testing.T) {
	svc, tokens := newUserService(t, "")

	res, err := svc.SignIn("seoul@sample.com", "")
	require.NoError(t, err)
	assert.Equal(t, "seoul@sample.com", res.Email)

	email, err := tokens.Verify(res.Token)
	require.NoError(t, err)
	assert.Equal(t, "seoul@sample.com", email)
}

func TestSignInWrongPasswordIsGenericFailure(t *testing.T) {
	svc, _ := newUserService(t, "")

	_, err := svc.SignIn("local@sample.com", "wrong-pw")
	assert.ErrorIs(t, err, service.ErrLoginFailed)

	res, err := svc.SignIn("local@sample.com", "secret-pw")
	require.NoError(t, err)
	assert.NotEmpty(t, res.Token)
}

func TestRegisterFromOAuth(t *testing.T) {
	provider := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer kakao-token", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":123456789,"connected_at":"2026-08-01T00:00:00Z","kakao_account":{"email":"sample@sample.com","profile":{"nickname":"홍길동"}}}`))
	}))
	defer provider.Close()

	svc, _ := newUserService(t, provider.URL)
	require.NoError(t, svc.RegisterFromOAuth("kakao-token"))
}

func TestRegisterFromOAuthUpstreamFailure(t *testing.T) {
	provider := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer provider.Close()

	svc, _ := newUserService(t, provider.URL)
	err := svc.RegisterFromOAuth("kakao-token")
	assert.ErrorIs(t, err, kakao.ErrUpstreamUnavailable)
}
