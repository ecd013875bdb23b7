package service

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"short-video-backend/pkg/auth"
	"short-video-backend/pkg/kakao"
	"short-video-backend/pkg/repository"
)

// ErrLoginFailed is deliberately undifferentiated: callers cannot tell an
// unknown email from a bad password.
var ErrLoginFailed = errors.New("login failed")

// UserService coordinates the OAuth collaborator, user lookup, and token
// issuance.
type UserService struct {
	users  repository.Users
	tokens *auth.TokenProvider
	kakao  *kakao.Client
}

func NewUserService(users repository.Users, tokens *auth.TokenProvider, kakaoClient *kakao.Client) *UserService {
	return &UserService{
		users:  users,
		tokens: tokens,
		kakao:  kakaoClient,
	}
}

// SignIn looks the user up by email and issues a session token. Accounts
// created through OAuth carry no password hash; when one is stored it must
// match.
func (s *UserService) SignIn(email, password string) (SignInResponse, error) {
	user, err := s.users.FindByEmail(email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return SignInResponse{}, ErrLoginFailed
		}
		return SignInResponse{}, err
	}

	if user.Password != "" {
		if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
			return SignInResponse{}, ErrLoginFailed
		}
	}

	token, err := s.tokens.Issue(user.Email)
	if err != nil {
		return SignInResponse{}, errors.Wrap(err, "issue token")
	}
	return SignInResponse{Token: token, Email: email}, nil
}

// RegisterFromOAuth exchanges the access token with the provider and logs
// the profile it returns. No user row is written here yet; sign-up completes
// against the profile data on the client side.
//
// TODO: persist a User from the fetched profile once the sign-up flow is
// settled.
func (s *UserService) RegisterFromOAuth(accessToken string) error {
	info, err := s.kakao.ExchangeToken(accessToken)
	if err != nil {
		return err
	}
	logrus.WithFields(logrus.Fields{
		"id":            info.ID,
		"has_signed_up": info.HasSignedUp,
		"connected_at":  info.ConnectedAt,
		"synched_at":    info.SynchedAt,
		"properties":    info.Properties,
		"email":         info.Account.Email,
		"nickname":      info.Account.Profile.Nickname,
	}).Info("fetched kakao account")
	return nil
}
