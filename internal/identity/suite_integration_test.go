//go:build integration

package identity

import (
	"os"
	"testing"
	"time"

	"github.com/GantalaAvinash/mobile-store/pkg/testsuite"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
)

type IdentitySuite struct {
	testsuite.BaseSuite

	Provider Provider
	Observer *SessionObserver
}

func (s *IdentitySuite) SetupSuite() {
	s.Require().NoError(os.Setenv("SESSION_SECRET", "integration-secret"))

	s.SetupInfrastructure("../../migrations")

	s.Observer = NewSessionObserver()
	repo := NewRepository(s.DbPool, zap.NewNop())
	s.Provider = NewProvider(repo, s.Observer, time.Hour, zap.NewNop())
}

func (s *IdentitySuite) TearDownSuite() {
	s.TearDownInfrastructure()
}

func (s *IdentitySuite) TearDownTest() {
	s.TruncateTable("users")
}

func (s *IdentitySuite) TestSignUpAndSignIn() {
	user, err := s.Provider.SignUp(s.Ctx, "test@example.com", "secret123qwe", "Test User")
	s.Require().NoError(err)
	s.Require().NotEmpty(user.UID)

	var dbHash string
	err = s.DbPool.QueryRow(s.Ctx, "SELECT password_hash FROM users WHERE uid=$1", user.UID).
		Scan(&dbHash)
	s.Require().NoError(err)
	s.NotEqual("secret123qwe", dbHash)

	token, signedIn, err := s.Provider.SignIn(s.Ctx, "test@example.com", "secret123qwe")
	s.Require().NoError(err)
	s.Require().NotEmpty(token)
	s.Equal(user.UID, signedIn.UID)

	s.False(s.Observer.Loading())
	s.Require().NotNil(s.Observer.Current())
	s.Equal(user.UID, s.Observer.Current().UID)
}

func (s *IdentitySuite) TestSignUp_DuplicateEmailFails() {
	_, err := s.Provider.SignUp(s.Ctx, "dup@example.com", "secret123qwe", "")
	s.Require().NoError(err)

	_, err = s.Provider.SignUp(s.Ctx, "dup@example.com", "secret123qwe", "")
	s.Require().ErrorIs(err, ErrEmailTaken)
}

func (s *IdentitySuite) TestSignIn_WrongPasswordFails() {
	_, err := s.Provider.SignUp(s.Ctx, "wrong@example.com", "secret123qwe", "")
	s.Require().NoError(err)

	_, _, err = s.Provider.SignIn(s.Ctx, "wrong@example.com", "not-the-password")
	s.Require().ErrorIs(err, ErrInvalidCredentials)
}

func (s *IdentitySuite) TestValidate_ResolvesUser() {
	user, err := s.Provider.SignUp(s.Ctx, "validate@example.com", "secret123qwe", "")
	s.Require().NoError(err)

	token, _, err := s.Provider.SignIn(s.Ctx, "validate@example.com", "secret123qwe")
	s.Require().NoError(err)

	resolved, err := s.Provider.Validate(s.Ctx, token)
	s.Require().NoError(err)
	s.Equal(user.UID, resolved.UID)
}

func (s *IdentitySuite) TestSignOut_RevokesSession() {
	_, err := s.Provider.SignUp(s.Ctx, "signout@example.com", "secret123qwe", "")
	s.Require().NoError(err)

	token, _, err := s.Provider.SignIn(s.Ctx, "signout@example.com", "secret123qwe")
	s.Require().NoError(err)

	s.Require().NoError(s.Provider.SignOut(s.Ctx, token))
	s.Nil(s.Observer.Current())

	_, err = s.Provider.Validate(s.Ctx, token)
	s.Require().Error(err)
}

func TestIdentitySuite(t *testing.T) {
	suite.Run(t, new(IdentitySuite))
}
