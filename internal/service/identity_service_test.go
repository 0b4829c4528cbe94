package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"truedoc-admin/config"
	"truedoc-admin/internal/domain/entity"
	"truedoc-admin/internal/domain/repository/mocks"
	"truedoc-admin/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

type IdentityServiceSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	accountRepo *mocks.MockAccountRepository
	sessionRepo *mocks.MockSessionRepository
	jwtService  *jwt.JWTService
	service     IdentityService
}

func TestIdentityServiceSuite(t *testing.T) {
	suite.Run(t, new(IdentityServiceSuite))
}

func (s *IdentityServiceSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.accountRepo = mocks.NewMockAccountRepository(s.ctrl)
	s.sessionRepo = mocks.NewMockSessionRepository(s.ctrl)
	s.jwtService = jwt.NewJWTService(config.JWTConfig{Secret: "test", Issuer: "test", AccessExpiry: time.Hour})
	s.service = NewIdentityService(quietLogger(), s.accountRepo, s.sessionRepo, s.jwtService)
}

func (s *IdentityServiceSuite) account(password string) *entity.Account {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	s.Require().NoError(err)
	return &entity.Account{ID: uuid.New(), Email: "mod@example.com", PasswordHash: string(hash)}
}

func (s *IdentityServiceSuite) TestSignIn_Success() {
	ctx := context.Background()
	account := s.account("secret123")

	s.accountRepo.EXPECT().FindByEmail(ctx, "mod@example.com").Return(account, nil)
	s.sessionRepo.EXPECT().Save(ctx, gomock.Any(), time.Hour).Return(nil)

	session, err := s.service.SignIn(ctx, " mod@example.com ", "secret123")
	s.Require().NoError(err)
	s.Equal(account.ID, session.AccountID)
	s.Equal("mod@example.com", session.Email)
	s.NotEmpty(session.Token)
	s.NotEmpty(session.ID)
}

func (s *IdentityServiceSuite) TestSignIn_WrongPassword() {
	ctx := context.Background()
	s.accountRepo.EXPECT().FindByEmail(ctx, "mod@example.com").Return(s.account("secret123"), nil)

	_, err := s.service.SignIn(ctx, "mod@example.com", "nope")
	s.ErrorIs(err, ErrInvalidCredentials)
}

func (s *IdentityServiceSuite) TestSignIn_UnknownAccount() {
	ctx := context.Background()
	s.accountRepo.EXPECT().FindByEmail(ctx, "ghost@example.com").Return(nil, nil)

	_, err := s.service.SignIn(ctx, "ghost@example.com", "secret123")
	s.ErrorIs(err, ErrInvalidCredentials)
}

func (s *IdentityServiceSuite) TestCurrentSession_LiveSession() {
	ctx := context.Background()
	accountID := uuid.New()
	token, sessionID, _, err := s.jwtService.GenerateSessionToken(accountID, "mod@example.com")
	s.Require().NoError(err)

	s.sessionRepo.EXPECT().Find(ctx, sessionID).
		Return(&entity.Session{ID: sessionID, AccountID: accountID, Email: "mod@example.com"}, nil)

	session, err := s.service.CurrentSession(ctx, token)
	s.Require().NoError(err)
	s.Require().NotNil(session)
	s.Equal(sessionID, session.ID)
	s.Equal(accountID, session.AccountID)
	s.Equal("mod@example.com", session.Email)
	s.Equal(token, session.Token)
}

func (s *IdentityServiceSuite) TestCurrentSession_StoredRecordMismatch() {
	ctx := context.Background()
	accountID := uuid.New()
	token, sessionID, _, err := s.jwtService.GenerateSessionToken(accountID, "mod@example.com")
	s.Require().NoError(err)

	s.sessionRepo.EXPECT().Find(ctx, sessionID).
		Return(&entity.Session{ID: sessionID, AccountID: accountID, Email: "other@example.com"}, nil)
	session, err := s.service.CurrentSession(ctx, token)
	s.NoError(err)
	s.Nil(session)

	s.sessionRepo.EXPECT().Find(ctx, sessionID).
		Return(&entity.Session{ID: sessionID, AccountID: uuid.New(), Email: "mod@example.com"}, nil)
	session, err = s.service.CurrentSession(ctx, token)
	s.NoError(err)
	s.Nil(session)
}

func (s *IdentityServiceSuite) TestCurrentSession_Revoked() {
	ctx := context.Background()
	token, sessionID, _, err := s.jwtService.GenerateSessionToken(uuid.New(), "mod@example.com")
	s.Require().NoError(err)

	s.sessionRepo.EXPECT().Find(ctx, sessionID).Return(nil, nil)

	session, err := s.service.CurrentSession(ctx, token)
	s.NoError(err)
	s.Nil(session)
}

func (s *IdentityServiceSuite) TestCurrentSession_InvalidToken() {
	session, err := s.service.CurrentSession(context.Background(), "garbage")
	s.NoError(err)
	s.Nil(session)

	session, err = s.service.CurrentSession(context.Background(), "")
	s.NoError(err)
	s.Nil(session)
}

func (s *IdentityServiceSuite) TestCurrentSession_StoreFailure() {
	ctx := context.Background()
	token, sessionID, _, err := s.jwtService.GenerateSessionToken(uuid.New(), "mod@example.com")
	s.Require().NoError(err)

	s.sessionRepo.EXPECT().Find(ctx, sessionID).Return(nil, errors.New("redis down"))

	session, err := s.service.CurrentSession(ctx, token)
	s.Error(err)
	s.Nil(session)
}

func (s *IdentityServiceSuite) TestSignOut() {
	ctx := context.Background()
	s.sessionRepo.EXPECT().Delete(ctx, "s-1").Return(nil)

	s.NoError(s.service.SignOut(ctx, &entity.Session{ID: "s-1"}))
	s.NoError(s.service.SignOut(ctx, nil))
}

func (s *IdentityServiceSuite) TestCreateAccount() {
	ctx := context.Background()
	s.accountRepo.EXPECT().FindByEmail(ctx, "new@example.com").Return(nil, nil)
	s.accountRepo.EXPECT().Create(ctx, gomock.Any()).Return(nil)

	account, err := s.service.CreateAccount(ctx, "new@example.com", "secret123")
	s.Require().NoError(err)
	s.NoError(bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte("secret123")))
}

func TestIdentityService_CreateAccountDuplicate(t *testing.T) {
	ctrl := gomock.NewController(t)
	accountRepo := mocks.NewMockAccountRepository(ctrl)
	svc := NewIdentityService(quietLogger(), accountRepo, mocks.NewMockSessionRepository(ctrl), jwt.NewJWTService(config.JWTConfig{Secret: "x"}))

	accountRepo.EXPECT().FindByEmail(gomock.Any(), "dup@example.com").Return(&entity.Account{Email: "dup@example.com"}, nil)

	_, err := svc.CreateAccount(context.Background(), "dup@example.com", "secret123")
	require.ErrorIs(t, err, ErrAccountExists)
	assert.NotNil(t, err)
}
