package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/mindcare-app/mindcare_backend/internal/apperrors"
	"github.com/mindcare-app/mindcare_backend/internal/core/domain"
	portssvc "github.com/mindcare-app/mindcare_backend/internal/core/ports/services"
	"github.com/mindcare-app/mindcare_backend/internal/core/services"
	"github.com/mindcare-app/mindcare_backend/internal/dto"
	"github.com/mindcare-app/mindcare_backend/internal/utils"
)

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByProviderDetails(ctx context.Context, authProvider string, providerUserID string) (*domain.User, error) {
	args := m.Called(ctx, authProvider, providerUserID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateRefreshToken(ctx context.Context, userID string, refreshTokenHash string, refreshTokenExpiryTime time.Time) error {
	args := m.Called(ctx, userID, refreshTokenHash, refreshTokenExpiryTime)
	return args.Error(0)
}

func (m *MockUserRepository) ClearRefreshToken(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// --- Test Suite ---
type UserServiceTestSuite struct {
	suite.Suite
	mockUserRepo *MockUserRepository
	service      portssvc.UserSvcFacade
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockUserRepo = new(MockUserRepository)
	suite.service = services.NewUserService(suite.mockUserRepo)
}

// --- RegisterUser Tests ---

func (suite *UserServiceTestSuite) TestRegisterUser_Success() {
	ctx := context.Background()
	req := dto.RegisterRequest{
		Username:        "testuser",
		Email:           "Test@Example.com",
		Password:        "password123",
		PasswordConfirm: "password123",
	}

	suite.mockUserRepo.On("SaveUser", ctx, mock.MatchedBy(func(user domain.User) bool {
		return user.Username == "testuser" &&
			user.Email == "test@example.com" && // lowercased
			user.PasswordHash != nil && *user.PasswordHash != req.Password &&
			user.AuthProvider == domain.ProviderLocal &&
			user.IsActive && !user.IsSuperuser
	})).Return(nil).Once()

	user, err := suite.service.RegisterUser(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(user)
	suite.NotEmpty(user.UserID)
	suite.True(utils.CheckPasswordHash(req.Password, *user.PasswordHash))
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestRegisterUser_PasswordMismatch() {
	ctx := context.Background()
	req := dto.RegisterRequest{
		Username:        "testuser",
		Email:           "test@example.com",
		Password:        "password123",
		PasswordConfirm: "different",
	}

	user, err := suite.service.RegisterUser(ctx, req)

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "SaveUser")
}

func (suite *UserServiceTestSuite) TestRegisterUser_DuplicateUsername() {
	ctx := context.Background()
	req := dto.RegisterRequest{
		Username:        "taken",
		Email:           "taken@example.com",
		Password:        "password123",
		PasswordConfirm: "password123",
	}

	suite.mockUserRepo.On("SaveUser", ctx, mock.AnythingOfType("domain.User")).Return(apperrors.ErrDuplicate).Once()

	user, err := suite.service.RegisterUser(ctx, req)

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

// --- AuthenticateUser Tests ---

func (suite *UserServiceTestSuite) TestAuthenticateUser_Success() {
	ctx := context.Background()
	hash, err := utils.HashPassword("password123")
	suite.Require().NoError(err)
	stored := &domain.User{
		UserID:       uuid.NewString(),
		Username:     "testuser",
		PasswordHash: &hash,
		IsActive:     true,
	}

	suite.mockUserRepo.On("FindUserByUsername", ctx, "testuser").Return(stored, nil).Once()

	user, err := suite.service.AuthenticateUser(ctx, "testuser", "password123")

	suite.Require().NoError(err)
	suite.Equal(stored.UserID, user.UserID)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_WrongPassword() {
	ctx := context.Background()
	hash, err := utils.HashPassword("password123")
	suite.Require().NoError(err)
	stored := &domain.User{
		UserID:       uuid.NewString(),
		Username:     "testuser",
		PasswordHash: &hash,
		IsActive:     true,
	}

	suite.mockUserRepo.On("FindUserByUsername", ctx, "testuser").Return(stored, nil).Once()

	user, err := suite.service.AuthenticateUser(ctx, "testuser", "wrong")

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_UnknownUser() {
	ctx := context.Background()

	suite.mockUserRepo.On("FindUserByUsername", ctx, "ghost").Return(nil, apperrors.ErrNotFound).Once()

	user, err := suite.service.AuthenticateUser(ctx, "ghost", "password123")

	suite.Require().Error(err)
	suite.Nil(user)
	// Unknown user and bad password are indistinguishable to the caller.
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_DeactivatedAccount() {
	ctx := context.Background()
	hash, err := utils.HashPassword("password123")
	suite.Require().NoError(err)
	stored := &domain.User{
		UserID:       uuid.NewString(),
		Username:     "testuser",
		PasswordHash: &hash,
		IsActive:     false,
	}

	suite.mockUserRepo.On("FindUserByUsername", ctx, "testuser").Return(stored, nil).Once()

	user, err := suite.service.AuthenticateUser(ctx, "testuser", "password123")

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_OAuthOnlyAccount() {
	ctx := context.Background()
	stored := &domain.User{
		UserID:       uuid.NewString(),
		Username:     "googleuser",
		PasswordHash: nil, // no local credentials
		AuthProvider: domain.ProviderGoogle,
		IsActive:     true,
	}

	suite.mockUserRepo.On("FindUserByUsername", ctx, "googleuser").Return(stored, nil).Once()

	user, err := suite.service.AuthenticateUser(ctx, "googleuser", "anything")

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

// --- CreateOAuthUser Tests ---

func (suite *UserServiceTestSuite) TestCreateOAuthUser_ExistingProviderIdentity() {
	ctx := context.Background()
	existing := &domain.User{UserID: uuid.NewString(), Username: "existing"}

	suite.mockUserRepo.On("FindUserByProviderDetails", ctx, "google", "sub-123").Return(existing, nil).Once()

	user, err := suite.service.CreateOAuthUser(ctx, "Existing User", "existing@example.com", "google", "sub-123")

	suite.Require().NoError(err)
	suite.Equal(existing, user)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "SaveUser")
}

func (suite *UserServiceTestSuite) TestCreateOAuthUser_NewAccount() {
	ctx := context.Background()

	suite.mockUserRepo.On("FindUserByProviderDetails", ctx, "google", "sub-456").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockUserRepo.On("FindUserByEmail", ctx, "new@example.com").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockUserRepo.On("SaveUser", ctx, mock.MatchedBy(func(user domain.User) bool {
		return user.Email == "new@example.com" &&
			user.AuthProvider == domain.AuthProvider("google") &&
			user.ProviderUserID != nil && *user.ProviderUserID == "sub-456" &&
			user.PasswordHash == nil
	})).Return(nil).Once()

	user, err := suite.service.CreateOAuthUser(ctx, "New User", "New@Example.com", "google", "sub-456")

	suite.Require().NoError(err)
	suite.Require().NotNil(user)
	suite.Equal("New_User", user.Username)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestCreateOAuthUser_LinksExistingEmail() {
	ctx := context.Background()
	existing := &domain.User{UserID: uuid.NewString(), Email: "local@example.com"}

	suite.mockUserRepo.On("FindUserByProviderDetails", ctx, "google", "sub-789").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockUserRepo.On("FindUserByEmail", ctx, "local@example.com").Return(existing, nil).Once()

	user, err := suite.service.CreateOAuthUser(ctx, "Local User", "local@example.com", "google", "sub-789")

	suite.Require().NoError(err)
	suite.Equal(existing, user)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "SaveUser")
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
