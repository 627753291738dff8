package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/mindcare-app/mindcare_backend/internal/apperrors"
	"github.com/mindcare-app/mindcare_backend/internal/core/domain"
	portssvc "github.com/mindcare-app/mindcare_backend/internal/core/ports/services"
	"github.com/mindcare-app/mindcare_backend/internal/core/services"
	"github.com/mindcare-app/mindcare_backend/internal/dto"
)

// --- Mock CheckInRepository ---
type MockCheckInRepository struct {
	mock.Mock
}

func (m *MockCheckInRepository) FindCheckInByID(ctx context.Context, checkInID string) (*domain.CheckIn, error) {
	args := m.Called(ctx, checkInID)
	var checkIn *domain.CheckIn
	if args.Get(0) != nil {
		checkIn = args.Get(0).(*domain.CheckIn)
	}
	return checkIn, args.Error(1)
}

func (m *MockCheckInRepository) FindCheckInsByOwner(ctx context.Context, userID string) ([]domain.CheckIn, error) {
	args := m.Called(ctx, userID)
	var checkIns []domain.CheckIn
	if args.Get(0) != nil {
		checkIns = args.Get(0).([]domain.CheckIn)
	}
	return checkIns, args.Error(1)
}

func (m *MockCheckInRepository) SaveCheckIn(ctx context.Context, checkIn domain.CheckIn) error {
	args := m.Called(ctx, checkIn)
	return args.Error(0)
}

func (m *MockCheckInRepository) UpdateCheckIn(ctx context.Context, checkIn domain.CheckIn) error {
	args := m.Called(ctx, checkIn)
	return args.Error(0)
}

func (m *MockCheckInRepository) DeleteCheckIn(ctx context.Context, checkInID string) error {
	args := m.Called(ctx, checkInID)
	return args.Error(0)
}

func (m *MockCheckInRepository) FindQuickCheckInByID(ctx context.Context, quickCheckInID string) (*domain.QuickCheckIn, error) {
	args := m.Called(ctx, quickCheckInID)
	var quickCheckIn *domain.QuickCheckIn
	if args.Get(0) != nil {
		quickCheckIn = args.Get(0).(*domain.QuickCheckIn)
	}
	return quickCheckIn, args.Error(1)
}

func (m *MockCheckInRepository) FindQuickCheckInsByOwner(ctx context.Context, userID string) ([]domain.QuickCheckIn, error) {
	args := m.Called(ctx, userID)
	var quickCheckIns []domain.QuickCheckIn
	if args.Get(0) != nil {
		quickCheckIns = args.Get(0).([]domain.QuickCheckIn)
	}
	return quickCheckIns, args.Error(1)
}

func (m *MockCheckInRepository) SaveQuickCheckIn(ctx context.Context, quickCheckIn domain.QuickCheckIn) error {
	args := m.Called(ctx, quickCheckIn)
	return args.Error(0)
}

func (m *MockCheckInRepository) UpdateQuickCheckIn(ctx context.Context, quickCheckIn domain.QuickCheckIn) error {
	args := m.Called(ctx, quickCheckIn)
	return args.Error(0)
}

func (m *MockCheckInRepository) DeleteQuickCheckIn(ctx context.Context, quickCheckInID string) error {
	args := m.Called(ctx, quickCheckInID)
	return args.Error(0)
}

// --- Test Suite ---
type CheckInServiceTestSuite struct {
	suite.Suite
	mockRepo *MockCheckInRepository
	service  portssvc.CheckInSvcFacade
	owner    domain.Caller
	stranger domain.Caller
	admin    domain.Caller
}

func (suite *CheckInServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockCheckInRepository)
	suite.service = services.NewCheckInService(suite.mockRepo)
	suite.owner = domain.Caller{UserID: uuid.NewString()}
	suite.stranger = domain.Caller{UserID: uuid.NewString()}
	suite.admin = domain.Caller{UserID: uuid.NewString(), IsSuperuser: true}
}

func (suite *CheckInServiceTestSuite) TestCreateCheckIn_ForcesOwnership() {
	ctx := context.Background()
	req := dto.CreateCheckInRequest{Mood: "happy", Reason: "good sleep", Color: "#00FF00"}

	suite.mockRepo.On("SaveCheckIn", ctx, mock.MatchedBy(func(c domain.CheckIn) bool {
		return c.UserID == suite.owner.UserID && c.CheckInID != "" && !c.CreatedAt.IsZero()
	})).Return(nil).Once()

	checkIn, err := suite.service.CreateCheckIn(ctx, suite.owner, req)

	suite.Require().NoError(err)
	suite.Equal(suite.owner.UserID, checkIn.UserID)
	suite.Equal("happy", checkIn.Mood)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CheckInServiceTestSuite) TestGetCheckIn_CrossOwnerHiddenAsNotFound() {
	ctx := context.Background()
	checkInID := uuid.NewString()
	stored := &domain.CheckIn{CheckInID: checkInID, UserID: suite.owner.UserID, Mood: "calm"}

	suite.mockRepo.On("FindCheckInByID", ctx, checkInID).Return(stored, nil).Once()

	checkIn, err := suite.service.GetCheckIn(ctx, suite.stranger, checkInID)

	suite.Require().Error(err)
	suite.Nil(checkIn)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *CheckInServiceTestSuite) TestGetCheckIn_SuperuserBypassesOwnership() {
	ctx := context.Background()
	checkInID := uuid.NewString()
	stored := &domain.CheckIn{CheckInID: checkInID, UserID: suite.owner.UserID, Mood: "calm"}

	suite.mockRepo.On("FindCheckInByID", ctx, checkInID).Return(stored, nil).Once()

	checkIn, err := suite.service.GetCheckIn(ctx, suite.admin, checkInID)

	suite.Require().NoError(err)
	suite.Equal(stored, checkIn)
}

func (suite *CheckInServiceTestSuite) TestUpdateCheckIn_PartialUpdate() {
	ctx := context.Background()
	checkInID := uuid.NewString()
	notes := "slept well"
	stored := &domain.CheckIn{
		CheckInID: checkInID,
		UserID:    suite.owner.UserID,
		Mood:      "calm",
		Reason:    "rest",
		Notes:     &notes,
		Color:     "#0000FF",
	}
	newMood := "energized"

	suite.mockRepo.On("FindCheckInByID", ctx, checkInID).Return(stored, nil).Once()
	suite.mockRepo.On("UpdateCheckIn", ctx, mock.MatchedBy(func(c domain.CheckIn) bool {
		// only mood changes, other fields are preserved
		return c.Mood == newMood && c.Reason == "rest" && c.Notes != nil && *c.Notes == notes && c.Color == "#0000FF"
	})).Return(nil).Once()

	updated, err := suite.service.UpdateCheckIn(ctx, suite.owner, checkInID, dto.UpdateCheckInRequest{Mood: &newMood})

	suite.Require().NoError(err)
	suite.Equal(newMood, updated.Mood)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CheckInServiceTestSuite) TestDeleteCheckIn_CrossOwnerHiddenAsNotFound() {
	ctx := context.Background()
	checkInID := uuid.NewString()
	stored := &domain.CheckIn{CheckInID: checkInID, UserID: suite.owner.UserID}

	suite.mockRepo.On("FindCheckInByID", ctx, checkInID).Return(stored, nil).Once()

	err := suite.service.DeleteCheckIn(ctx, suite.stranger, checkInID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertNotCalled(suite.T(), "DeleteCheckIn")
}

func (suite *CheckInServiceTestSuite) TestListCheckIns_ScopedToCaller() {
	ctx := context.Background()
	stored := []domain.CheckIn{{CheckInID: uuid.NewString(), UserID: suite.owner.UserID}}

	suite.mockRepo.On("FindCheckInsByOwner", ctx, suite.owner.UserID).Return(stored, nil).Once()

	checkIns, err := suite.service.ListCheckIns(ctx, suite.owner)

	suite.Require().NoError(err)
	suite.Equal(stored, checkIns)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CheckInServiceTestSuite) TestCreateQuickCheckIn_DefaultsKind() {
	ctx := context.Background()
	req := dto.CreateQuickCheckInRequest{Mood: "🙂"}

	suite.mockRepo.On("SaveQuickCheckIn", ctx, mock.MatchedBy(func(q domain.QuickCheckIn) bool {
		return q.UserID == suite.owner.UserID && q.Kind == domain.CheckInKindQuick
	})).Return(nil).Once()

	quickCheckIn, err := suite.service.CreateQuickCheckIn(ctx, suite.owner, req)

	suite.Require().NoError(err)
	suite.Equal(domain.CheckInKindQuick, quickCheckIn.Kind)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CheckInServiceTestSuite) TestGetQuickCheckIn_CrossOwnerHiddenAsNotFound() {
	ctx := context.Background()
	quickCheckInID := uuid.NewString()
	stored := &domain.QuickCheckIn{QuickCheckInID: quickCheckInID, UserID: suite.owner.UserID}

	suite.mockRepo.On("FindQuickCheckInByID", ctx, quickCheckInID).Return(stored, nil).Once()

	quickCheckIn, err := suite.service.GetQuickCheckIn(ctx, suite.stranger, quickCheckInID)

	suite.Require().Error(err)
	suite.Nil(quickCheckIn)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestCheckInServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CheckInServiceTestSuite))
}
