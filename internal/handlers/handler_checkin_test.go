package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/mindcare-app/mindcare_backend/internal/apperrors"
	"github.com/mindcare-app/mindcare_backend/internal/core/domain"
	portssvc "github.com/mindcare-app/mindcare_backend/internal/core/ports/services"
	"github.com/mindcare-app/mindcare_backend/internal/dto"
	"github.com/mindcare-app/mindcare_backend/internal/handlers"
	"github.com/mindcare-app/mindcare_backend/internal/middleware"
	"github.com/mindcare-app/mindcare_backend/internal/utils"
)

// --- Mock CheckInService ---
type MockCheckInService struct {
	mock.Mock
}

func (m *MockCheckInService) ListCheckIns(ctx context.Context, caller domain.Caller) ([]domain.CheckIn, error) {
	args := m.Called(ctx, caller)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CheckIn), args.Error(1)
}

func (m *MockCheckInService) CreateCheckIn(ctx context.Context, caller domain.Caller, req dto.CreateCheckInRequest) (*domain.CheckIn, error) {
	args := m.Called(ctx, caller, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CheckIn), args.Error(1)
}

func (m *MockCheckInService) GetCheckIn(ctx context.Context, caller domain.Caller, checkInID string) (*domain.CheckIn, error) {
	args := m.Called(ctx, caller, checkInID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CheckIn), args.Error(1)
}

func (m *MockCheckInService) UpdateCheckIn(ctx context.Context, caller domain.Caller, checkInID string, req dto.UpdateCheckInRequest) (*domain.CheckIn, error) {
	args := m.Called(ctx, caller, checkInID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CheckIn), args.Error(1)
}

func (m *MockCheckInService) DeleteCheckIn(ctx context.Context, caller domain.Caller, checkInID string) error {
	args := m.Called(ctx, caller, checkInID)
	return args.Error(0)
}

func (m *MockCheckInService) ListQuickCheckIns(ctx context.Context, caller domain.Caller) ([]domain.QuickCheckIn, error) {
	args := m.Called(ctx, caller)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.QuickCheckIn), args.Error(1)
}

func (m *MockCheckInService) CreateQuickCheckIn(ctx context.Context, caller domain.Caller, req dto.CreateQuickCheckInRequest) (*domain.QuickCheckIn, error) {
	args := m.Called(ctx, caller, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.QuickCheckIn), args.Error(1)
}

func (m *MockCheckInService) GetQuickCheckIn(ctx context.Context, caller domain.Caller, quickCheckInID string) (*domain.QuickCheckIn, error) {
	args := m.Called(ctx, caller, quickCheckInID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.QuickCheckIn), args.Error(1)
}

func (m *MockCheckInService) UpdateQuickCheckIn(ctx context.Context, caller domain.Caller, quickCheckInID string, req dto.UpdateQuickCheckInRequest) (*domain.QuickCheckIn, error) {
	args := m.Called(ctx, caller, quickCheckInID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.QuickCheckIn), args.Error(1)
}

func (m *MockCheckInService) DeleteQuickCheckIn(ctx context.Context, caller domain.Caller, quickCheckInID string) error {
	args := m.Called(ctx, caller, quickCheckInID)
	return args.Error(0)
}

// Ensure mock implements the interface
var _ portssvc.CheckInSvcFacade = (*MockCheckInService)(nil)

// --- Mock user lookup for the auth middleware ---
type MockUserReader struct {
	mock.Mock
}

func (m *MockUserReader) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserReader) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

var _ portssvc.UserReaderSvc = (*MockUserReader)(nil)

// --- Test Suite ---
type CheckInHandlerTestSuite struct {
	suite.Suite
	router             *gin.Engine
	mockCheckInService *MockCheckInService
	mockUsers          *MockUserReader
	jwtSecret          string
	userID             string
	caller             domain.Caller
}

func (suite *CheckInHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"
	suite.userID = uuid.NewString()
	suite.caller = domain.Caller{UserID: suite.userID}

	suite.mockCheckInService = new(MockCheckInService)
	suite.mockUsers = new(MockUserReader)

	v1 := suite.router.Group("/api/v1", middleware.AuthMiddleware(suite.jwtSecret, suite.mockUsers))
	handlers.RegisterCheckInRoutes(v1, suite.mockCheckInService)
}

// generateTestToken creates a signed JWT for the suite's test user.
func (suite *CheckInHandlerTestSuite) generateTestToken() string {
	token, err := utils.GenerateJWT(suite.userID, suite.jwtSecret, time.Hour, "mindcare-test")
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return token
}

// expectAuthenticatedUser makes the auth middleware resolve the test user.
func (suite *CheckInHandlerTestSuite) expectAuthenticatedUser() {
	suite.mockUsers.On("GetUserByID", mock.Anything, suite.userID).
		Return(&domain.User{UserID: suite.userID, IsActive: true}, nil).Once()
}

func (suite *CheckInHandlerTestSuite) doRequest(method, url string, body []byte, withToken bool) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	} else {
		reader = bytes.NewReader(nil)
	}
	req, _ := http.NewRequest(method, url, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if withToken {
		req.Header.Set("Authorization", "Bearer "+suite.generateTestToken())
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *CheckInHandlerTestSuite) TestListCheckIns_Success() {
	suite.expectAuthenticatedUser()
	expected := []domain.CheckIn{
		{CheckInID: uuid.NewString(), UserID: suite.userID, Mood: "happy", Reason: "sunshine", Color: "#FFD700", CreatedAt: time.Now()},
		{CheckInID: uuid.NewString(), UserID: suite.userID, Mood: "tired", Reason: "late night", Color: "#808080", CreatedAt: time.Now().Add(-time.Hour)},
	}

	suite.mockCheckInService.On("ListCheckIns", mock.Anything, suite.caller).Return(expected, nil).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/checkin", nil, true)

	suite.Equal(http.StatusOK, w.Code)
	var body []dto.CheckInResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Len(body, 2)
	suite.Equal(expected[0].CheckInID, body[0].CheckInID)
	suite.mockCheckInService.AssertExpectations(suite.T())
}

func (suite *CheckInHandlerTestSuite) TestCreateCheckIn_Success() {
	suite.expectAuthenticatedUser()
	created := &domain.CheckIn{
		CheckInID: uuid.NewString(),
		UserID:    suite.userID,
		Mood:      "happy",
		Reason:    "sunshine",
		Color:     "#FFD700",
		CreatedAt: time.Now(),
	}

	suite.mockCheckInService.On("CreateCheckIn", mock.Anything, suite.caller, mock.MatchedBy(func(req dto.CreateCheckInRequest) bool {
		return req.Mood == "happy" && req.Reason == "sunshine"
	})).Return(created, nil).Once()

	payload, _ := json.Marshal(gin.H{"mood": "happy", "reason": "sunshine", "color": "#FFD700"})
	w := suite.doRequest(http.MethodPost, "/api/v1/checkin", payload, true)

	suite.Equal(http.StatusCreated, w.Code)
	var body dto.CheckInResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal(created.CheckInID, body.CheckInID)
	suite.mockCheckInService.AssertExpectations(suite.T())
}

func (suite *CheckInHandlerTestSuite) TestCreateCheckIn_MissingRequiredFields() {
	suite.expectAuthenticatedUser()

	payload, _ := json.Marshal(gin.H{"mood": "happy"}) // reason and color missing
	w := suite.doRequest(http.MethodPost, "/api/v1/checkin", payload, true)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockCheckInService.AssertNotCalled(suite.T(), "CreateCheckIn")
}

func (suite *CheckInHandlerTestSuite) TestGetCheckIn_NotFound() {
	suite.expectAuthenticatedUser()
	checkInID := uuid.NewString()

	suite.mockCheckInService.On("GetCheckIn", mock.Anything, suite.caller, checkInID).
		Return(nil, apperrors.ErrNotFound).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/checkin/"+checkInID, nil, true)

	suite.Equal(http.StatusNotFound, w.Code)
	var body handlers.ErrorResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal("Check-in not found", body.Error)
}

func (suite *CheckInHandlerTestSuite) TestDeleteQuickCheckIn_NoContent() {
	suite.expectAuthenticatedUser()
	quickCheckInID := uuid.NewString()

	suite.mockCheckInService.On("DeleteQuickCheckIn", mock.Anything, suite.caller, quickCheckInID).
		Return(nil).Once()

	w := suite.doRequest(http.MethodDelete, "/api/v1/checkin/quick/"+quickCheckInID, nil, true)

	suite.Equal(http.StatusNoContent, w.Code)
	suite.mockCheckInService.AssertExpectations(suite.T())
}

func (suite *CheckInHandlerTestSuite) TestMissingToken_Unauthorized() {
	w := suite.doRequest(http.MethodGet, "/api/v1/checkin", nil, false)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockCheckInService.AssertNotCalled(suite.T(), "ListCheckIns")
}

func (suite *CheckInHandlerTestSuite) TestDeactivatedAccount_Unauthorized() {
	suite.mockUsers.On("GetUserByID", mock.Anything, suite.userID).
		Return(&domain.User{UserID: suite.userID, IsActive: false}, nil).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/checkin", nil, true)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockCheckInService.AssertNotCalled(suite.T(), "ListCheckIns")
}

// --- Run Test Suite ---
func TestCheckInHandler(t *testing.T) {
	suite.Run(t, new(CheckInHandlerTestSuite))
}
