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
)

// --- Mock JournalRepository ---
type MockJournalRepository struct {
	mock.Mock
}

func (m *MockJournalRepository) FindJournalEntryByID(ctx context.Context, journalEntryID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, journalEntryID)
	var entry *domain.JournalEntry
	if args.Get(0) != nil {
		entry = args.Get(0).(*domain.JournalEntry)
	}
	return entry, args.Error(1)
}

func (m *MockJournalRepository) FindJournalEntriesByOwner(ctx context.Context, userID string) ([]domain.JournalEntry, error) {
	args := m.Called(ctx, userID)
	var entries []domain.JournalEntry
	if args.Get(0) != nil {
		entries = args.Get(0).([]domain.JournalEntry)
	}
	return entries, args.Error(1)
}

func (m *MockJournalRepository) SaveJournalEntry(ctx context.Context, entry domain.JournalEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockJournalRepository) UpdateJournalEntry(ctx context.Context, entry domain.JournalEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockJournalRepository) DeleteJournalEntry(ctx context.Context, journalEntryID string) error {
	args := m.Called(ctx, journalEntryID)
	return args.Error(0)
}

// --- Test Suite ---
type JournalServiceTestSuite struct {
	suite.Suite
	mockRepo *MockJournalRepository
	service  portssvc.JournalSvcFacade
	owner    domain.Caller
	stranger domain.Caller
}

func (suite *JournalServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockJournalRepository)
	suite.service = services.NewJournalService(suite.mockRepo)
	suite.owner = domain.Caller{UserID: uuid.NewString()}
	suite.stranger = domain.Caller{UserID: uuid.NewString()}
}

func (suite *JournalServiceTestSuite) TestCreateJournalEntry_Success() {
	ctx := context.Background()
	title := "Morning pages"
	req := dto.CreateJournalEntryRequest{Title: &title, Content: "Slept badly but the walk helped."}

	suite.mockRepo.On("SaveJournalEntry", ctx, mock.MatchedBy(func(e domain.JournalEntry) bool {
		return e.UserID == suite.owner.UserID &&
			e.JournalEntryID != "" &&
			e.CreatedAt.Equal(e.UpdatedAt)
	})).Return(nil).Once()

	entry, err := suite.service.CreateJournalEntry(ctx, suite.owner, req)

	suite.Require().NoError(err)
	suite.Equal("Slept badly but the walk helped.", entry.Content)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *JournalServiceTestSuite) TestCreateJournalEntry_UntitledAllowed() {
	ctx := context.Background()
	req := dto.CreateJournalEntryRequest{Content: "just words"}

	suite.mockRepo.On("SaveJournalEntry", ctx, mock.MatchedBy(func(e domain.JournalEntry) bool {
		return e.Title == nil
	})).Return(nil).Once()

	entry, err := suite.service.CreateJournalEntry(ctx, suite.owner, req)

	suite.Require().NoError(err)
	suite.Nil(entry.Title)
}

func (suite *JournalServiceTestSuite) TestGetJournalEntry_CrossOwnerHiddenAsNotFound() {
	ctx := context.Background()
	journalEntryID := uuid.NewString()
	stored := &domain.JournalEntry{JournalEntryID: journalEntryID, UserID: suite.owner.UserID, Content: "private"}

	suite.mockRepo.On("FindJournalEntryByID", ctx, journalEntryID).Return(stored, nil).Once()

	entry, err := suite.service.GetJournalEntry(ctx, suite.stranger, journalEntryID)

	suite.Require().Error(err)
	suite.Nil(entry)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *JournalServiceTestSuite) TestUpdateJournalEntry_RefreshesUpdatedAtOnly() {
	ctx := context.Background()
	journalEntryID := uuid.NewString()
	createdAt := time.Now().Add(-48 * time.Hour)
	stored := &domain.JournalEntry{
		JournalEntryID: journalEntryID,
		UserID:         suite.owner.UserID,
		Content:        "old content",
		CreatedAt:      createdAt,
		UpdatedAt:      createdAt,
	}
	newContent := "revised content"

	suite.mockRepo.On("FindJournalEntryByID", ctx, journalEntryID).Return(stored, nil).Once()
	suite.mockRepo.On("UpdateJournalEntry", ctx, mock.MatchedBy(func(e domain.JournalEntry) bool {
		return e.Content == newContent &&
			e.CreatedAt.Equal(createdAt) &&
			e.UpdatedAt.After(createdAt)
	})).Return(nil).Once()

	entry, err := suite.service.UpdateJournalEntry(ctx, suite.owner, journalEntryID, dto.UpdateJournalEntryRequest{Content: &newContent})

	suite.Require().NoError(err)
	suite.Equal(newContent, entry.Content)
	suite.True(entry.UpdatedAt.After(createdAt))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *JournalServiceTestSuite) TestUpdateJournalEntry_CrossOwnerHiddenAsNotFound() {
	ctx := context.Background()
	journalEntryID := uuid.NewString()
	stored := &domain.JournalEntry{JournalEntryID: journalEntryID, UserID: suite.owner.UserID}
	newContent := "intruder edit"

	suite.mockRepo.On("FindJournalEntryByID", ctx, journalEntryID).Return(stored, nil).Once()

	entry, err := suite.service.UpdateJournalEntry(ctx, suite.stranger, journalEntryID, dto.UpdateJournalEntryRequest{Content: &newContent})

	suite.Require().Error(err)
	suite.Nil(entry)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateJournalEntry")
}

func (suite *JournalServiceTestSuite) TestDeleteJournalEntry_OwnerSucceeds() {
	ctx := context.Background()
	journalEntryID := uuid.NewString()
	stored := &domain.JournalEntry{JournalEntryID: journalEntryID, UserID: suite.owner.UserID}

	suite.mockRepo.On("FindJournalEntryByID", ctx, journalEntryID).Return(stored, nil).Once()
	suite.mockRepo.On("DeleteJournalEntry", ctx, journalEntryID).Return(nil).Once()

	err := suite.service.DeleteJournalEntry(ctx, suite.owner, journalEntryID)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *JournalServiceTestSuite) TestListJournalEntries_ScopedToCaller() {
	ctx := context.Background()
	stored := []domain.JournalEntry{{JournalEntryID: uuid.NewString(), UserID: suite.owner.UserID}}

	suite.mockRepo.On("FindJournalEntriesByOwner", ctx, suite.owner.UserID).Return(stored, nil).Once()

	entries, err := suite.service.ListJournalEntries(ctx, suite.owner)

	suite.Require().NoError(err)
	suite.Equal(stored, entries)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestJournalServiceTestSuite(t *testing.T) {
	suite.Run(t, new(JournalServiceTestSuite))
}
