package services

import (
	"testing"

	"github.com/onboardai/task-engine/internal/models"
	"github.com/onboardai/task-engine/internal/repository"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type ConversationServiceTestSuite struct {
	suite.Suite
	db      *gorm.DB
	service *ConversationService
}

func (suite *ConversationServiceTestSuite) SetupTest() {
	suite.db = newTestDB(suite.T())
	suite.service = NewConversationService(repository.NewConversationRepository(suite.db), newUserRepo(suite.db))
	seedUser(suite.T(), suite.db, "U1", "Alice")
}

func (suite *ConversationServiceTestSuite) TestCreate_DefaultsToActive() {
	conversation, err := suite.service.Create(CreateConversationInput{ConversationID: "C1"})
	suite.Require().NoError(err)
	suite.Equal(models.ConversationStatusActive, conversation.Status)
	suite.Nil(conversation.UserID)
}

func (suite *ConversationServiceTestSuite) TestCreate_DuplicateExternalID() {
	_, err := suite.service.Create(CreateConversationInput{ConversationID: "C1"})
	suite.Require().NoError(err)

	_, err = suite.service.Create(CreateConversationInput{ConversationID: "C1"})
	suite.ErrorIs(err, ErrConversationExists)
}

func (suite *ConversationServiceTestSuite) TestCreate_RequiresConversationID() {
	_, err := suite.service.Create(CreateConversationInput{})
	suite.ErrorIs(err, ErrConversationIDRequired)
}

func (suite *ConversationServiceTestSuite) TestCreate_ValidatesUserReferenceOnlyWhenPresent() {
	ghost := "ghost"
	_, err := suite.service.Create(CreateConversationInput{ConversationID: "C1", UserID: &ghost})
	suite.ErrorIs(err, ErrUserNotFound)

	u1 := "U1"
	conversation, err := suite.service.Create(CreateConversationInput{ConversationID: "C2", UserID: &u1})
	suite.Require().NoError(err)
	suite.Require().NotNil(conversation.UserID)
	suite.Equal("U1", *conversation.UserID)
}

func (suite *ConversationServiceTestSuite) TestCreate_RejectsMalformedMessages() {
	_, err := suite.service.Create(CreateConversationInput{
		ConversationID: "C1",
		Messages:       []models.Message{{Role: "user", Content: ""}},
	})
	suite.ErrorIs(err, ErrMessageShapeInvalid)

	_, err = suite.service.Create(CreateConversationInput{
		ConversationID: "C1",
		Messages:       []models.Message{{Role: "", Content: "hello"}},
	})
	suite.ErrorIs(err, ErrMessageShapeInvalid)
}

func (suite *ConversationServiceTestSuite) TestUpdate_AppendedTranscriptRoundTrips() {
	_, err := suite.service.Create(CreateConversationInput{
		ConversationID: "C1",
		Messages:       []models.Message{{Role: "user", Content: "hi"}},
	})
	suite.Require().NoError(err)

	messages := []models.Message{
		{Role: "user", Content: "hi"},
		{Role: "assistant", Content: "hello, how can I help?"},
	}
	completed := models.ConversationStatusCompleted
	updated, err := suite.service.Update("C1", UpdateConversationInput{
		Messages: &messages,
		Status:   &completed,
	})
	suite.Require().NoError(err)

	got, err := suite.service.Get("C1")
	suite.Require().NoError(err)
	suite.Equal(updated.Status, got.Status)
	suite.Require().Len(got.Messages, 2)
	suite.Equal("assistant", got.Messages[1].Role)
}

func (suite *ConversationServiceTestSuite) TestUpdate_RejectsUnknownStatus() {
	_, err := suite.service.Create(CreateConversationInput{ConversationID: "C1"})
	suite.Require().NoError(err)

	bad := models.ConversationStatus("errored")
	_, err = suite.service.Update("C1", UpdateConversationInput{Status: &bad})
	suite.ErrorIs(err, ErrInvalidConversationStatus)
}

func (suite *ConversationServiceTestSuite) TestGet_Unknown() {
	_, err := suite.service.Get("missing")
	suite.ErrorIs(err, ErrConversationNotFound)
}

func TestConversationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ConversationServiceTestSuite))
}
