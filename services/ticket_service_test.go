package services_test

import (
	"context"
	"encoding/base64"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manivarun57/support-portal/apperrors"
	"github.com/manivarun57/support-portal/dto"
	"github.com/manivarun57/support-portal/models"
	"github.com/manivarun57/support-portal/repositories"
	"github.com/manivarun57/support-portal/repositories/mock_repositories"
	"github.com/manivarun57/support-portal/services"
)

type fakeBlobStore struct {
	url    string
	size   int64
	err    error
	called int
}

func (f *fakeBlobStore) Store(ctx context.Context, blob, filename, contentType string) (string, int64, error) {
	f.called++
	return f.url, f.size, f.err
}

func setupTicketMocks(t *testing.T, blobs *fakeBlobStore) (*services.Services,
	*mock_repositories.MockTicketRepo,
	*mock_repositories.MockTicketFileRepo,
	*mock_repositories.MockCommentRepo) {

	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockTicket := mock_repositories.NewMockTicketRepo(ctrl)
	mockFile := mock_repositories.NewMockTicketFileRepo(ctrl)
	mockComment := mock_repositories.NewMockCommentRepo(ctrl)

	repos := &repositories.Repos{
		Ticket:     mockTicket,
		TicketFile: mockFile,
		Comment:    mockComment,
	}
	return services.New(repos, blobs), mockTicket, mockFile, mockComment
}

func createInput() dto.CreateTicketDTO {
	return dto.CreateTicketDTO{
		Subject:     "VPN down",
		Priority:    "High",
		Category:    "network",
		Description: "Cannot connect since this morning",
	}
}

func TestCreateTicketWithoutAttachment(t *testing.T) {
	blobs := &fakeBlobStore{}
	svc, mockTicket, _, mockComment := setupTicketMocks(t, blobs)
	ctx := context.Background()

	start := time.Now().UTC().Add(-time.Second)
	mockTicket.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	var seeded *models.Comment
	mockComment.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, c *models.Comment) error {
			seeded = c
			return nil
		})

	ticket, err := svc.Ticket.CreateTicket(ctx, "alice", createInput())
	require.NoError(t, err)

	assert.NotEmpty(t, ticket.ID)
	assert.Equal(t, "alice", ticket.UserID)
	assert.Equal(t, models.TicketStatusOpen, ticket.Status)
	assert.Equal(t, models.TicketPriorityHigh, ticket.Priority)
	assert.Nil(t, ticket.AttachmentURL)
	assert.False(t, ticket.CreatedAt.Before(start))
	assert.Zero(t, blobs.called)

	require.NotNil(t, seeded)
	assert.Equal(t, ticket.ID, seeded.TicketID)
	assert.Equal(t, models.SupportTeamUserID, seeded.UserID)
	assert.Contains(t, seeded.Comment, "Thank you for submitting your ticket")
}

func TestCreateTicketWithAttachment(t *testing.T) {
	blobs := &fakeBlobStore{url: "/uploads/key-report.pdf", size: 11}
	svc, mockTicket, mockFile, mockComment := setupTicketMocks(t, blobs)
	ctx := context.Background()

	mockTicket.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	var savedFile *models.TicketFile
	mockFile.EXPECT().Save(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, f *models.TicketFile) error {
			savedFile = f
			return nil
		})
	mockComment.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	input := createInput()
	input.Attachment = base64.StdEncoding.EncodeToString([]byte("file bytes!"))
	input.AttachmentName = "report.pdf"
	input.AttachmentType = "application/pdf"

	ticket, err := svc.Ticket.CreateTicket(ctx, "alice", input)
	require.NoError(t, err)

	require.NotNil(t, ticket.AttachmentURL)
	assert.Equal(t, "/uploads/key-report.pdf", *ticket.AttachmentURL)
	assert.Equal(t, 1, blobs.called)

	require.NotNil(t, savedFile)
	assert.Equal(t, ticket.ID, savedFile.TicketID)
	assert.Equal(t, "report.pdf", savedFile.FileName)
	assert.Equal(t, "/uploads/key-report.pdf", savedFile.FileURL)
}

func TestCreateTicketValidationFailureSkipsPersistence(t *testing.T) {
	blobs := &fakeBlobStore{}
	svc, _, _, _ := setupTicketMocks(t, blobs)

	input := createInput()
	input.Subject = ""
	_, err := svc.Ticket.CreateTicket(context.Background(), "alice", input)
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrorTypeValidation, appErr.Type)
	assert.Zero(t, blobs.called)
}

func TestCreateTicketUploadFailureAborts(t *testing.T) {
	blobs := &fakeBlobStore{err: apperrors.NewPayloadTooLargeError("too big")}
	svc, _, _, _ := setupTicketMocks(t, blobs)

	input := createInput()
	input.Attachment = base64.StdEncoding.EncodeToString([]byte("x"))
	input.AttachmentName = "a.bin"

	_, err := svc.Ticket.CreateTicket(context.Background(), "alice", input)
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrorTypePayloadTooLarge, appErr.Type)
}

func TestCreateTicketRepoErrorPropagates(t *testing.T) {
	blobs := &fakeBlobStore{}
	svc, mockTicket, _, _ := setupTicketMocks(t, blobs)

	mockTicket.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("insert failed"))

	_, err := svc.Ticket.CreateTicket(context.Background(), "alice", createInput())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "insert failed")
}

func TestGetForUserPassesThroughNotFound(t *testing.T) {
	blobs := &fakeBlobStore{}
	svc, mockTicket, _, _ := setupTicketMocks(t, blobs)

	mockTicket.EXPECT().FindByIDForUser(gomock.Any(), "t-1", "mallory").
		Return(nil, apperrors.NewNotFoundError("Ticket not found"))

	_, err := svc.Ticket.GetForUser(context.Background(), "t-1", "mallory")
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}
