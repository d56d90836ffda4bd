package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/tikaramspirits/tikaram-api/internal/entity"
	"github.com/tikaramspirits/tikaram-api/internal/infra/queue"
	"github.com/tikaramspirits/tikaram-api/internal/usecase"
)

// MockLeadRepository
type MockLeadRepository struct {
	mock.Mock
}

func (m *MockLeadRepository) Create(ctx context.Context, lead *entity.Lead) error {
	args := m.Called(ctx, lead)
	return args.Error(0)
}

func (m *MockLeadRepository) MarkVerified(ctx context.Context, token string) (int64, error) {
	args := m.Called(ctx, token)
	return args.Get(0).(int64), args.Error(1)
}

// MockLeadEventProducer
type MockLeadEventProducer struct {
	mock.Mock
}

func (m *MockLeadEventProducer) PublishLeadCreated(ctx context.Context, payload queue.LeadCreatedPayload) error {
	args := m.Called(ctx, payload)
	return args.Error(0)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendVerification(to, firstName, verificationURL string) error {
	args := m.Called(to, firstName, verificationURL)
	return args.Error(0)
}

func TestCaptureLeadSuccess(t *testing.T) {
	ctx := context.Background()

	mockRepo := new(MockLeadRepository)
	mockProducer := new(MockLeadEventProducer)

	mockRepo.On("Create", ctx, mock.Anything).Run(func(args mock.Arguments) {
		lead := args.Get(1).(*entity.Lead)
		lead.ID = "lead-123"
		lead.VerificationToken = "tok-abc"
		lead.CreatedAt = time.Now()
	}).Return(nil)

	mockProducer.On("PublishLeadCreated", ctx, mock.MatchedBy(func(p queue.LeadCreatedPayload) bool {
		return p.LeadID == "lead-123" &&
			p.Email == "fan@example.com" &&
			p.VerificationURL == "https://tikaramspirits.com/leads/verify?token=tok-abc"
	})).Return(nil)

	uc := usecase.NewCaptureLeadUseCase(mockRepo, mockProducer, nil, "https://tikaramspirits.com/")

	output, err := uc.Execute(ctx, usecase.CaptureLeadInput{
		Email:     "fan@example.com",
		FirstName: "Ana",
		ZipCode:   "33606",
	})

	assert.NoError(t, err)
	assert.NotNil(t, output)
	assert.True(t, output.Success)
	assert.Equal(t, "lead-123", output.LeadID)

	mockRepo.AssertCalled(t, "Create", ctx, mock.MatchedBy(func(lead *entity.Lead) bool {
		return lead.CouponCode == usecase.CouponCode && !lead.IsVerified
	}))
	mockProducer.AssertExpectations(t)
}

func TestCaptureLeadMissingEmail(t *testing.T) {
	ctx := context.Background()

	mockRepo := new(MockLeadRepository)
	uc := usecase.NewCaptureLeadUseCase(mockRepo, nil, nil, "https://tikaramspirits.com")

	output, err := uc.Execute(ctx, usecase.CaptureLeadInput{Email: "   "})

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, usecase.IsDomainError(err))

	var domainErr *usecase.DomainError
	assert.True(t, errors.As(err, &domainErr))
	assert.Equal(t, usecase.CodeMissingField, domainErr.Code)

	mockRepo.AssertNotCalled(t, "Create")
}

func TestCaptureLeadInvalidEmail(t *testing.T) {
	ctx := context.Background()

	mockRepo := new(MockLeadRepository)
	uc := usecase.NewCaptureLeadUseCase(mockRepo, nil, nil, "https://tikaramspirits.com")

	output, err := uc.Execute(ctx, usecase.CaptureLeadInput{Email: "not-an-email"})

	assert.Error(t, err)
	assert.Nil(t, output)

	var domainErr *usecase.DomainError
	assert.True(t, errors.As(err, &domainErr))
	assert.Equal(t, usecase.CodeInvalidEmail, domainErr.Code)

	mockRepo.AssertNotCalled(t, "Create")
}

func TestCaptureLeadDuplicateEmail(t *testing.T) {
	ctx := context.Background()

	mockRepo := new(MockLeadRepository)
	mockProducer := new(MockLeadEventProducer)

	mockRepo.On("Create", ctx, mock.Anything).Return(entity.ErrEmailAlreadyExists)

	uc := usecase.NewCaptureLeadUseCase(mockRepo, mockProducer, nil, "https://tikaramspirits.com")

	output, err := uc.Execute(ctx, usecase.CaptureLeadInput{Email: "fan@example.com"})

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, usecase.IsDomainError(err))

	var domainErr *usecase.DomainError
	assert.True(t, errors.As(err, &domainErr))
	assert.Equal(t, usecase.CodeDuplicateEmail, domainErr.Code)

	mockProducer.AssertNotCalled(t, "PublishLeadCreated")
}

func TestCaptureLeadStorageFailure(t *testing.T) {
	ctx := context.Background()

	mockRepo := new(MockLeadRepository)
	mockRepo.On("Create", ctx, mock.Anything).Return(errors.New("connection refused"))

	uc := usecase.NewCaptureLeadUseCase(mockRepo, nil, nil, "https://tikaramspirits.com")

	output, err := uc.Execute(ctx, usecase.CaptureLeadInput{Email: "fan@example.com"})

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, usecase.IsTechnicalError(err))
}

func TestCaptureLeadMissingToken(t *testing.T) {
	ctx := context.Background()

	mockRepo := new(MockLeadRepository)
	mockProducer := new(MockLeadEventProducer)

	// Insert succeeds but the row comes back without a token.
	mockRepo.On("Create", ctx, mock.Anything).Run(func(args mock.Arguments) {
		lead := args.Get(1).(*entity.Lead)
		lead.ID = "lead-123"
	}).Return(nil)

	uc := usecase.NewCaptureLeadUseCase(mockRepo, mockProducer, nil, "https://tikaramspirits.com")

	output, err := uc.Execute(ctx, usecase.CaptureLeadInput{Email: "fan@example.com"})

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, usecase.IsTechnicalError(err))

	var techErr *usecase.TechnicalError
	assert.True(t, errors.As(err, &techErr))
	assert.Equal(t, usecase.CodeTokenGeneration, techErr.Code)

	mockProducer.AssertNotCalled(t, "PublishLeadCreated")
}

func TestCaptureLeadPublishFailureStillSucceeds(t *testing.T) {
	ctx := context.Background()

	mockRepo := new(MockLeadRepository)
	mockProducer := new(MockLeadEventProducer)

	mockRepo.On("Create", ctx, mock.Anything).Run(func(args mock.Arguments) {
		lead := args.Get(1).(*entity.Lead)
		lead.ID = "lead-123"
		lead.VerificationToken = "tok-abc"
	}).Return(nil)
	mockProducer.On("PublishLeadCreated", ctx, mock.Anything).Return(errors.New("broker unavailable"))

	uc := usecase.NewCaptureLeadUseCase(mockRepo, mockProducer, nil, "https://tikaramspirits.com")

	output, err := uc.Execute(ctx, usecase.CaptureLeadInput{Email: "fan@example.com"})

	assert.NoError(t, err)
	assert.NotNil(t, output)
	assert.True(t, output.Success)
}

func TestCaptureLeadDirectSendFailureStillSucceeds(t *testing.T) {
	ctx := context.Background()

	mockRepo := new(MockLeadRepository)
	mockMailer := new(MockEmailService)

	mockRepo.On("Create", ctx, mock.Anything).Run(func(args mock.Arguments) {
		lead := args.Get(1).(*entity.Lead)
		lead.ID = "lead-123"
		lead.VerificationToken = "tok-abc"
	}).Return(nil)

	sent := make(chan struct{}, 1)
	mockMailer.On("SendVerification", "fan@example.com", "Ana", mock.Anything).Run(func(args mock.Arguments) {
		sent <- struct{}{}
	}).Return(errors.New("smtp down"))

	// No producer configured; the email goes out directly.
	uc := usecase.NewCaptureLeadUseCase(mockRepo, nil, mockMailer, "https://tikaramspirits.com")

	output, err := uc.Execute(ctx, usecase.CaptureLeadInput{
		Email:     "fan@example.com",
		FirstName: "Ana",
	})

	assert.NoError(t, err)
	assert.NotNil(t, output)
	assert.True(t, output.Success)

	select {
	case <-sent:
	case <-time.After(time.Second):
		t.Fatal("verification email was never attempted")
	}
}

func TestCaptureLeadInvalidBirthDate(t *testing.T) {
	ctx := context.Background()

	mockRepo := new(MockLeadRepository)
	uc := usecase.NewCaptureLeadUseCase(mockRepo, nil, nil, "https://tikaramspirits.com")

	output, err := uc.Execute(ctx, usecase.CaptureLeadInput{
		Email:       "fan@example.com",
		DateOfBirth: "15/05/1990",
	})

	assert.Error(t, err)
	assert.Nil(t, output)

	var domainErr *usecase.DomainError
	assert.True(t, errors.As(err, &domainErr))
	assert.Equal(t, usecase.CodeInvalidDate, domainErr.Code)

	mockRepo.AssertNotCalled(t, "Create")
}

func TestCaptureLeadUnderage(t *testing.T) {
	ctx := context.Background()

	mockRepo := new(MockLeadRepository)
	uc := usecase.NewCaptureLeadUseCase(mockRepo, nil, nil, "https://tikaramspirits.com")

	// 18 years old today.
	dob := time.Now().AddDate(-18, 0, 0).Format("2006-01-02")

	output, err := uc.Execute(ctx, usecase.CaptureLeadInput{
		Email:       "fan@example.com",
		DateOfBirth: dob,
	})

	assert.Error(t, err)
	assert.Nil(t, output)

	var domainErr *usecase.DomainError
	assert.True(t, errors.As(err, &domainErr))
	assert.Equal(t, usecase.CodeUnderage, domainErr.Code)

	mockRepo.AssertNotCalled(t, "Create")
}
