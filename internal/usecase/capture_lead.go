package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/tikaramspirits/tikaram-api/internal/entity"
	"github.com/tikaramspirits/tikaram-api/internal/infra/queue"
)

// CouponCode is the welcome entitlement every verified lead unlocks. One
// constant for everyone in this version; per-lead codes would go here later.
const CouponCode = "TIKARAM-FIRST-2025"

type CaptureLeadUseCase struct {
	Leads    LeadRepositoryInterface
	Producer LeadEventProducerInterface
	Mailer   EmailService
	SiteURL  string
}

func NewCaptureLeadUseCase(
	leads LeadRepositoryInterface,
	producer LeadEventProducerInterface,
	mailer EmailService,
	siteURL string,
) *CaptureLeadUseCase {
	return &CaptureLeadUseCase{
		Leads:    leads,
		Producer: producer,
		Mailer:   mailer,
		SiteURL:  strings.TrimRight(siteURL, "/"),
	}
}

// Execute validates the submission, persists the lead, and dispatches the
// verification email out-of-band. The insert decides the outcome; email
// dispatch is best-effort and cannot fail the request.
func (uc *CaptureLeadUseCase) Execute(ctx context.Context, input CaptureLeadInput) (*CaptureLeadOutput, error) {
	email := strings.TrimSpace(input.Email)
	if email == "" {
		return nil, &DomainError{
			Code:    CodeMissingField,
			Message: "email is required",
		}
	}
	if !isValidEmail(email) {
		return nil, &DomainError{
			Code:    CodeInvalidEmail,
			Message: "email is invalid",
		}
	}

	dob := strings.TrimSpace(input.DateOfBirth)
	if dob != "" {
		birth, err := parseBirthDate(dob)
		if err != nil {
			return nil, &DomainError{
				Code:    CodeInvalidDate,
				Message: "date_of_birth must be a valid date (YYYY-MM-DD)",
			}
		}
		if !isOfLegalAge(birth, time.Now()) {
			return nil, &DomainError{
				Code:    CodeUnderage,
				Message: "you must be at least 21 years old",
			}
		}
	}

	lead := &entity.Lead{
		Email:       email,
		FirstName:   strings.TrimSpace(input.FirstName),
		ZipCode:     strings.TrimSpace(input.ZipCode),
		DateOfBirth: dob,
		CouponCode:  CouponCode,
	}

	if err := uc.Leads.Create(ctx, lead); err != nil {
		if err == entity.ErrEmailAlreadyExists {
			return nil, &DomainError{
				Code:    CodeDuplicateEmail,
				Message: "email already exists",
			}
		}
		return nil, &TechnicalError{
			Code:    CodeDatabaseError,
			Message: "failed to create lead: " + err.Error(),
		}
	}

	// The token comes from the database default on insert. A row without one
	// means the schema is broken, and silently skipping verification would
	// strand every lead unverified forever.
	if lead.VerificationToken == "" {
		return nil, &TechnicalError{
			Code:    CodeTokenGeneration,
			Message: entity.ErrTokenNotGenerated.Error(),
		}
	}

	uc.dispatchVerification(ctx, lead)

	return &CaptureLeadOutput{Success: true, LeadID: lead.ID}, nil
}

func (uc *CaptureLeadUseCase) dispatchVerification(ctx context.Context, lead *entity.Lead) {
	verificationURL := fmt.Sprintf("%s/leads/verify?token=%s", uc.SiteURL, lead.VerificationToken)

	if uc.Producer != nil {
		err := uc.Producer.PublishLeadCreated(ctx, queue.LeadCreatedPayload{
			LeadID:          lead.ID,
			Email:           lead.Email,
			FirstName:       lead.FirstName,
			VerificationURL: verificationURL,
		})
		if err != nil {
			reportBestEffort("publish_lead_created", err)
		}
		return
	}

	if uc.Mailer != nil {
		go func() {
			if err := uc.Mailer.SendVerification(lead.Email, lead.FirstName, verificationURL); err != nil {
				reportBestEffort("send_verification_email", err)
			}
		}()
	}
}
