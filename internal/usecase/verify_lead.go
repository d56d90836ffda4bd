package usecase

import (
	"context"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/tikaramspirits/tikaram-api/internal/infra/http/middleware"
)

type VerifyLeadUseCase struct {
	Leads   LeadRepositoryInterface
	SiteURL string
}

func NewVerifyLeadUseCase(leads LeadRepositoryInterface, siteURL string) *VerifyLeadUseCase {
	return &VerifyLeadUseCase{
		Leads:   leads,
		SiteURL: strings.TrimRight(siteURL, "/"),
	}
}

// Execute returns the redirect target for the verification callback. Every
// non-success path lands on the site root: a missing, unknown or forged
// token must be indistinguishable from the outside, and a storage failure
// never renders an error page to the visitor.
func (uc *VerifyLeadUseCase) Execute(ctx context.Context, token string) string {
	root := uc.SiteURL + "/"

	if token == "" {
		return root
	}

	matched, err := uc.Leads.MarkVerified(ctx, token)
	if err != nil {
		log.WithError(err).Error("Verification update failed")
		return root
	}

	if matched == 0 {
		return root
	}

	middleware.RecordLeadVerified()
	return uc.SiteURL + "/verification-success"
}
