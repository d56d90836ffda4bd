package usecase

import (
	"context"

	"github.com/tikaramspirits/tikaram-api/internal/entity"
	"github.com/tikaramspirits/tikaram-api/internal/infra/integration/geoip"
	"github.com/tikaramspirits/tikaram-api/internal/infra/queue"
)

type LeadRepositoryInterface interface {
	Create(ctx context.Context, lead *entity.Lead) error
	MarkVerified(ctx context.Context, token string) (int64, error)
}

type ReviewRepositoryInterface interface {
	Create(ctx context.Context, review *entity.Review) error
}

type TrafficLogRepositoryInterface interface {
	Create(ctx context.Context, logRow *entity.TrafficLog) error
}

type EmailService interface {
	SendVerification(to, firstName, verificationURL string) error
}

type LeadEventProducerInterface interface {
	PublishLeadCreated(ctx context.Context, payload queue.LeadCreatedPayload) error
}

type GeoLookupInterface interface {
	Lookup(ctx context.Context) (geoip.Location, error)
}
