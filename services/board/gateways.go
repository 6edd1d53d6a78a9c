package board

import (
	"context"
	"time"

	"github.com/reelboard/reelboard/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/reelboard/reelboard/services/board Mailer,BoardGW

// Mailer is the out-of-band notification collaborator used for OTP
// delivery. It may fail independently of OTP state; the broker never
// retries on its behalf.
type Mailer interface {
	SendOTP(ctx context.Context, email, code string, expiresAt time.Time) error
}

// BoardGW publishes board lifecycle events to downstream consumers.
type BoardGW interface {
	PublishUserRegistered(ctx context.Context, event *models.UserRegisteredEvent) error
	PublishPosterModerated(ctx context.Context, event *models.PosterModeratedEvent) error
}
