package gateway

import (
	"context"

	"github.com/reelboard/reelboard/internal/pkg/models"
)

// PublishUserRegistered announces a new account to downstream consumers.
func (g *BoardGW) PublishUserRegistered(_ context.Context, event *models.UserRegisteredEvent) error {
	if g.producer == nil {
		return nil
	}
	return g.producer.Publish(models.TopicUserRegistered, event)
}

// PublishPosterModerated announces a moderation decision. Approvals and
// rejections go to separate topics so consumers can subscribe to either.
func (g *BoardGW) PublishPosterModerated(_ context.Context, event *models.PosterModeratedEvent) error {
	if g.producer == nil {
		return nil
	}
	topic := models.TopicPosterRejected
	if event.Approved {
		topic = models.TopicPosterApproved
	}
	return g.producer.Publish(topic, event)
}
