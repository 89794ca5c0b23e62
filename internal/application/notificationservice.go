package application

import (
	"context"

	"github.com/ericfisherdev/deploydrop/internal/domain/model"
	"github.com/ericfisherdev/deploydrop/internal/domain/port/driven"
)

// NotificationService serves the externally published notification message.
type NotificationService struct {
	source driven.NotificationSource
}

// NewNotificationService creates a new NotificationService.
func NewNotificationService(source driven.NotificationSource) *NotificationService {
	return &NotificationService{source: source}
}

// Current returns the published message, or the placeholder when none exists.
func (s *NotificationService) Current(ctx context.Context) (model.Notification, error) {
	msg, ok, err := s.source.Read(ctx)
	if err != nil {
		return model.Notification{}, err
	}
	if !ok {
		return model.Notification{Message: model.NoNotificationMessage}, nil
	}
	return model.Notification{Message: msg, Available: true}, nil
}

// Publish replaces the current message.
func (s *NotificationService) Publish(ctx context.Context, message string) error {
	return s.source.Write(ctx, message)
}

// Clear withdraws the current message so the placeholder is served again.
func (s *NotificationService) Clear(ctx context.Context) error {
	return s.source.Clear(ctx)
}
