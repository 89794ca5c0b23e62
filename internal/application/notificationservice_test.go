package application

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ericfisherdev/deploydrop/internal/domain/model"
)

func TestNotificationService_Current(t *testing.T) {
	tests := []struct {
		name   string
		source *mockNotificationSource
		want   model.Notification
	}{
		{
			name:   "no notification published",
			source: &mockNotificationSource{},
			want:   model.Notification{Message: "No notification available."},
		},
		{
			name:   "published message",
			source: &mockNotificationSource{message: "Build succeeded", present: true},
			want:   model.Notification{Message: "Build succeeded", Available: true},
		},
		{
			name:   "published empty message",
			source: &mockNotificationSource{message: "", present: true},
			want:   model.Notification{Message: "", Available: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewNotificationService(tt.source)

			got, err := svc.Current(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNotificationService_CurrentReadError(t *testing.T) {
	svc := NewNotificationService(&mockNotificationSource{readErr: errors.New("permission denied")})

	_, err := svc.Current(context.Background())
	assert.EqualError(t, err, "permission denied")
}

func TestNotificationService_PublishAndClear(t *testing.T) {
	source := &mockNotificationSource{}
	svc := NewNotificationService(source)
	ctx := context.Background()

	require.NoError(t, svc.Publish(ctx, "Deploy finished"))
	got, err := svc.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Deploy finished", got.Message)

	require.NoError(t, svc.Clear(ctx))
	assert.True(t, source.cleared)
	got, err = svc.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, model.NoNotificationMessage, got.Message)
}
