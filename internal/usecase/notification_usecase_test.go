package usecase_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/tourism-portal/internal/domain"
	"github.com/tourism-portal/internal/usecase"
	"github.com/tourism-portal/internal/usecase/dto"
)

func TestNotificationUseCase_DispatchViaOutbox(t *testing.T) {
	ctx := context.Background()
	stream := &MockStreamRepository{}
	uc := usecase.NewNotificationUseCase(stream, nil, zap.NewNop(), true, "https://visitnamibia.test", "")

	msg := domain.EmailMessage{To: "guest@example.com", Subject: "Booking", Text: "See you soon"}
	stream.On("PublishToStream", ctx, domain.StreamEmailOutbox, mock.MatchedBy(func(e domain.EmailOutboxEvent) bool {
		return e.Kind == domain.EmailKindRaw && e.Message == msg && e.Attempt == 0 && !e.EnqueuedAt.IsZero()
	})).Return(nil).Once()

	assert.True(t, uc.Dispatch(ctx, msg))

	stream.On("PublishToStream", ctx, domain.StreamEmailOutbox, mock.Anything).Return(errors.New("redis down")).Once()
	assert.False(t, uc.Dispatch(ctx, msg))

	stream.AssertExpectations(t)
}

func TestNotificationUseCase_DispatchDirect(t *testing.T) {
	ctx := context.Background()
	mailer := &MockMailer{}
	uc := usecase.NewNotificationUseCase(nil, mailer, zap.NewNop(), false, "https://visitnamibia.test", "")

	msg := domain.EmailMessage{To: "guest@example.com", Subject: "Hi", HTML: "<p>Hi</p>"}
	mailer.On("Send", ctx, msg).Return(nil).Once()
	assert.True(t, uc.Dispatch(ctx, msg))

	mailer.On("Send", ctx, msg).Return(errors.New("smtp: 550")).Once()
	assert.False(t, uc.Dispatch(ctx, msg))
}

func TestNotificationUseCase_RejectsEmptyMessages(t *testing.T) {
	ctx := context.Background()
	mailer := &MockMailer{}
	uc := usecase.NewNotificationUseCase(nil, mailer, zap.NewNop(), false, "", "")

	assert.False(t, uc.Dispatch(ctx, domain.EmailMessage{To: "guest@example.com", Subject: "empty"}))
	assert.False(t, uc.Dispatch(ctx, domain.EmailMessage{Subject: "nobody", Text: "x"}))
	mailer.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}

func TestContactUseCase_StoresAndNotifies(t *testing.T) {
	ctx := context.Background()
	contactRepo := &MockContactRepository{}
	mailer := &MockMailer{}
	notifier := usecase.NewNotificationUseCase(nil, mailer, zap.NewNop(), false, "", "admin@visitnamibia.test")
	uc := usecase.NewContactUseCase(contactRepo, notifier, zap.NewNop())

	contactRepo.On("Create", ctx, mock.MatchedBy(func(m *domain.ContactMessage) bool {
		return m.Name == "Tuli" && m.Message == "<script>alert(1)</script> Is the road to Sossusvlei open?"
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*domain.ContactMessage).ID = 77
	}).Return(nil)

	var sent domain.EmailMessage
	mailer.On("Send", ctx, mock.Anything).Run(func(args mock.Arguments) {
		sent = args.Get(1).(domain.EmailMessage)
	}).Return(nil)

	resp, err := uc.Submit(ctx, dto.ContactRequest{
		Name:    " Tuli ",
		Email:   "tuli@example.com",
		Subject: "Roads",
		Message: "<script>alert(1)</script> Is the road to Sossusvlei open?",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(77), resp.ID)
	assert.True(t, resp.Notified)

	assert.Equal(t, "admin@visitnamibia.test", sent.To)
	assert.Contains(t, sent.Text, "<script>alert(1)</script>")
	assert.False(t, strings.Contains(sent.HTML, "<script>"), "html part must escape user input")
	assert.Contains(t, sent.HTML, "&lt;script&gt;")
}

func TestContactUseCase_NotificationFailureKeepsMessage(t *testing.T) {
	ctx := context.Background()
	contactRepo := &MockContactRepository{}
	mailer := &MockMailer{}
	notifier := usecase.NewNotificationUseCase(nil, mailer, zap.NewNop(), false, "", "admin@visitnamibia.test")
	uc := usecase.NewContactUseCase(contactRepo, notifier, zap.NewNop())

	contactRepo.On("Create", ctx, mock.Anything).Return(nil)
	mailer.On("Send", ctx, mock.Anything).Return(errors.New("smtp down"))

	resp, err := uc.Submit(ctx, dto.ContactRequest{Name: "A", Email: "a@example.com", Message: "Hello there, friends"})
	require.NoError(t, err)
	assert.False(t, resp.Notified)
}
