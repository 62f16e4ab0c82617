package handler_test

import (
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/tourism-portal/internal/delivery/http/handler"
	"github.com/tourism-portal/internal/pkg/errors"
	"github.com/tourism-portal/internal/usecase/dto"
)

func newChatbotApp(svc *MockChatbotService) *fiber.App {
	h := handler.NewChatbotHandler(svc, zap.NewNop())
	app := fiber.New()
	app.Post("/chatbot/messages", h.SendMessage)
	return app
}

func TestChatbotHandler_SendMessage(t *testing.T) {
	svc := new(MockChatbotService)
	app := newChatbotApp(svc)

	svc.On("SendMessage", mock.Anything, dto.ChatMessageRequest{Message: "hello", SessionID: "s1"}).
		Return(&dto.ChatMessageResponse{Message: "Hi!", ConversationID: "c0ffee00-0000-4000-8000-000000000001"}, nil)

	resp, env := doRequest(t, app, http.MethodPost, "/chatbot/messages", `{"message":"hello","session_id":"s1"}`)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(env.Data), `"message":"Hi!"`)
}

func TestChatbotHandler_RequiresMessage(t *testing.T) {
	svc := new(MockChatbotService)
	app := newChatbotApp(svc)

	resp, env := doRequest(t, app, http.MethodPost, "/chatbot/messages", `{"session_id":"s1"}`)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.NotNil(t, env.Error)
	svc.AssertNotCalled(t, "SendMessage", mock.Anything, mock.Anything)
}

func TestChatbotHandler_RateLimited(t *testing.T) {
	svc := new(MockChatbotService)
	app := newChatbotApp(svc)

	svc.On("SendMessage", mock.Anything, mock.Anything).Return(nil, errors.ErrRateLimited)

	resp, _ := doRequest(t, app, http.MethodPost, "/chatbot/messages", `{"message":"hello","session_id":"s1"}`)

	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
}
