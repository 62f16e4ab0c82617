package client

import (
	"context"
	"net/http"

	"github.com/tourism-portal/internal/usecase/dto"
)

// Register регистрирует пользователя и запоминает выданный токен
func (c *Client) Register(ctx context.Context, req dto.RegisterRequest) (*dto.TokenResponse, error) {
	var token dto.TokenResponse
	if err := c.do(ctx, http.MethodPost, "/auth/register", nil, req, &token); err != nil {
		return nil, err
	}
	c.SetToken(token.AccessToken)
	return &token, nil
}

// Login выполняет вход и запоминает выданный токен
func (c *Client) Login(ctx context.Context, req dto.LoginRequest) (*dto.TokenResponse, error) {
	var token dto.TokenResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", nil, req, &token); err != nil {
		return nil, err
	}
	c.SetToken(token.AccessToken)
	return &token, nil
}

// Logout отзывает токен на сервере и забывает его локально
func (c *Client) Logout(ctx context.Context) error {
	if err := c.do(ctx, http.MethodPost, "/auth/logout", nil, nil, nil); err != nil {
		return err
	}
	c.SetToken("")
	return nil
}

func (c *Client) RequestPasswordReset(ctx context.Context, email string) error {
	return c.do(ctx, http.MethodPost, "/auth/password-reset", nil, dto.PasswordResetRequest{Email: email}, nil)
}

func (c *Client) ConfirmPasswordReset(ctx context.Context, req dto.PasswordResetConfirmRequest) error {
	return c.do(ctx, http.MethodPost, "/auth/password-reset/confirm", nil, req, nil)
}
