package dto

import (
	"time"

	"github.com/tourism-portal/internal/domain"
)

// RegionResolveResponse - результат определения региона по месту.
// Found=false означает, что регион неизвестен.
type RegionResolveResponse struct {
	Location string         `json:"location"`
	Found    bool           `json:"found"`
	RegionID string         `json:"region_id,omitempty"`
	Region   *domain.Region `json:"region,omitempty"`
}

// CategoryResponse - категория с вычисленной иконкой
type CategoryResponse struct {
	domain.Category
	DisplayIcon string `json:"display_icon"`
}

// MediaResponse - медиа с описанием отображения по типу
type MediaResponse struct {
	domain.Media
	Display domain.MediaDescriptor `json:"display"`
}

// ChatMessageResponse - ответ чат-бота
type ChatMessageResponse struct {
	Message        string `json:"message"`
	ConversationID string `json:"conversation_id"`
}

// TokenResponse - выданный токен доступа
type TokenResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	ExpiresAt   time.Time    `json:"expires_at"`
	User        *domain.User `json:"user"`
}

// ContactResponse - подтверждение приёма сообщения
type ContactResponse struct {
	ID       int64 `json:"id"`
	Notified bool  `json:"notified"`
}

// NewCategoryResponse конвертирует категорию
func NewCategoryResponse(c domain.Category) CategoryResponse {
	return CategoryResponse{Category: c, DisplayIcon: c.DisplayIcon()}
}

// NewCategoryResponses конвертирует список категорий
func NewCategoryResponses(categories []domain.Category) []CategoryResponse {
	result := make([]CategoryResponse, 0, len(categories))
	for _, c := range categories {
		result = append(result, NewCategoryResponse(c))
	}
	return result
}

// NewMediaResponses конвертирует список медиа
func NewMediaResponses(media []domain.Media) []MediaResponse {
	result := make([]MediaResponse, 0, len(media))
	for _, m := range media {
		result = append(result, MediaResponse{Media: m, Display: m.MediaType.Descriptor()})
	}
	return result
}
