package dto

// CategoryRequest - создание/обновление категории
type CategoryRequest struct {
	Name         string `json:"name" validate:"required,max=100"`
	Slug         string `json:"slug" validate:"required,max=100,slug"`
	Description  string `json:"description" validate:"max=2000"`
	Icon         string `json:"icon" validate:"max=50"`
	DisplayOrder int    `json:"display_order" validate:"min=0"`
	IsActive     *bool  `json:"is_active,omitempty"`
}

// ListingRequest - создание/обновление объекта каталога.
// Features - JSON-массив строк в виде строки, например `["WiFi","Parking"]`.
type ListingRequest struct {
	CategoryID       int64  `json:"category_id" validate:"required,min=1"`
	Name             string `json:"name" validate:"required,max=200"`
	Slug             string `json:"slug" validate:"required,max=200,slug"`
	Description      string `json:"description" validate:"max=10000"`
	ShortDescription string `json:"short_description" validate:"max=300"`
	Location         string `json:"location" validate:"max=200"`
	Region           string `json:"region" validate:"max=100"`
	Address          string `json:"address" validate:"max=300"`
	Phone            string `json:"phone" validate:"max=50"`
	Email            string `json:"email" validate:"omitempty,email"`
	Website          string `json:"website" validate:"omitempty,url"`
	PriceRange       string `json:"price_range" validate:"omitempty,oneof=$ $$ $$$ $$$$"`
	Features         string `json:"features" validate:"omitempty,json_string_list"`
	IsActive         *bool  `json:"is_active,omitempty"`
	IsFeatured       bool   `json:"is_featured"`
}

// MediaRequest - регистрация медиафайла по URL
type MediaRequest struct {
	ListingID    *int64 `json:"listing_id,omitempty" validate:"omitempty,min=1"`
	MediaType    string `json:"media_type" validate:"required,media_type"`
	FileURL      string `json:"file_url" validate:"required,url"`
	ThumbnailURL string `json:"thumbnail_url" validate:"omitempty,url"`
	Title        string `json:"title" validate:"max=200"`
	Description  string `json:"description" validate:"max=2000"`
	FileSize     int64  `json:"file_size" validate:"min=0"`
}

// ChatMessageRequest - сообщение пользователя чат-боту
type ChatMessageRequest struct {
	Message        string `json:"message" validate:"required,max=2000"`
	SessionID      string `json:"session_id" validate:"required,max=100"`
	ConversationID string `json:"conversation_id,omitempty" validate:"omitempty,uuid"`
}

// RegisterRequest - регистрация пользователя
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	Name     string `json:"name" validate:"required,max=100"`
}

// LoginRequest - вход по email и паролю
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// PasswordResetRequest - запрос письма для сброса пароля
type PasswordResetRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// PasswordResetConfirmRequest - установка нового пароля по токену
type PasswordResetConfirmRequest struct {
	Token    string `json:"token" validate:"required"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// ContactRequest - сообщение из формы обратной связи
type ContactRequest struct {
	Name    string `json:"name" validate:"required,max=100"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject" validate:"max=200"`
	Message string `json:"message" validate:"required,min=10,max=5000"`
}
