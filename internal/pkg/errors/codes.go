package errors

import "net/http"

var (
	ErrNotFound = New(
		"NOT_FOUND",
		"Resource not found",
		http.StatusNotFound,
	)

	ErrCategoryNotFound = New(
		"CATEGORY_NOT_FOUND",
		"Category not found",
		http.StatusNotFound,
	)

	ErrListingNotFound = New(
		"LISTING_NOT_FOUND",
		"Listing not found",
		http.StatusNotFound,
	)

	ErrRouteNotFound = New(
		"ROUTE_NOT_FOUND",
		"Route not found",
		http.StatusNotFound,
	)

	ErrMediaNotFound = New(
		"MEDIA_NOT_FOUND",
		"Media not found",
		http.StatusNotFound,
	)

	ErrRegionNotFound = New(
		"REGION_NOT_FOUND",
		"Region not found",
		http.StatusNotFound,
	)

	ErrConversationNotFound = New(
		"CONVERSATION_NOT_FOUND",
		"Conversation not found",
		http.StatusNotFound,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrSlugConflict = New(
		"SLUG_CONFLICT",
		"Slug is already in use",
		http.StatusConflict,
	)

	ErrEmailTaken = New(
		"EMAIL_TAKEN",
		"Email is already registered",
		http.StatusConflict,
	)

	ErrForeignKey = New(
		"REFERENCE_NOT_FOUND",
		"Referenced record does not exist",
		http.StatusUnprocessableEntity,
	)

	ErrConfirmationRequired = New(
		"CONFIRMATION_REQUIRED",
		"Delete must be confirmed with confirm=true",
		http.StatusPreconditionRequired,
	)

	ErrUnauthorized = New(
		"UNAUTHORIZED",
		"Authentication required",
		http.StatusUnauthorized,
	)

	ErrInvalidCredentials = New(
		"INVALID_CREDENTIALS",
		"Invalid email or password",
		http.StatusUnauthorized,
	)

	ErrInvalidToken = New(
		"INVALID_TOKEN",
		"Token is invalid or expired",
		http.StatusUnauthorized,
	)

	ErrForbidden = New(
		"FORBIDDEN",
		"Insufficient permissions",
		http.StatusForbidden,
	)

	ErrRateLimited = New(
		"RATE_LIMITED",
		"Too many requests, try again later",
		http.StatusTooManyRequests,
	)

	ErrDatabaseError = New(
		"DATABASE_ERROR",
		"Database operation failed",
		http.StatusInternalServerError,
	)

	ErrCacheError = New(
		"CACHE_ERROR",
		"Cache operation failed",
		http.StatusInternalServerError,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)

// RecoveryPath - куда отправить пользователя со страницы "не найдено"
func RecoveryPath(err *AppError, path string) *AppError {
	return err.WithDetails(map[string]interface{}{
		"recovery_path": path,
	})
}
