package domain

import (
	"strings"
	"time"
)

// MediaType - тип медиафайла
type MediaType string

const (
	MediaTypePhoto MediaType = "photo"
	MediaTypeVideo MediaType = "video"
	MediaTypeVR    MediaType = "vr"
)

// ParseMediaType разбирает тип медиа без учёта регистра
func ParseMediaType(s string) (MediaType, bool) {
	switch MediaType(strings.ToLower(strings.TrimSpace(s))) {
	case MediaTypePhoto:
		return MediaTypePhoto, true
	case MediaTypeVideo:
		return MediaTypeVideo, true
	case MediaTypeVR:
		return MediaTypeVR, true
	default:
		return "", false
	}
}

// MediaDescriptor - как показывать медиа данного типа
type MediaDescriptor struct {
	Label      string `json:"label"`
	Icon       string `json:"icon"`
	Embeddable bool   `json:"embeddable"`
}

// Descriptor возвращает описание отображения для типа медиа
func (t MediaType) Descriptor() MediaDescriptor {
	switch t {
	case MediaTypePhoto:
		return MediaDescriptor{Label: "Photo", Icon: "image", Embeddable: false}
	case MediaTypeVideo:
		return MediaDescriptor{Label: "Video", Icon: "film", Embeddable: true}
	case MediaTypeVR:
		return MediaDescriptor{Label: "360° tour", Icon: "vr-headset", Embeddable: true}
	default:
		return MediaDescriptor{Label: "File", Icon: "file"}
	}
}

// Media - медиафайл, опционально привязанный к объекту каталога
type Media struct {
	ID           int64     `json:"id" db:"id"`
	ListingID    *int64    `json:"listing_id" db:"listing_id"`
	MediaType    MediaType `json:"media_type" db:"media_type"`
	FileURL      string    `json:"file_url" db:"file_url"`
	ThumbnailURL string    `json:"thumbnail_url" db:"thumbnail_url"`
	Title        string    `json:"title" db:"title"`
	Description  string    `json:"description" db:"description"`
	FileSize     int64     `json:"file_size" db:"file_size"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// MediaFilter - фильтр медиа для админки
type MediaFilter struct {
	ListingIDs []int64
	MediaType  MediaType
}
