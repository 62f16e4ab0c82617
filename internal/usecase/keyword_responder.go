package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/tourism-portal/internal/domain"
	"github.com/tourism-portal/internal/domain/repository"
)

const keywordHelp = "I can tell you about Namibia's 14 regions, our multi-day routes and featured places to stay and eat. Try asking about Etosha, Swakopmund or a self-drive route."

var (
	greetingWords = []string{"hello", "hi", "hey", "good morning", "good afternoon", "good evening"}
	routeWords    = []string{"route", "itinerary", "trip", "self-drive", "road trip", "tour"}
	listingWords  = []string{"hotel", "lodge", "stay", "accommodation", "camp", "restaurant", "eat", "food", "where to"}
)

// KeywordResponder отвечает без внешней модели: по справочнику регионов,
// маршрутам и избранным объектам каталога
type KeywordResponder struct {
	registry    *domain.RegionRegistry
	routeRepo   repository.RouteRepository
	listingRepo repository.ListingRepository
}

// NewKeywordResponder создает ответчик по ключевым словам
func NewKeywordResponder(
	registry *domain.RegionRegistry,
	routeRepo repository.RouteRepository,
	listingRepo repository.ListingRepository,
) *KeywordResponder {
	return &KeywordResponder{
		registry:    registry,
		routeRepo:   routeRepo,
		listingRepo: listingRepo,
	}
}

// Reply отвечает на последнее сообщение пользователя
func (r *KeywordResponder) Reply(ctx context.Context, history []domain.ChatMessage) (string, error) {
	question := lastUserMessage(history)
	if question == "" {
		return keywordHelp, nil
	}
	text := strings.ToLower(question)

	if region, ok := r.mentionedRegion(text); ok {
		return fmt.Sprintf("%s region (capital %s): %s Highlights include %s.",
			region.Name, region.Capital, region.Description, strings.Join(region.Highlights, ", ")), nil
	}

	if containsAny(text, routeWords) {
		routes, err := r.routeRepo.List(ctx)
		if err != nil {
			return "", fmt.Errorf("keyword responder routes: %w", err)
		}
		if len(routes) == 0 {
			return "We are still putting our routes together. Check back soon!", nil
		}
		parts := make([]string, 0, len(routes))
		for _, route := range routes {
			parts = append(parts, fmt.Sprintf("%s (%d days, %s)", route.Name, route.Duration, route.Difficulty))
		}
		return "Here are our routes: " + strings.Join(parts, "; ") + ".", nil
	}

	if containsAny(text, listingWords) {
		featured := true
		listings, err := r.listingRepo.List(ctx, domain.ListingFilter{Featured: &featured})
		if err != nil {
			return "", fmt.Errorf("keyword responder listings: %w", err)
		}
		if len(listings) == 0 {
			return "Browse our listings to find places to stay and eat across Namibia.", nil
		}
		names := make([]string, 0, len(listings))
		for _, l := range listings {
			names = append(names, fmt.Sprintf("%s in %s", l.Name, l.Location))
		}
		return "Some of our favourite places: " + strings.Join(names, "; ") + ".", nil
	}

	if containsAny(text, greetingWords) {
		return "Hello! Welcome to Visit Namibia. " + keywordHelp, nil
	}

	return keywordHelp, nil
}

// mentionedRegion ищет в тексте название региона или известного места
func (r *KeywordResponder) mentionedRegion(text string) (domain.Region, bool) {
	for _, region := range r.registry.Regions() {
		if strings.Contains(text, strings.ToLower(region.Name)) {
			return region, true
		}
	}
	for _, loc := range r.registry.Locations() {
		if strings.Contains(text, loc.Location) {
			return r.registry.RegionByID(loc.RegionID)
		}
	}
	return domain.Region{}, false
}

func lastUserMessage(history []domain.ChatMessage) string {
	for i := len(history) - 1; i >= 0; i-- {
		if history[i].Role == domain.ChatRoleUser {
			return strings.TrimSpace(history[i].Content)
		}
	}
	return ""
}

func containsAny(text string, words []string) bool {
	for _, w := range words {
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
}
