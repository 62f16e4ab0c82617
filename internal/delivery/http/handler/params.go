package handler

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/tourism-portal/internal/domain"
	"github.com/tourism-portal/internal/pkg/errors"
)

// fieldErrors собирает ошибки разбора query/path параметров
type fieldErrors map[string]interface{}

func (f fieldErrors) err() error {
	if len(f) == 0 {
		return nil
	}
	return errors.ErrInvalidRequest.WithDetails(map[string]interface{}{"fields": map[string]interface{}(f)})
}

func parseIDParam(c *fiber.Ctx, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Params(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, fieldErrors{name: "must be a positive integer"}.err()
	}
	return id, nil
}

func parseBody(c *fiber.Ctx, dst interface{}) error {
	if err := c.BodyParser(dst); err != nil {
		return errors.ErrInvalidRequest.WithMessage("Invalid request body")
	}
	return nil
}

// parseListingFilter разбирает categoryId, region, search, featured
func parseListingFilter(c *fiber.Ctx) (domain.ListingFilter, error) {
	var (
		filter domain.ListingFilter
		errs   = fieldErrors{}
	)

	if raw := strings.TrimSpace(c.Query("categoryId")); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			errs["categoryId"] = "must be a positive integer"
		} else {
			filter.CategoryID = &id
		}
	}

	if raw := strings.TrimSpace(c.Query("featured")); raw != "" {
		featured, err := strconv.ParseBool(raw)
		if err != nil {
			errs["featured"] = "must be true or false"
		} else {
			filter.Featured = &featured
		}
	}

	filter.Region = strings.TrimSpace(c.Query("region"))
	filter.Search = strings.TrimSpace(c.Query("search"))

	return filter, errs.err()
}

// parseRouteFilter разбирает duration, difficulty, startLocation
func parseRouteFilter(c *fiber.Ctx) (domain.RouteFilter, error) {
	var (
		filter domain.RouteFilter
		errs   = fieldErrors{}
	)

	if raw := strings.TrimSpace(c.Query("duration")); raw != "" {
		duration, err := strconv.Atoi(raw)
		if err != nil || duration <= 0 {
			errs["duration"] = "must be a positive integer"
		} else {
			filter.Duration = &duration
		}
	}

	if raw := strings.ToLower(strings.TrimSpace(c.Query("difficulty"))); raw != "" {
		difficulty := domain.Difficulty(raw)
		if !difficulty.IsValid() {
			errs["difficulty"] = "must be one of: easy, moderate, challenging"
		} else {
			filter.Difficulty = difficulty
		}
	}

	filter.StartLocation = strings.TrimSpace(c.Query("startLocation"))

	return filter, errs.err()
}

// parseMediaFilter разбирает listingIds=1,2,3 и type
func parseMediaFilter(c *fiber.Ctx) (domain.MediaFilter, error) {
	var (
		filter domain.MediaFilter
		errs   = fieldErrors{}
	)

	if raw := strings.TrimSpace(c.Query("listingIds")); raw != "" {
		for _, part := range strings.Split(raw, ",") {
			id, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
			if err != nil || id <= 0 {
				errs["listingIds"] = "must be a comma separated list of positive integers"
				break
			}
			filter.ListingIDs = append(filter.ListingIDs, id)
		}
	}

	if raw := strings.TrimSpace(c.Query("type")); raw != "" {
		mediaType, ok := domain.ParseMediaType(raw)
		if !ok {
			errs["type"] = "must be one of: photo, video, vr"
		} else {
			filter.MediaType = mediaType
		}
	}

	return filter, errs.err()
}

// confirmed - явное подтверждение удаления ?confirm=true
func confirmed(c *fiber.Ctx) bool {
	ok, err := strconv.ParseBool(c.Query("confirm"))
	return err == nil && ok
}
