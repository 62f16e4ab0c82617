package usecase

import (
	"strings"

	"github.com/tourism-portal/internal/domain"
	"github.com/tourism-portal/internal/pkg/errors"
	"github.com/tourism-portal/internal/usecase/dto"
)

// RegionUseCase - справочник регионов Намибии
type RegionUseCase struct {
	registry *domain.RegionRegistry
}

// NewRegionUseCase создает новый экземпляр RegionUseCase
func NewRegionUseCase(registry *domain.RegionRegistry) *RegionUseCase {
	return &RegionUseCase{registry: registry}
}

// List возвращает все регионы
func (uc *RegionUseCase) List() []domain.Region {
	return uc.registry.Regions()
}

// Get возвращает регион по идентификатору
func (uc *RegionUseCase) Get(id string) (*domain.Region, error) {
	region, ok := uc.registry.RegionByID(id)
	if !ok {
		return nil, errors.RecoveryPath(errors.ErrRegionNotFound, "/regions")
	}
	return &region, nil
}

// Resolve определяет регион по названию места. Неизвестное место - не ошибка.
func (uc *RegionUseCase) Resolve(location string) dto.RegionResolveResponse {
	resp := dto.RegionResolveResponse{Location: strings.TrimSpace(location)}

	regionID, ok := uc.registry.RegionFromLocation(location)
	if !ok {
		return resp
	}

	resp.Found = true
	resp.RegionID = regionID
	if region, ok := uc.registry.RegionByID(regionID); ok {
		resp.Region = &region
	}
	return resp
}
