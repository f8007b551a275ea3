package service

import (
	"strconv"

	"driveline/cmd/internal/domain/catalog"
	"driveline/cmd/internal/domain/entity"
	"driveline/cmd/internal/utils/apierror"
)

// Catalog is the read-only vehicle source the storefront queries.
type Catalog interface {
	List() []entity.Vehicle
	Featured() []entity.Vehicle
	GetByID(id int) *entity.VehicleDetail
	Filter(q catalog.Query) []entity.Vehicle
}

// CarQuery mirrors the listing page's search box and filter widgets.
type CarQuery struct {
	Search string
	Type   string
	Price  string
	Year   string
}

type CarListResponse struct {
	Cars   []entity.Vehicle `json:"cars"`
	Search string           `json:"search,omitempty"`
}

type HomeResponse struct {
	Featured []entity.Vehicle `json:"featured"`
}

type DefaultCatalogService struct {
	Catalog Catalog
}

func NewCatalogService(cat Catalog) *DefaultCatalogService {
	return &DefaultCatalogService{Catalog: cat}
}

func (c *DefaultCatalogService) GetHome() *HomeResponse {
	return &HomeResponse{Featured: c.Catalog.Featured()}
}

func (c *DefaultCatalogService) GetCars(q *CarQuery) *CarListResponse {
	cars := c.Catalog.Filter(catalog.Query{
		Search: q.Search,
		Type:   q.Type,
		Price:  q.Price,
		Year:   q.Year,
	})
	return &CarListResponse{Cars: cars, Search: q.Search}
}

// GetCar resolves a raw id from the URL. Anything that is not a known
// vehicle id comes back as a not-found pointing at the listing, never as a
// server failure.
func (c *DefaultCatalogService) GetCar(rawID string) (*entity.VehicleDetail, apierror.ErrorResponse) {
	id, err := strconv.Atoi(rawID)
	if err != nil {
		return nil, apierror.NewNotFound("Car not found", "/api/cars")
	}

	car := c.Catalog.GetByID(id)
	if car == nil {
		return nil, apierror.NewNotFound("Car not found", "/api/cars")
	}
	return car, nil
}
