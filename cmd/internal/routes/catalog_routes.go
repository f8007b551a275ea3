package routes

import (
	"net/http"

	"driveline/cmd/internal/domain/entity"
	"driveline/cmd/internal/service"
	"driveline/cmd/internal/utils/apierror"
	"github.com/labstack/echo/v4"
)

type CatalogService interface {
	GetHome() *service.HomeResponse
	GetCars(q *service.CarQuery) *service.CarListResponse
	GetCar(rawID string) (*entity.VehicleDetail, apierror.ErrorResponse)
}

type DefaultCatalogRoute struct {
	CatalogService CatalogService
}

func NewCatalogDefault(catService CatalogService) *DefaultCatalogRoute {
	return &DefaultCatalogRoute{CatalogService: catService}
}

func (r *DefaultCatalogRoute) GetHome(c echo.Context) error {
	return c.JSON(http.StatusOK, r.CatalogService.GetHome())
}

func (r *DefaultCatalogRoute) GetCars(c echo.Context) error {
	q := &service.CarQuery{
		Search: c.QueryParam("search"),
		Type:   c.QueryParam("type"),
		Price:  c.QueryParam("price"),
		Year:   c.QueryParam("year"),
	}
	return c.JSON(http.StatusOK, r.CatalogService.GetCars(q))
}

func (r *DefaultCatalogRoute) GetCar(c echo.Context) error {
	car, apierr := r.CatalogService.GetCar(c.Param("id"))
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, car)
}
