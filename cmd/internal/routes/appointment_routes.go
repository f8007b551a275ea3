package routes

import (
	"net/http"
	"strconv"

	"driveline/cmd/internal/service"
	"driveline/cmd/internal/utils/apierror"
	"github.com/labstack/echo/v4"
)

type AppointmentService interface {
	GetAppointments() (*service.PartitionResponse, apierror.ErrorResponse)
	CreateAppointment(req *service.ScheduleRequest) (*service.AppointmentResponse, apierror.ErrorResponse)
	CancelAppointment(id int64) apierror.ErrorResponse
	Reschedule(id int64) (*service.ScheduleFormResponse, apierror.ErrorResponse)
	ScheduleForm(carID, carName string) *service.ScheduleFormResponse
}

type DefaultAppointmentRoute struct {
	AppointmentService AppointmentService
}

func NewAppointmentDefault(apptService AppointmentService) *DefaultAppointmentRoute {
	return &DefaultAppointmentRoute{AppointmentService: apptService}
}

func (a *DefaultAppointmentRoute) GetAppointments(c echo.Context) error {
	appts, apierr := a.AppointmentService.GetAppointments()
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, appts)
}

func (a *DefaultAppointmentRoute) CreateAppointment(c echo.Context) error {
	var req service.ScheduleRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	appt, apierr := a.AppointmentService.CreateAppointment(&req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, appt)
}

// CancelAppointment returns 200 even for ids the ledger has never seen;
// cancelling is idempotent.
func (a *DefaultAppointmentRoute) CancelAppointment(c echo.Context) error {
	id, err := parseAppointmentID(c.Param("id"))
	if err != nil {
		errResp := apierror.NewSimple(http.StatusBadRequest, "ID is not a number")
		return c.JSON(errResp.Code(), errResp)
	}

	apierr := a.AppointmentService.CancelAppointment(id)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.NoContent(http.StatusOK)
}

func (a *DefaultAppointmentRoute) Reschedule(c echo.Context) error {
	id, err := parseAppointmentID(c.Param("id"))
	if err != nil {
		errResp := apierror.NewSimple(http.StatusBadRequest, "ID is not a number")
		return c.JSON(errResp.Code(), errResp)
	}

	form, apierr := a.AppointmentService.Reschedule(id)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, form)
}

func (a *DefaultAppointmentRoute) GetScheduleForm(c echo.Context) error {
	carID := c.QueryParam("carId")
	if carID == "" {
		errResp := apierror.NewMissingParamError("carId")
		return c.JSON(errResp.Code(), errResp)
	}

	form := a.AppointmentService.ScheduleForm(carID, c.QueryParam("carName"))
	return c.JSON(http.StatusOK, form)
}

func parseAppointmentID(raw string) (int64, error) {
	return strconv.ParseInt(raw, 10, 64)
}
