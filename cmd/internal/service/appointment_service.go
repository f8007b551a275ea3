package service

import (
	"encoding/json"
	"time"

	"driveline/cmd/internal/domain/entity"
	"driveline/cmd/internal/utils"
	"driveline/cmd/internal/utils/apierror"
	"driveline/cmd/internal/utils/clock"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
)

// ledgerSlot is the storage key the whole appointment collection lives
// under, kept identical to the slot name older deployments wrote.
const ledgerSlot = "testDriveAppointments"

const bookingLayout = "2006-01-02 15:04"

// Storage is the named-slot persistence the ledger writes through. Load
// returns "" for a slot that was never written. Implementations hold the
// serialized collection as opaque text; the ledger owns the encoding.
type Storage interface {
	Load(key string) (string, error)
	Save(key, value string) error
}

type ScheduleRequest struct {
	Name    string `json:"name" validate:"required,max=120"`
	Email   string `json:"email" validate:"required,email"`
	Date    string `json:"date" validate:"required,bookdate"`
	Time    string `json:"time" validate:"required,timeslot"`
	CarID   string `json:"carId" validate:"required"`
	CarName string `json:"carName" validate:"required"`
}

type AppointmentResponse struct {
	ID          int64  `json:"id"`
	CarID       string `json:"carId"`
	CarName     string `json:"carName"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Date        string `json:"date"`
	DateDisplay string `json:"dateDisplay"`
	Time        string `json:"time"`
	TimeDisplay string `json:"timeDisplay"`
	ScheduledAt string `json:"scheduledAt"`
	Status      string `json:"status"`
}

// PartitionResponse is the upcoming/past split the appointments view
// renders. Every ledger record lands in exactly one of the two lists.
type PartitionResponse struct {
	Upcoming []*AppointmentResponse `json:"upcoming"`
	Past     []*AppointmentResponse `json:"past"`
}

// ScheduleFormResponse is the pre-filled context for the schedule form.
// RescheduleID carries the prior booking's identity when the caller came
// from a reschedule action; submitting the form still creates a new
// booking and leaves the prior one untouched.
type ScheduleFormResponse struct {
	CarID        string   `json:"carId"`
	CarName      string   `json:"carName"`
	TimeSlots    []string `json:"timeSlots"`
	MinDate      string   `json:"minDate"`
	RescheduleID int64    `json:"rescheduleId,omitempty"`
}

type DefaultLedgerService struct {
	Store    Storage
	Validate *validator.Validate
	Clock    clock.Clock
}

func NewLedgerService(store Storage, validate *validator.Validate, clk clock.Clock) *DefaultLedgerService {
	return &DefaultLedgerService{Store: store, Validate: validate, Clock: clk}
}

// LoadAll returns the persisted collection. A missing slot, a storage
// failure or corrupt text all degrade to an empty ledger; the caller never
// sees an error. Records persisted before the status field existed read
// back as Confirmed.
func (l *DefaultLedgerService) LoadAll() []entity.Appointment {
	raw, err := l.Store.Load(ledgerSlot)
	if err != nil {
		log.Errorf("failed to read ledger slot: %v", err)
		return []entity.Appointment{}
	}
	if raw == "" {
		return []entity.Appointment{}
	}

	var appts []entity.Appointment
	if err := json.Unmarshal([]byte(raw), &appts); err != nil {
		log.Errorf("discarding corrupt ledger slot: %v", err)
		return []entity.Appointment{}
	}

	for i := range appts {
		if appts[i].Status == "" {
			appts[i].Status = entity.StatusConfirmed
		}
	}
	return appts
}

func (l *DefaultLedgerService) CreateAppointment(req *ScheduleRequest) (*AppointmentResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if err := l.Validate.Struct(req); err != nil {
		return nil, apierror.FromValidationError(err)
	}

	appts := l.LoadAll()
	now := l.Clock.Now().UTC()

	appt := entity.Appointment{
		ID:          nextID(appts, now),
		CarID:       req.CarID,
		CarName:     req.CarName,
		Name:        req.Name,
		Email:       req.Email,
		Date:        req.Date,
		Time:        req.Time,
		ScheduledAt: now.Format(time.RFC3339),
		Status:      entity.StatusConfirmed,
	}

	appts = append(appts, appt)
	if err := l.persist(appts); err != nil {
		log.Errorf("failed to persist new appointment: %v", err)
		return nil, apierror.InternalServerError
	}
	return toAppointmentResponse(&appt), nil
}

// CancelAppointment marks the booking Cancelled. An unknown id and an
// already-cancelled booking are both no-ops; repeated cancels converge on
// the same terminal state.
func (l *DefaultLedgerService) CancelAppointment(id int64) apierror.ErrorResponse {
	appts := l.LoadAll()

	changed := false
	for i := range appts {
		if appts[i].ID == id && appts[i].Status != entity.StatusCancelled {
			appts[i].Status = entity.StatusCancelled
			changed = true
		}
	}
	if !changed {
		return nil
	}

	if err := l.persist(appts); err != nil {
		log.Errorf("failed to persist cancellation of appointment %d: %v", id, err)
		return apierror.InternalServerError
	}
	return nil
}

// GetAppointments splits the ledger into upcoming and past relative to the
// clock's current instant.
func (l *DefaultLedgerService) GetAppointments() (*PartitionResponse, apierror.ErrorResponse) {
	appts := l.LoadAll()
	now := l.Clock.Now()

	resp := &PartitionResponse{
		Upcoming: []*AppointmentResponse{},
		Past:     []*AppointmentResponse{},
	}
	for i := range appts {
		if isUpcoming(&appts[i], now) {
			resp.Upcoming = append(resp.Upcoming, toAppointmentResponse(&appts[i]))
		} else {
			resp.Past = append(resp.Past, toAppointmentResponse(&appts[i]))
		}
	}
	return resp, nil
}

// Reschedule hands back the schedule form pre-filled from an existing
// booking. It does not touch the ledger: the new form submission books a
// fresh appointment, and whether the old one gets cancelled is a separate
// call the client makes (or doesn't).
func (l *DefaultLedgerService) Reschedule(id int64) (*ScheduleFormResponse, apierror.ErrorResponse) {
	for _, appt := range l.LoadAll() {
		if appt.ID == id {
			form := l.ScheduleForm(appt.CarID, appt.CarName)
			form.RescheduleID = appt.ID
			return form, nil
		}
	}
	return nil, apierror.NotFoundError
}

// ScheduleForm returns the blank form context for a vehicle: the fixed
// time slots and the earliest bookable date (tomorrow).
func (l *DefaultLedgerService) ScheduleForm(carID, carName string) *ScheduleFormResponse {
	tomorrow := l.Clock.Now().AddDate(0, 0, 1)
	return &ScheduleFormResponse{
		CarID:     carID,
		CarName:   carName,
		TimeSlots: entity.TimeSlots,
		MinDate:   tomorrow.Format("2006-01-02"),
	}
}

func (l *DefaultLedgerService) persist(appts []entity.Appointment) error {
	raw, err := json.Marshal(appts)
	if err != nil {
		return err
	}
	return l.Store.Save(ledgerSlot, string(raw))
}

// nextID hands out the current epoch millis bumped past every identity
// already in the ledger, so two bookings in the same millisecond stay
// distinct and ids keep increasing.
func nextID(appts []entity.Appointment, now time.Time) int64 {
	id := now.UnixMilli()
	for _, appt := range appts {
		if appt.ID >= id {
			id = appt.ID + 1
		}
	}
	return id
}

// isUpcoming reports whether the booking's local date+time lies strictly
// after now. Cancelled bookings, unparseable moments and a booking
// scheduled for this exact instant all count as past, so the partition
// stays total.
func isUpcoming(appt *entity.Appointment, now time.Time) bool {
	if appt.Status == entity.StatusCancelled {
		return false
	}
	at, err := time.ParseInLocation(bookingLayout, appt.Date+" "+appt.Time, now.Location())
	if err != nil {
		return false
	}
	return at.After(now)
}

func toAppointmentResponse(appt *entity.Appointment) *AppointmentResponse {
	return &AppointmentResponse{
		ID:          appt.ID,
		CarID:       appt.CarID,
		CarName:     appt.CarName,
		Name:        appt.Name,
		Email:       appt.Email,
		Date:        appt.Date,
		DateDisplay: utils.FormatDate(appt.Date),
		Time:        appt.Time,
		TimeDisplay: utils.FormatTime(appt.Time),
		ScheduledAt: appt.ScheduledAt,
		Status:      appt.Status,
	}
}
