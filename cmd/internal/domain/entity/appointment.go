package entity

// Appointment statuses. Nothing here ever produces Completed; it stays in
// the vocabulary so externally seeded records survive a round trip.
const (
	StatusConfirmed = "Confirmed"
	StatusCompleted = "Completed"
	StatusCancelled = "Cancelled"
)

// TimeSlots is the fixed set of bookable times the schedule form offers.
var TimeSlots = []string{"09:00", "10:00", "11:00", "13:00", "14:00", "15:00", "16:00"}

// Appointment is one test-drive booking as it lives inside the ledger slot.
// Date is "2006-01-02" and Time is "15:04"; both stay strings until the
// upcoming/past split needs a real instant. CarID is a string because it
// arrives from the schedule form's query string and stored records carry
// it that way.
type Appointment struct {
	ID          int64  `json:"id"`
	CarID       string `json:"carId"`
	CarName     string `json:"carName"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	ScheduledAt string `json:"scheduledAt"`
	Status      string `json:"status,omitempty"`
}
