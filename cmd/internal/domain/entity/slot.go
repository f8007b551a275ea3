package entity

// Slot is one named key→text cell, the server-side stand-in for a browser
// storage slot. The appointment ledger keeps its whole serialized
// collection in a single row.
type Slot struct {
	Key       string `gorm:"primaryKey"`
	Value     string `gorm:"not null"`
	UpdatedAt int64  `gorm:"not null"`
}
