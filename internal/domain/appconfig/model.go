package appconfig

import "time"

// AppConfig is the clinic's singleton configuration document. There is
// exactly one row; updates replace it in place.
type AppConfig struct {
	ClinicName     string    `db:"clinic_name" json:"clinic_name"`
	Email          string    `db:"email" json:"email"`
	Phone          string    `db:"phone" json:"phone"`
	Address        string    `db:"address" json:"address"`
	OpeningHours   string    `db:"opening_hours" json:"opening_hours"`
	AppointmentFee int       `db:"appointment_fee" json:"appointment_fee"`
	UpdatedAt      time.Time `db:"updated_at" json:"updated_at"`
}
