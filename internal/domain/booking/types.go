package booking

// Status is stored as text; new bookings are always confirmed.
type Status string

const StatusConfirmed Status = "confirmed"

func (s Status) String() string {
	return string(s)
}
