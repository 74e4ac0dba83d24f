package booking

// Status values written by this codebase. The column itself is an
// open string set: status updates store whatever the caller sends.
type Status string

const (
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// InitialStatus is assigned to every new booking.
func InitialStatus() Status {
	return StatusConfirmed
}
