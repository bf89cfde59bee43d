package orders

// Order statuses. The first five form the linear happy path shown on
// the tracking progress bar; cancelled is terminal and sits outside it.
const (
	StatusPending    = "pending"
	StatusConfirmed  = "confirmed"
	StatusProcessing = "processing"
	StatusShipped    = "shipped"
	StatusDelivered  = "delivered"
	StatusCancelled  = "cancelled"
)

// HappyPath is the display order of the progress bar.
var HappyPath = []string{
	StatusPending,
	StatusConfirmed,
	StatusProcessing,
	StatusShipped,
	StatusDelivered,
}

// IsKnown reports whether s is one of the six statuses. Transitions
// between known statuses are deliberately unconstrained; admins use
// the setter to correct mistakes in either direction.
func IsKnown(s string) bool {
	for _, h := range HappyPath {
		if s == h {
			return true
		}
	}
	return s == StatusCancelled
}

// Progress returns the tracking bar percentage for a status:
// (index+1)/5 along the happy path. Cancelled and unknown statuses
// render at zero; cancelled carries its own badge instead.
func Progress(status string) int {
	for i, s := range HappyPath {
		if status == s {
			return (i + 1) * 100 / len(HappyPath)
		}
	}
	return 0
}
