package queries

// ListLimit caps every list endpoint. Results past it are silently dropped.
const ListLimit = 100

// Nil fields do not filter.

type ProductFilter struct {
	Category *string
	Featured *bool
}

type BookingFilter struct {
	Status *string
}

type ReviewFilter struct {
	Approved *bool
}
