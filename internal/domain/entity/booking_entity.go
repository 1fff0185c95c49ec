package entity

import "time"

// Booking reserves a Place for a date range. Immutable after creation; there
// is no cancellation path. Overlapping bookings for the same place are not
// prevented — availability is a product non-goal, not an invariant.
type Booking struct {
	ID        string    `json:"id"`
	PlaceID   string    `json:"place"`
	UserID    string    `json:"user"`
	CheckIn   time.Time `json:"check_in"`
	CheckOut  time.Time `json:"check_out"`
	Guests    int       `json:"number_of_guests"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Price     int       `json:"price"` // price snapshot at booking time
	CreatedAt time.Time `json:"created_at"`
}

// BookingWithPlace is a booking with its listing resolved inline, as returned
// by the caller-bookings listing.
type BookingWithPlace struct {
	Booking
	Place Place `json:"place_details"`
}
