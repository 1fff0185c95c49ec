package mailer

// BookingConfirmationJob is the JSON payload put on the RabbitMQ queue when a
// booking is created. The email worker renders and sends it.
type BookingConfirmationJob struct {
	To          string `json:"to"`
	GuestName   string `json:"guest_name"`
	PlaceTitle  string `json:"place_title"`
	PlaceAddr   string `json:"place_address"`
	CheckIn     string `json:"check_in"`
	CheckOut    string `json:"check_out"`
	Guests      int    `json:"guests"`
	Price       int    `json:"price"`
	BookingID   string `json:"booking_id"`
	ContactName string `json:"contact_name"`
}
