package entity

import "time"

// Place is a rentable property listing. OwnerID is set at creation and never
// changes; updates replace every other field wholesale.
type Place struct {
	ID          string    `json:"id"`
	OwnerID     string    `json:"owner"`
	Title       string    `json:"title"`
	Address     string    `json:"address"`
	Description string    `json:"description"`
	Photos      []string  `json:"photos"`
	Perks       []string  `json:"perks"`
	ExtraInfo   string    `json:"extra_info"`
	CheckIn     string    `json:"check_in"`
	CheckOut    string    `json:"check_out"`
	MaxGuests   int       `json:"max_guests"`
	Price       int       `json:"price"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// PlaceFields carries the caller-editable fields of a listing, used for both
// create and wholesale update.
type PlaceFields struct {
	Title       string
	Address     string
	Description string
	Photos      []string
	Perks       []string
	ExtraInfo   string
	CheckIn     string
	CheckOut    string
	MaxGuests   int
	Price       int
}
