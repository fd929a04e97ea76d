package domain

type ItemStatus string

const (
	ItemStatusAvailable ItemStatus = "available"
	ItemStatusBooked    ItemStatus = "booked"
	ItemStatusSold      ItemStatus = "sold"
)

// PlaceholderImageURL is stored when a listing is created without an image.
const PlaceholderImageURL = "https://upload.wikimedia.org/wikipedia/commons/d/d1/Image_not_available.png"

type Item struct {
	ID          int        `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Price       float64    `json:"price"`
	Image       string     `json:"image"`
	Seller      string     `json:"seller"`
	Status      ItemStatus `json:"status"`
	Buyer       string     `json:"buyer,omitempty"`
}
