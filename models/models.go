package models

import "time"

// Product is a catalog entry. Price carries the storefront display
// form ("Rs. 1,500 - 3,000"); PriceMin/PriceMax hold the parsed bounds.
type Product struct {
	ProductID   string    `json:"productid" bson:"productid"`
	Name        string    `json:"name" bson:"name"`
	Category    string    `json:"category" bson:"category"`
	Image       string    `json:"image" bson:"image"`
	Price       string    `json:"price" bson:"price"`
	PriceMin    int       `json:"price_min" bson:"price_min"`
	PriceMax    int       `json:"price_max" bson:"price_max"`
	Description string    `json:"description,omitempty" bson:"description,omitempty"`
	OutOfStock  bool      `json:"is_out_of_stock" bson:"is_out_of_stock"`
	NewArrival  bool      `json:"is_new_arrival" bson:"is_new_arrival"`
	HasOffer    bool      `json:"has_offer" bson:"has_offer"`
	OfferText   string    `json:"offer_text,omitempty" bson:"offer_text,omitempty"`
	Sizes       []string  `json:"sizes,omitempty" bson:"sizes,omitempty"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" bson:"updated_at"`
}

type Order struct {
	OrderID         string      `json:"orderid" bson:"orderid"`
	OrderNumber     string      `json:"order_number" bson:"order_number"`
	CustomerName    string      `json:"customer_name" bson:"customer_name"`
	CustomerPhone   string      `json:"customer_phone" bson:"customer_phone"`
	CustomerEmail   string      `json:"customer_email,omitempty" bson:"customer_email,omitempty"`
	CustomerAddress string      `json:"customer_address" bson:"customer_address"`
	TotalAmount     int         `json:"total_amount" bson:"total_amount"`
	Status          string      `json:"status" bson:"status"`
	PaymentMethod   string      `json:"payment_method" bson:"payment_method"`
	Notes           string      `json:"notes,omitempty" bson:"notes,omitempty"`
	Items           []OrderItem `json:"items" bson:"-"`
	CreatedAt       time.Time   `json:"created_at" bson:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at" bson:"updated_at"`
}

// OrderItem snapshots the product name and unit price at order time;
// it never references the live product record.
type OrderItem struct {
	ItemID      string    `json:"itemid" bson:"itemid"`
	OrderID     string    `json:"orderid" bson:"orderid"`
	ProductName string    `json:"product_name" bson:"product_name"`
	Size        string    `json:"size,omitempty" bson:"size,omitempty"`
	Quantity    int       `json:"quantity" bson:"quantity"`
	Price       int       `json:"price" bson:"price"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
}

// CartItem is one line of a device-scoped cart. Price is the display
// string copied from the product at add time.
type CartItem struct {
	ProductID string `json:"productid"`
	Name      string `json:"name"`
	Price     string `json:"price"`
	Image     string `json:"image,omitempty"`
	Size      string `json:"size,omitempty"`
	Quantity  int    `json:"quantity"`
}

type User struct {
	UserID        string    `json:"userid" bson:"userid"`
	Username      string    `json:"username" bson:"username"`
	Email         string    `json:"email" bson:"email"`
	Password      string    `json:"password,omitempty" bson:"password"`
	Role          []string  `json:"role" bson:"role"`
	RefreshToken  string    `json:"-" bson:"refresh_token,omitempty"`
	RefreshExpiry time.Time `json:"-" bson:"refresh_expiry,omitempty"`
	LastLogin     time.Time `json:"last_login,omitempty" bson:"last_login,omitempty"`
	CreatedAt     time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" bson:"updated_at"`
}

// LookPost is one entry of the lookbook feed shown on the storefront.
type LookPost struct {
	PostID    string    `json:"postid" bson:"postid"`
	Image     string    `json:"image" bson:"image"`
	Caption   string    `json:"caption,omitempty" bson:"caption,omitempty"`
	Likes     int       `json:"likes" bson:"likes"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}

// OrderEvent is broadcast to admin dashboards over the order feed.
type OrderEvent struct {
	Type        string    `json:"type"` // "created" or "status"
	OrderID     string    `json:"orderid"`
	OrderNumber string    `json:"order_number"`
	Status      string    `json:"status"`
	At          time.Time `json:"at"`
}
