package models

import "time"

// User represents a registered shopper or admin
type User struct {
	ID        int64     `db:"id" json:"id"`
	Email     string    `db:"email" json:"email"`
	Password  string    `db:"password" json:"-"`
	Name      string    `db:"name" json:"name"`
	Phone     *string   `db:"phone" json:"phone,omitempty"`
	Address   *string   `db:"address" json:"address,omitempty"`
	IsAdmin   bool      `db:"is_admin" json:"is_admin"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// UserPatch lists the profile fields a user may change. Nil fields are
// left untouched.
type UserPatch struct {
	Name    *string `json:"name,omitempty"`
	Phone   *string `json:"phone,omitempty"`
	Address *string `json:"address,omitempty"`
}

// Category represents a catalog category
type Category struct {
	ID       int64  `db:"id" json:"id"`
	Name     string `db:"name" json:"name"`
	Slug     string `db:"slug" json:"slug"`
	Icon     string `db:"icon" json:"icon"`
	ParentID *int64 `db:"parent_id" json:"parent_id,omitempty"`

	// Populated by the category listing query, not a column on its own.
	ProductsCount int `db:"products_count" json:"products_count"`
}

// Product represents a catalog product
type Product struct {
	ID           int64     `db:"id" json:"id"`
	Name         string    `db:"name" json:"name"`
	Slug         string    `db:"slug" json:"slug"`
	Description  *string   `db:"description" json:"description,omitempty"`
	Price        float64   `db:"price" json:"price"`
	OldPrice     *float64  `db:"old_price" json:"old_price,omitempty"`
	CategoryID   *int64    `db:"category_id" json:"category_id,omitempty"`
	Image        string    `db:"image" json:"image"`
	Stock        int       `db:"stock" json:"stock"`
	Rating       float64   `db:"rating" json:"rating"`
	ReviewsCount int       `db:"reviews_count" json:"reviews_count"`
	IsFeatured   bool      `db:"is_featured" json:"is_featured"`
	IsActive     bool      `db:"is_active" json:"is_active"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`

	CategoryName *string `db:"category_name" json:"category_name,omitempty"`
	CategorySlug *string `db:"category_slug" json:"category_slug,omitempty"`
}

// ProductPatch lists the product fields an admin may update. Nil fields are
// left untouched. Replaces the original's arbitrary-column update helper with
// a closed field set.
type ProductPatch struct {
	Name        *string  `json:"name,omitempty"`
	Slug        *string  `json:"slug,omitempty"`
	Description *string  `json:"description,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	OldPrice    *float64 `json:"old_price,omitempty"`
	CategoryID  *int64   `json:"category_id,omitempty"`
	Image       *string  `json:"image,omitempty"`
	Stock       *int     `json:"stock,omitempty"`
	IsFeatured  *bool    `json:"is_featured,omitempty"`
	IsActive    *bool    `json:"is_active,omitempty"`
}

// CartLine is one cart row joined with current product attributes. Prices
// here are live product prices, not locked at add time; they are frozen only
// when the order is placed.
type CartLine struct {
	ID        int64     `db:"id" json:"id"`
	UserID    int64     `db:"user_id" json:"user_id"`
	ProductID int64     `db:"product_id" json:"product_id"`
	Quantity  int       `db:"quantity" json:"quantity"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`

	Name     string   `db:"name" json:"name"`
	Price    float64  `db:"price" json:"price"`
	OldPrice *float64 `db:"old_price" json:"old_price,omitempty"`
	Image    string   `db:"image" json:"image"`
	Slug     string   `db:"slug" json:"slug"`
	Stock    int      `db:"stock" json:"stock"`
}

// FavoriteLine is one favorite row joined with product attributes
type FavoriteLine struct {
	ID        int64     `db:"id" json:"id"`
	UserID    int64     `db:"user_id" json:"user_id"`
	ProductID int64     `db:"product_id" json:"product_id"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`

	Name     string   `db:"name" json:"name"`
	Price    float64  `db:"price" json:"price"`
	OldPrice *float64 `db:"old_price" json:"old_price,omitempty"`
	Image    string   `db:"image" json:"image"`
	Slug     string   `db:"slug" json:"slug"`
	Rating   float64  `db:"rating" json:"rating"`
}

// OrderStatus is the fulfillment lifecycle position of an order
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// KnownStatus reports whether s is part of the closed status enumeration
func KnownStatus(s OrderStatus) bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// TerminalStatus reports whether s ends the lifecycle
func TerminalStatus(s OrderStatus) bool {
	return s == OrderStatusDelivered || s == OrderStatusCancelled
}

// ValidTransition reports whether an order may move from one status to
// another. Any move between known statuses is allowed except out of a
// terminal state.
func ValidTransition(from, to OrderStatus) bool {
	if !KnownStatus(from) || !KnownStatus(to) {
		return false
	}
	if TerminalStatus(from) {
		return false
	}
	return from != to
}

// ShippingContact holds the free-form contact fields captured at checkout.
// They are copied onto the order, not kept in sync with the user profile.
type ShippingContact struct {
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Phone   string  `json:"phone"`
	Address string  `json:"address"`
	Comment *string `json:"comment,omitempty"`
}

// Order represents a placed order. Total is computed once at creation and
// never recomputed; only Status changes afterwards.
type Order struct {
	ID        int64       `db:"id" json:"id"`
	UserID    int64       `db:"user_id" json:"user_id"`
	Status    OrderStatus `db:"status" json:"status"`
	Total     float64     `db:"total" json:"total"`
	Name      string      `db:"name" json:"name"`
	Email     string      `db:"email" json:"email"`
	Phone     string      `db:"phone" json:"phone"`
	Address   string      `db:"address" json:"address"`
	Comment   *string     `db:"comment" json:"comment,omitempty"`
	CreatedAt time.Time   `db:"created_at" json:"created_at"`

	UserName  *string     `db:"user_name" json:"user_name,omitempty"`
	UserEmail *string     `db:"user_email" json:"user_email,omitempty"`
	Items     []OrderItem `json:"items,omitempty"`
}

// OrderItem is one line of an order with the unit price frozen at order time
type OrderItem struct {
	ID        int64   `db:"id" json:"id"`
	OrderID   int64   `db:"order_id" json:"order_id"`
	ProductID int64   `db:"product_id" json:"product_id"`
	Quantity  int     `db:"quantity" json:"quantity"`
	Price     float64 `db:"price" json:"price"`

	Name  *string `db:"name" json:"name,omitempty"`
	Image *string `db:"image" json:"image,omitempty"`
	Slug  *string `db:"slug" json:"slug,omitempty"`
}

// Review is a product review
type Review struct {
	ID        int64     `db:"id" json:"id"`
	UserID    int64     `db:"user_id" json:"user_id"`
	ProductID int64     `db:"product_id" json:"product_id"`
	Rating    int       `db:"rating" json:"rating"`
	Text      *string   `db:"text" json:"text,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`

	UserName *string `db:"user_name" json:"user_name,omitempty"`
}

// Stats is the admin dashboard rollup, recomputed on every request
type Stats struct {
	TotalOrders    int            `json:"total_orders"`
	TotalRevenue   float64        `json:"total_revenue"`
	OrdersByStatus map[string]int `json:"orders_by_status"`
	TotalUsers     int            `json:"total_users"`
	TotalProducts  int            `json:"total_products"`
	LowStock       int            `json:"low_stock"`
}
