package models

import "time"

const (
	AppointmentStatusPending = "pending"
	ContactStatusNew         = "new"
	OrderStatusPending       = "pending"

	UserRoleAdmin = "admin"
)

// Sentinel filter values the storefront sends when a dropdown is left on its
// default entry. They disable the matching product filter dimension.
const (
	AllCategories = "All Categories"
	AllAges       = "All Ages"
)

type User struct {
	ID           string    `bson:"_id,omitempty" json:"id"`
	Username     string    `bson:"username" json:"username"`
	PasswordHash string    `bson:"passwordHash" json:"-"`
	Role         string    `bson:"role" json:"role"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
}

type Service struct {
	ID             string `bson:"_id,omitempty" json:"id"`
	Name           string `bson:"name" json:"name"`
	Description    string `bson:"description" json:"description"`
	TargetAudience string `bson:"targetAudience" json:"targetAudience"`
	Hours          string `bson:"hours" json:"hours"`
	Location       string `bson:"location" json:"location"`
	Icon           string `bson:"icon" json:"icon"`
	EstimatedCost  string `bson:"estimatedCost,omitempty" json:"estimatedCost,omitempty"`
	Available      bool   `bson:"available" json:"available"`
}

type Product struct {
	ID                   string `bson:"_id,omitempty" json:"id"`
	Name                 string `bson:"name" json:"name"`
	Description          string `bson:"description" json:"description"`
	Price                string `bson:"price" json:"price"`
	Category             string `bson:"category" json:"category"`
	TargetAge            string `bson:"targetAge" json:"targetAge"`
	InStock              bool   `bson:"inStock" json:"inStock"`
	PrescriptionRequired bool   `bson:"prescriptionRequired" json:"prescriptionRequired"`
	ImageURL             string `bson:"imageUrl,omitempty" json:"imageUrl,omitempty"`
}

// Appointment references a Service by id only; the id is stored as sent and
// never checked against the services collection.
type Appointment struct {
	ID            string    `bson:"_id,omitempty" json:"id"`
	FirstName     string    `bson:"firstName" json:"firstName"`
	LastName      string    `bson:"lastName" json:"lastName"`
	Email         string    `bson:"email" json:"email"`
	Phone         string    `bson:"phone" json:"phone"`
	ServiceID     string    `bson:"serviceId" json:"serviceId"`
	PreferredDate string    `bson:"preferredDate" json:"preferredDate"`
	PreferredTime string    `bson:"preferredTime" json:"preferredTime"`
	Notes         string    `bson:"notes,omitempty" json:"notes,omitempty"`
	Status        string    `bson:"status" json:"status"`
	CreatedAt     time.Time `bson:"createdAt" json:"createdAt"`
}

type ContactMessage struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	FirstName string    `bson:"firstName" json:"firstName"`
	LastName  string    `bson:"lastName" json:"lastName"`
	Email     string    `bson:"email" json:"email"`
	Phone     string    `bson:"phone,omitempty" json:"phone,omitempty"`
	Subject   string    `bson:"subject" json:"subject"`
	Message   string    `bson:"message" json:"message"`
	Status    string    `bson:"status" json:"status"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// CartItem rows are unique per (sessionId, productId); a repeat add merges
// into the existing row by incrementing its quantity.
type CartItem struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	SessionID string    `bson:"sessionId" json:"sessionId"`
	ProductID string    `bson:"productId" json:"productId"`
	Quantity  int       `bson:"quantity" json:"quantity"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// Order.Items is the client-composed JSON snapshot of the cart at checkout.
// It is stored opaquely and never reconciled against product records.
type Order struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	FirstName string    `bson:"firstName" json:"firstName"`
	LastName  string    `bson:"lastName" json:"lastName"`
	Email     string    `bson:"email" json:"email"`
	Phone     string    `bson:"phone" json:"phone"`
	Total     string    `bson:"total" json:"total"`
	Status    string    `bson:"status" json:"status"`
	Items     string    `bson:"items" json:"items"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}
