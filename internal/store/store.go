package store

import (
	"context"
	"errors"

	"github.com/Blac-guru/lenoxhill-healthcare/internal/models"
)

// ErrNotFound signals absence of a record. Callers map it to 404; it is not
// an internal fault.
var ErrNotFound = errors.New("record not found")

// ProductFilter dimensions compose by AND. Category and TargetAge are exact
// matches, disabled when empty or set to their "All ..." sentinel; Search is
// a case-insensitive substring match against name or description.
type ProductFilter struct {
	Category  string
	TargetAge string
	Search    string
}

// Store is the persistence façade for the site. The default implementation
// is the seeded in-memory MemStore; MongoStore offers the same contract on a
// real database. Records are created with server-generated ids and defaults;
// callers never persist client-supplied ids or timestamps.
type Store interface {
	// Users
	CreateUser(ctx context.Context, user models.User) error
	GetUser(ctx context.Context, id string) (models.User, error)
	GetUserByUsername(ctx context.Context, username string) (models.User, error)

	// Services
	ListServices(ctx context.Context) ([]models.Service, error)
	GetService(ctx context.Context, id string) (models.Service, error)
	CreateService(ctx context.Context, service models.Service) error

	// Products
	ListProducts(ctx context.Context, filter ProductFilter) ([]models.Product, error)
	GetProduct(ctx context.Context, id string) (models.Product, error)
	CreateProduct(ctx context.Context, product models.Product) error

	// Appointments
	ListAppointments(ctx context.Context, limit, offset int64) ([]models.Appointment, error)
	GetAppointment(ctx context.Context, id string) (models.Appointment, error)
	CreateAppointment(ctx context.Context, appointment models.Appointment) error
	UpdateAppointmentStatus(ctx context.Context, id, status string) (models.Appointment, error)

	// Contact messages
	ListContactMessages(ctx context.Context, limit, offset int64) ([]models.ContactMessage, error)
	CreateContactMessage(ctx context.Context, message models.ContactMessage) error
	UpdateContactMessageStatus(ctx context.Context, id, status string) (models.ContactMessage, error)

	// Cart
	ListCartItems(ctx context.Context, sessionID string) ([]models.CartItem, error)
	AddToCart(ctx context.Context, item models.CartItem) (models.CartItem, error)
	RemoveFromCart(ctx context.Context, sessionID, productID string) error
	ClearCart(ctx context.Context, sessionID string) error

	// Orders
	ListOrders(ctx context.Context, limit, offset int64) ([]models.Order, error)
	GetOrder(ctx context.Context, id string) (models.Order, error)
	CreateOrder(ctx context.Context, order models.Order) error
	UpdateOrderStatus(ctx context.Context, id, status string) (models.Order, error)
}

func (f ProductFilter) matches(p models.Product) bool {
	if f.Category != "" && f.Category != models.AllCategories && p.Category != f.Category {
		return false
	}
	if f.TargetAge != "" && f.TargetAge != models.AllAges && p.TargetAge != f.TargetAge {
		return false
	}
	if f.Search != "" && !containsFold(p.Name, f.Search) && !containsFold(p.Description, f.Search) {
		return false
	}
	return true
}
