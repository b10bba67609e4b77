package store

import (
	"context"
	"strings"
	"sync"

	"github.com/Blac-guru/lenoxhill-healthcare/internal/models"
	"github.com/google/uuid"
)

// MemStore keeps everything in process memory: a development/demo store, not
// a database. Nothing survives a restart. A single RWMutex guards the maps
// because net/http serves requests concurrently.
type MemStore struct {
	mu sync.RWMutex

	users           map[string]models.User
	services        map[string]models.Service
	products        map[string]models.Product
	appointments    map[string]models.Appointment
	contactMessages map[string]models.ContactMessage
	cartItems       map[string]models.CartItem
	orders          map[string]models.Order

	// insertion order for stable listings
	serviceIDs     []string
	productIDs     []string
	appointmentIDs []string
	contactIDs     []string
	cartItemIDs    []string
	orderIDs       []string
}

func NewMemStore() *MemStore {
	s := &MemStore{
		users:           make(map[string]models.User),
		services:        make(map[string]models.Service),
		products:        make(map[string]models.Product),
		appointments:    make(map[string]models.Appointment),
		contactMessages: make(map[string]models.ContactMessage),
		cartItems:       make(map[string]models.CartItem),
		orders:          make(map[string]models.Order),
	}
	s.seed()
	return s
}

func (s *MemStore) seed() {
	for _, svc := range seedServices {
		svc.ID = uuid.NewString()
		svc.Available = true
		s.services[svc.ID] = svc
		s.serviceIDs = append(s.serviceIDs, svc.ID)
	}
	for _, p := range seedProducts {
		p.ID = uuid.NewString()
		s.products[p.ID] = p
		s.productIDs = append(s.productIDs, p.ID)
	}
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

func paginate[T any](items []T, limit, offset int64) []T {
	if offset >= int64(len(items)) {
		return []T{}
	}
	items = items[offset:]
	if limit > 0 && limit < int64(len(items)) {
		items = items[:limit]
	}
	return items
}

// Users

func (s *MemStore) CreateUser(ctx context.Context, user models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[user.ID] = user
	return nil
}

func (s *MemStore) GetUser(ctx context.Context, id string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	user, ok := s.users[id]
	if !ok {
		return models.User{}, ErrNotFound
	}
	return user, nil
}

func (s *MemStore) GetUserByUsername(ctx context.Context, username string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, user := range s.users {
		if user.Username == username {
			return user, nil
		}
	}
	return models.User{}, ErrNotFound
}

// Services

func (s *MemStore) ListServices(ctx context.Context) ([]models.Service, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := make([]models.Service, 0, len(s.serviceIDs))
	for _, id := range s.serviceIDs {
		items = append(items, s.services[id])
	}
	return items, nil
}

func (s *MemStore) GetService(ctx context.Context, id string) (models.Service, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	svc, ok := s.services[id]
	if !ok {
		return models.Service{}, ErrNotFound
	}
	return svc, nil
}

func (s *MemStore) CreateService(ctx context.Context, service models.Service) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.services[service.ID] = service
	s.serviceIDs = append(s.serviceIDs, service.ID)
	return nil
}

// Products

func (s *MemStore) ListProducts(ctx context.Context, filter ProductFilter) ([]models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := make([]models.Product, 0, len(s.productIDs))
	for _, id := range s.productIDs {
		p := s.products[id]
		if filter.matches(p) {
			items = append(items, p)
		}
	}
	return items, nil
}

func (s *MemStore) GetProduct(ctx context.Context, id string) (models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.products[id]
	if !ok {
		return models.Product{}, ErrNotFound
	}
	return p, nil
}

func (s *MemStore) CreateProduct(ctx context.Context, product models.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products[product.ID] = product
	s.productIDs = append(s.productIDs, product.ID)
	return nil
}

// Appointments

func (s *MemStore) ListAppointments(ctx context.Context, limit, offset int64) ([]models.Appointment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := make([]models.Appointment, 0, len(s.appointmentIDs))
	for _, id := range s.appointmentIDs {
		items = append(items, s.appointments[id])
	}
	return paginate(items, limit, offset), nil
}

func (s *MemStore) GetAppointment(ctx context.Context, id string) (models.Appointment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	appt, ok := s.appointments[id]
	if !ok {
		return models.Appointment{}, ErrNotFound
	}
	return appt, nil
}

func (s *MemStore) CreateAppointment(ctx context.Context, appointment models.Appointment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.appointments[appointment.ID] = appointment
	s.appointmentIDs = append(s.appointmentIDs, appointment.ID)
	return nil
}

func (s *MemStore) UpdateAppointmentStatus(ctx context.Context, id, status string) (models.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	appt, ok := s.appointments[id]
	if !ok {
		return models.Appointment{}, ErrNotFound
	}
	appt.Status = status
	s.appointments[id] = appt
	return appt, nil
}

// Contact messages

func (s *MemStore) ListContactMessages(ctx context.Context, limit, offset int64) ([]models.ContactMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := make([]models.ContactMessage, 0, len(s.contactIDs))
	for _, id := range s.contactIDs {
		items = append(items, s.contactMessages[id])
	}
	return paginate(items, limit, offset), nil
}

func (s *MemStore) CreateContactMessage(ctx context.Context, message models.ContactMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.contactMessages[message.ID] = message
	s.contactIDs = append(s.contactIDs, message.ID)
	return nil
}

func (s *MemStore) UpdateContactMessageStatus(ctx context.Context, id, status string) (models.ContactMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	msg, ok := s.contactMessages[id]
	if !ok {
		return models.ContactMessage{}, ErrNotFound
	}
	msg.Status = status
	s.contactMessages[id] = msg
	return msg, nil
}

// Cart

func (s *MemStore) ListCartItems(ctx context.Context, sessionID string) ([]models.CartItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := make([]models.CartItem, 0)
	for _, id := range s.cartItemIDs {
		item := s.cartItems[id]
		if item.SessionID == sessionID {
			items = append(items, item)
		}
	}
	return items, nil
}

// AddToCart merges a repeat add of the same (sessionId, productId) pair into
// the existing row: quantity is additive, never replaced.
func (s *MemStore) AddToCart(ctx context.Context, item models.CartItem) (models.CartItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if item.Quantity <= 0 {
		item.Quantity = 1
	}

	for _, id := range s.cartItemIDs {
		existing := s.cartItems[id]
		if existing.SessionID == item.SessionID && existing.ProductID == item.ProductID {
			existing.Quantity += item.Quantity
			s.cartItems[id] = existing
			return existing, nil
		}
	}

	s.cartItems[item.ID] = item
	s.cartItemIDs = append(s.cartItemIDs, item.ID)
	return item, nil
}

func (s *MemStore) RemoveFromCart(ctx context.Context, sessionID, productID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, id := range s.cartItemIDs {
		item := s.cartItems[id]
		if item.SessionID == sessionID && item.ProductID == productID {
			delete(s.cartItems, id)
			s.cartItemIDs = append(s.cartItemIDs[:i], s.cartItemIDs[i+1:]...)
			return nil
		}
	}
	// absent pair is a no-op, not an error
	return nil
}

func (s *MemStore) ClearCart(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.cartItemIDs[:0]
	for _, id := range s.cartItemIDs {
		if s.cartItems[id].SessionID == sessionID {
			delete(s.cartItems, id)
			continue
		}
		kept = append(kept, id)
	}
	s.cartItemIDs = kept
	return nil
}

// Orders

func (s *MemStore) ListOrders(ctx context.Context, limit, offset int64) ([]models.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := make([]models.Order, 0, len(s.orderIDs))
	for _, id := range s.orderIDs {
		items = append(items, s.orders[id])
	}
	return paginate(items, limit, offset), nil
}

func (s *MemStore) GetOrder(ctx context.Context, id string) (models.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	order, ok := s.orders[id]
	if !ok {
		return models.Order{}, ErrNotFound
	}
	return order, nil
}

func (s *MemStore) CreateOrder(ctx context.Context, order models.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders[order.ID] = order
	s.orderIDs = append(s.orderIDs, order.ID)
	return nil
}

func (s *MemStore) UpdateOrderStatus(ctx context.Context, id, status string) (models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	order, ok := s.orders[id]
	if !ok {
		return models.Order{}, ErrNotFound
	}
	order.Status = status
	s.orders[id] = order
	return order, nil
}
