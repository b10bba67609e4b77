package store

import (
	"context"
	"regexp"

	"github.com/Blac-guru/lenoxhill-healthcare/internal/db"
	"github.com/Blac-guru/lenoxhill-healthcare/internal/models"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoStore is the durable alternative to MemStore, selected when MONGO_URI
// is set. Same contract, same laxity: no cross-entity checks.
type MongoStore struct {
	cols *db.Collections
}

func NewMongoStore(cols *db.Collections) *MongoStore {
	return &MongoStore{cols: cols}
}

// SeedIfEmpty loads the fixture catalog into empty services/products
// collections so a fresh database serves the same data as the demo store.
func (s *MongoStore) SeedIfEmpty(ctx context.Context) error {
	count, err := s.cols.Services.CountDocuments(ctx, bson.M{})
	if err != nil {
		return err
	}
	if count == 0 {
		docs := make([]interface{}, 0, len(seedServices))
		for _, svc := range seedServices {
			svc.ID = uuid.NewString()
			svc.Available = true
			docs = append(docs, svc)
		}
		if _, err := s.cols.Services.InsertMany(ctx, docs); err != nil {
			return err
		}
	}

	count, err = s.cols.Products.CountDocuments(ctx, bson.M{})
	if err != nil {
		return err
	}
	if count == 0 {
		docs := make([]interface{}, 0, len(seedProducts))
		for _, p := range seedProducts {
			p.ID = uuid.NewString()
			docs = append(docs, p)
		}
		if _, err := s.cols.Products.InsertMany(ctx, docs); err != nil {
			return err
		}
	}

	return nil
}

func decodeAll[T any](ctx context.Context, cursor *mongo.Cursor) ([]T, error) {
	defer cursor.Close(ctx)
	items := make([]T, 0)
	for cursor.Next(ctx) {
		var item T
		if err := cursor.Decode(&item); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func mapNotFound(err error) error {
	if err == mongo.ErrNoDocuments {
		return ErrNotFound
	}
	return err
}

// Users

func (s *MongoStore) CreateUser(ctx context.Context, user models.User) error {
	_, err := s.cols.Users.InsertOne(ctx, user)
	return err
}

func (s *MongoStore) GetUser(ctx context.Context, id string) (models.User, error) {
	var user models.User
	err := s.cols.Users.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	return user, mapNotFound(err)
}

func (s *MongoStore) GetUserByUsername(ctx context.Context, username string) (models.User, error) {
	var user models.User
	err := s.cols.Users.FindOne(ctx, bson.M{"username": username}).Decode(&user)
	return user, mapNotFound(err)
}

// Services

func (s *MongoStore) ListServices(ctx context.Context) ([]models.Service, error) {
	cursor, err := s.cols.Services.Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}
	return decodeAll[models.Service](ctx, cursor)
}

func (s *MongoStore) GetService(ctx context.Context, id string) (models.Service, error) {
	var svc models.Service
	err := s.cols.Services.FindOne(ctx, bson.M{"_id": id}).Decode(&svc)
	return svc, mapNotFound(err)
}

func (s *MongoStore) CreateService(ctx context.Context, service models.Service) error {
	_, err := s.cols.Services.InsertOne(ctx, service)
	return err
}

// Products

func (s *MongoStore) ListProducts(ctx context.Context, filter ProductFilter) ([]models.Product, error) {
	query := bson.M{}
	if filter.Category != "" && filter.Category != models.AllCategories {
		query["category"] = filter.Category
	}
	if filter.TargetAge != "" && filter.TargetAge != models.AllAges {
		query["targetAge"] = filter.TargetAge
	}
	if filter.Search != "" {
		regex := primitive.Regex{Pattern: regexp.QuoteMeta(filter.Search), Options: "i"}
		query["$or"] = bson.A{
			bson.M{"name": regex},
			bson.M{"description": regex},
		}
	}

	cursor, err := s.cols.Products.Find(ctx, query)
	if err != nil {
		return nil, err
	}
	return decodeAll[models.Product](ctx, cursor)
}

func (s *MongoStore) GetProduct(ctx context.Context, id string) (models.Product, error) {
	var p models.Product
	err := s.cols.Products.FindOne(ctx, bson.M{"_id": id}).Decode(&p)
	return p, mapNotFound(err)
}

func (s *MongoStore) CreateProduct(ctx context.Context, product models.Product) error {
	_, err := s.cols.Products.InsertOne(ctx, product)
	return err
}

// Appointments

func (s *MongoStore) ListAppointments(ctx context.Context, limit, offset int64) ([]models.Appointment, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	if limit > 0 {
		opts = opts.SetLimit(limit).SetSkip(offset)
	}
	cursor, err := s.cols.Appointments.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, err
	}
	return decodeAll[models.Appointment](ctx, cursor)
}

func (s *MongoStore) GetAppointment(ctx context.Context, id string) (models.Appointment, error) {
	var appt models.Appointment
	err := s.cols.Appointments.FindOne(ctx, bson.M{"_id": id}).Decode(&appt)
	return appt, mapNotFound(err)
}

func (s *MongoStore) CreateAppointment(ctx context.Context, appointment models.Appointment) error {
	_, err := s.cols.Appointments.InsertOne(ctx, appointment)
	return err
}

func (s *MongoStore) UpdateAppointmentStatus(ctx context.Context, id, status string) (models.Appointment, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated models.Appointment
	err := s.cols.Appointments.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"status": status}},
		opts,
	).Decode(&updated)
	return updated, mapNotFound(err)
}

// Contact messages

func (s *MongoStore) ListContactMessages(ctx context.Context, limit, offset int64) ([]models.ContactMessage, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	if limit > 0 {
		opts = opts.SetLimit(limit).SetSkip(offset)
	}
	cursor, err := s.cols.ContactMessages.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, err
	}
	return decodeAll[models.ContactMessage](ctx, cursor)
}

func (s *MongoStore) CreateContactMessage(ctx context.Context, message models.ContactMessage) error {
	_, err := s.cols.ContactMessages.InsertOne(ctx, message)
	return err
}

func (s *MongoStore) UpdateContactMessageStatus(ctx context.Context, id, status string) (models.ContactMessage, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated models.ContactMessage
	err := s.cols.ContactMessages.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"status": status}},
		opts,
	).Decode(&updated)
	return updated, mapNotFound(err)
}

// Cart

func (s *MongoStore) ListCartItems(ctx context.Context, sessionID string) ([]models.CartItem, error) {
	cursor, err := s.cols.CartItems.Find(ctx, bson.M{"sessionId": sessionID})
	if err != nil {
		return nil, err
	}
	return decodeAll[models.CartItem](ctx, cursor)
}

func (s *MongoStore) AddToCart(ctx context.Context, item models.CartItem) (models.CartItem, error) {
	if item.Quantity <= 0 {
		item.Quantity = 1
	}

	// Upsert on the unique (sessionId, productId) index; $inc realizes the
	// additive merge on repeat adds.
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var merged models.CartItem
	err := s.cols.CartItems.FindOneAndUpdate(ctx,
		bson.M{"sessionId": item.SessionID, "productId": item.ProductID},
		bson.M{
			"$inc": bson.M{"quantity": item.Quantity},
			"$setOnInsert": bson.M{
				"_id":       item.ID,
				"createdAt": item.CreatedAt,
			},
		},
		opts,
	).Decode(&merged)
	if err != nil {
		return models.CartItem{}, err
	}
	return merged, nil
}

func (s *MongoStore) RemoveFromCart(ctx context.Context, sessionID, productID string) error {
	_, err := s.cols.CartItems.DeleteOne(ctx, bson.M{"sessionId": sessionID, "productId": productID})
	return err
}

func (s *MongoStore) ClearCart(ctx context.Context, sessionID string) error {
	_, err := s.cols.CartItems.DeleteMany(ctx, bson.M{"sessionId": sessionID})
	return err
}

// Orders

func (s *MongoStore) ListOrders(ctx context.Context, limit, offset int64) ([]models.Order, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	if limit > 0 {
		opts = opts.SetLimit(limit).SetSkip(offset)
	}
	cursor, err := s.cols.Orders.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, err
	}
	return decodeAll[models.Order](ctx, cursor)
}

func (s *MongoStore) GetOrder(ctx context.Context, id string) (models.Order, error) {
	var order models.Order
	err := s.cols.Orders.FindOne(ctx, bson.M{"_id": id}).Decode(&order)
	return order, mapNotFound(err)
}

func (s *MongoStore) CreateOrder(ctx context.Context, order models.Order) error {
	_, err := s.cols.Orders.InsertOne(ctx, order)
	return err
}

func (s *MongoStore) UpdateOrderStatus(ctx context.Context, id, status string) (models.Order, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated models.Order
	err := s.cols.Orders.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"status": status}},
		opts,
	).Decode(&updated)
	return updated, mapNotFound(err)
}
