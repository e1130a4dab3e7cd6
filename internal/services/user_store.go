package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"userportal/internal/models"
)

var (
	// ErrUserNotFound is returned when no user matches the lookup.
	ErrUserNotFound = errors.New("user not found")
	// ErrDuplicatePhone is returned when a phone number is already registered.
	// The unique index on phone is the authoritative signal: two requests racing
	// to register the same number both hit the index, not an application check.
	ErrDuplicatePhone = errors.New("phone number already registered")
)

// UserStore is the persistence collaborator holding account records.
type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	FindByPhone(ctx context.Context, phone string) (*models.User, error)
	FindByID(ctx context.Context, id string) (*models.User, error)
}

// MongoUserStore stores users in the "users" collection.
type MongoUserStore struct {
	col *mongo.Collection
}

func NewMongoUserStore(db *mongo.Database) *MongoUserStore {
	return &MongoUserStore{col: db.Collection("users")}
}

// EnsureIndexes configures the unique index on phone.
// Called on startup from main after Mongo has connected.
func (s *MongoUserStore) EnsureIndexes(ctx context.Context) error {
	model := mongo.IndexModel{
		Keys:    bson.D{{Key: "phone", Value: 1}},
		Options: options.Index().SetName("idx_phone_unique").SetUnique(true),
	}
	_, err := s.col.Indexes().CreateOne(ctx, model)
	return err
}

func (s *MongoUserStore) Create(ctx context.Context, user *models.User) error {
	now := time.Now().UTC()
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	user.CreatedAt = now
	user.UpdatedAt = now

	_, err := s.col.InsertOne(ctx, user)
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicatePhone
	}
	return err
}

func (s *MongoUserStore) FindByPhone(ctx context.Context, phone string) (*models.User, error) {
	var user models.User
	err := s.col.FindOne(ctx, bson.M{"phone": phone}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *MongoUserStore) FindByID(ctx context.Context, id string) (*models.User, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrUserNotFound
	}

	var user models.User
	err = s.col.FindOne(ctx, bson.M{"_id": objectID}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// MemoryUserStore is an in-memory UserStore with the same uniqueness semantics
// as the Mongo implementation. Used in tests.
type MemoryUserStore struct {
	mu      sync.Mutex
	byPhone map[string]*models.User
	byID    map[string]*models.User
}

func NewMemoryUserStore() *MemoryUserStore {
	return &MemoryUserStore{
		byPhone: make(map[string]*models.User),
		byID:    make(map[string]*models.User),
	}
}

func (s *MemoryUserStore) Create(_ context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byPhone[user.Phone]; exists {
		return ErrDuplicatePhone
	}

	now := time.Now().UTC()
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	user.CreatedAt = now
	user.UpdatedAt = now

	stored := *user
	s.byPhone[user.Phone] = &stored
	s.byID[user.ID.Hex()] = &stored
	return nil
}

func (s *MemoryUserStore) FindByPhone(_ context.Context, phone string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.byPhone[phone]
	if !ok {
		return nil, ErrUserNotFound
	}
	u := *user
	return &u, nil
}

func (s *MemoryUserStore) FindByID(_ context.Context, id string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.byID[id]
	if !ok {
		return nil, ErrUserNotFound
	}
	u := *user
	return &u, nil
}
