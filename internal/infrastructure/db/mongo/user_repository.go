package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/taskvault/todo-service/internal/core/domain"
)

const userCollection = "users"

type MongoUserRepository struct {
	db   *mongo.Database
	coll *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *MongoUserRepository {
	return &MongoUserRepository{db: db, coll: db.Collection(userCollection)}
}

type mongoUser struct {
	ID             int64  `bson:"_id"`
	Username       string `bson:"username"`
	Email          string `bson:"email,omitempty"`
	FirstName      string `bson:"first_name,omitempty"`
	LastName       string `bson:"last_name,omitempty"`
	HashedPassword string `bson:"hashed_password"`
	Role           string `bson:"role"`
	IsActive       bool   `bson:"is_active"`
	PhoneNumber    string `bson:"phone_number,omitempty"`
	CreatedAt      int64  `bson:"created_at"`
	UpdatedAt      int64  `bson:"updated_at"`
}

func (r *MongoUserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	id, err := nextSequence(ctx, r.db, "user_id")
	if err != nil {
		return nil, err
	}

	doc := mongoUser{
		ID:             id,
		Username:       user.Username,
		Email:          user.Email,
		FirstName:      user.FirstName,
		LastName:       user.LastName,
		HashedPassword: user.HashedPassword,
		Role:           user.Role,
		IsActive:       user.IsActive,
		PhoneNumber:    user.PhoneNumber,
		CreatedAt:      user.CreatedAt.Unix(),
		UpdatedAt:      user.UpdatedAt.Unix(),
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrUserExists
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}

	created := *user
	created.ID = id
	return &created, nil
}

func (r *MongoUserRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"username": username})
}

func (r *MongoUserRepository) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *MongoUserRepository) UpdatePassword(ctx context.Context, id int64, hashedPassword string) error {
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{
			"hashed_password": hashedPassword,
			"updated_at":      time.Now().UTC().Unix(),
		}},
	)
	if err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *MongoUserRepository) findOne(ctx context.Context, filter bson.M) (*domain.User, error) {
	var mu mongoUser
	if err := r.coll.FindOne(ctx, filter).Decode(&mu); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	return &domain.User{
		ID:             mu.ID,
		Username:       mu.Username,
		Email:          mu.Email,
		FirstName:      mu.FirstName,
		LastName:       mu.LastName,
		HashedPassword: mu.HashedPassword,
		Role:           mu.Role,
		IsActive:       mu.IsActive,
		PhoneNumber:    mu.PhoneNumber,
		CreatedAt:      unixToTime(mu.CreatedAt),
		UpdatedAt:      unixToTime(mu.UpdatedAt),
	}, nil
}

func unixToTime(ts int64) time.Time {
	if ts == 0 {
		return time.Time{}
	}
	return time.Unix(ts, 0).UTC()
}
