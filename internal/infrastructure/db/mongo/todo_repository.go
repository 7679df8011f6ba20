package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/taskvault/todo-service/internal/core/domain"
)

const todoCollection = "todos"

type MongoTodoRepository struct {
	db   *mongo.Database
	coll *mongo.Collection
}

func NewTodoRepository(db *mongo.Database) *MongoTodoRepository {
	return &MongoTodoRepository{db: db, coll: db.Collection(todoCollection)}
}

type mongoTodo struct {
	ID          int64  `bson:"_id"`
	Title       string `bson:"title"`
	Description string `bson:"description"`
	Priority    int    `bson:"priority"`
	Complete    bool   `bson:"complete"`
	OwnerID     int64  `bson:"owner_id"`
	CreatedAt   int64  `bson:"created_at"`
	UpdatedAt   int64  `bson:"updated_at"`
}

func toMongoTodo(t *domain.Todo) mongoTodo {
	return mongoTodo{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Priority:    t.Priority,
		Complete:    t.Complete,
		OwnerID:     t.OwnerID,
		CreatedAt:   t.CreatedAt.Unix(),
		UpdatedAt:   t.UpdatedAt.Unix(),
	}
}

func (mt mongoTodo) toDomain() *domain.Todo {
	return &domain.Todo{
		ID:          mt.ID,
		Title:       mt.Title,
		Description: mt.Description,
		Priority:    mt.Priority,
		Complete:    mt.Complete,
		OwnerID:     mt.OwnerID,
		CreatedAt:   unixToTime(mt.CreatedAt),
		UpdatedAt:   unixToTime(mt.UpdatedAt),
	}
}

func (r *MongoTodoRepository) Create(ctx context.Context, todo *domain.Todo) (*domain.Todo, error) {
	id, err := nextSequence(ctx, r.db, "todo_id")
	if err != nil {
		return nil, err
	}

	doc := toMongoTodo(todo)
	doc.ID = id
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("insert todo: %w", err)
	}

	created := *todo
	created.ID = id
	return &created, nil
}

func (r *MongoTodoRepository) FindByID(ctx context.Context, id int64) (*domain.Todo, error) {
	var mt mongoTodo
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&mt); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrTodoNotFound
		}
		return nil, fmt.Errorf("find todo: %w", err)
	}
	return mt.toDomain(), nil
}

func (r *MongoTodoRepository) ListByOwner(ctx context.Context, ownerID int64) ([]*domain.Todo, error) {
	return r.list(ctx, bson.M{"owner_id": ownerID})
}

func (r *MongoTodoRepository) ListAll(ctx context.Context) ([]*domain.Todo, error) {
	return r.list(ctx, bson.M{})
}

func (r *MongoTodoRepository) list(ctx context.Context, filter bson.M) ([]*domain.Todo, error) {
	cur, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list todos: %w", err)
	}
	defer cur.Close(ctx)

	todos := make([]*domain.Todo, 0)
	for cur.Next(ctx) {
		var mt mongoTodo
		if err := cur.Decode(&mt); err != nil {
			return nil, fmt.Errorf("decode todo: %w", err)
		}
		todos = append(todos, mt.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list todos: %w", err)
	}
	return todos, nil
}

func (r *MongoTodoRepository) Update(ctx context.Context, todo *domain.Todo) error {
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": todo.ID},
		bson.M{"$set": bson.M{
			"title":       todo.Title,
			"description": todo.Description,
			"priority":    todo.Priority,
			"complete":    todo.Complete,
			"updated_at":  time.Now().UTC().Unix(),
		}},
	)
	if err != nil {
		return fmt.Errorf("update todo: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrTodoNotFound
	}
	return nil
}

func (r *MongoTodoRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete todo: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrTodoNotFound
	}
	return nil
}
