package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jaekwang-park/taskboard/internal/identity"
	"github.com/jaekwang-park/taskboard/internal/model"
)

type taskDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Title     string             `bson:"title"`
	Done      bool               `bson:"done"`
	CreatedAt time.Time          `bson:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt"`
}

type MongoTaskRepository struct {
	coll  *mongo.Collection
	codec identity.ObjectIDCodec
}

func NewMongoTask(db *mongo.Database) *MongoTaskRepository {
	return &MongoTaskRepository{coll: db.Collection("tasks")}
}

func (r *MongoTaskRepository) toModel(d taskDoc) model.Task {
	return model.Task{
		ID:        r.codec.ToExternal(d.ID),
		Title:     d.Title,
		Done:      d.Done,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

func (r *MongoTaskRepository) List(ctx context.Context) ([]model.Task, error) {
	// _id descends alongside createdAt so equal timestamps still order
	// deterministically.
	opts := options.Find().SetSort(bson.D{
		{Key: "createdAt", Value: -1},
		{Key: "_id", Value: -1},
	})

	cur, err := r.coll.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	defer cur.Close(ctx)

	tasks := []model.Task{}
	for cur.Next(ctx) {
		var d taskDoc
		if err := cur.Decode(&d); err != nil {
			return nil, fmt.Errorf("failed to decode task: %w", err)
		}
		tasks = append(tasks, r.toModel(d))
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate tasks: %w", err)
	}

	return tasks, nil
}

func (r *MongoTaskRepository) Create(ctx context.Context, title string) (model.Task, error) {
	// Mongo stores times at millisecond precision; truncate up front so the
	// returned task matches what a later read would produce.
	now := time.Now().UTC().Truncate(time.Millisecond)
	d := taskDoc{
		Title:     title,
		Done:      false,
		CreatedAt: now,
		UpdatedAt: now,
	}

	res, err := r.coll.InsertOne(ctx, d)
	if err != nil {
		return model.Task{}, fmt.Errorf("failed to create task: %w", err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return model.Task{}, fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	d.ID = oid

	return r.toModel(d), nil
}

func (r *MongoTaskRepository) GetByID(ctx context.Context, id string) (model.Task, error) {
	oid, err := r.codec.ToInternal(id)
	if err != nil {
		return model.Task{}, err
	}

	var d taskDoc
	err = r.coll.FindOne(ctx, bson.D{{Key: "_id", Value: oid}}).Decode(&d)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return model.Task{}, ErrNotFound
		}
		return model.Task{}, fmt.Errorf("failed to get task: %w", err)
	}

	return r.toModel(d), nil
}

func (r *MongoTaskRepository) SetDone(ctx context.Context, id string, done bool) (model.Task, error) {
	oid, err := r.codec.ToInternal(id)
	if err != nil {
		return model.Task{}, err
	}

	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "done", Value: done},
		{Key: "updatedAt", Value: time.Now().UTC().Truncate(time.Millisecond)},
	}}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var d taskDoc
	err = r.coll.FindOneAndUpdate(ctx, bson.D{{Key: "_id", Value: oid}}, update, opts).Decode(&d)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return model.Task{}, ErrNotFound
		}
		return model.Task{}, fmt.Errorf("failed to update task: %w", err)
	}

	return r.toModel(d), nil
}

func (r *MongoTaskRepository) Delete(ctx context.Context, id string) error {
	oid, err := r.codec.ToInternal(id)
	if err != nil {
		return err
	}

	res, err := r.coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: oid}})
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}

	return nil
}

// ensure compile-time interface compliance
var _ TaskRepository = (*MongoTaskRepository)(nil)
