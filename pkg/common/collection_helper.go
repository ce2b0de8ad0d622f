package common

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

//go:generate mockgen -source=collection_helper.go -destination=mock_collection_helper.go -package=common

// CollectionHelper is the subset of *mongo.Collection the repositories use,
// extracted so it can be mocked.
type CollectionHelper interface {
	Find(ctx context.Context, filter interface{},
		opts ...*options.FindOptions) (CursorHelper, error)
	FindOneAndUpdate(ctx context.Context, filter interface{}, update interface{},
		opts ...*options.FindOneAndUpdateOptions) SingleResultHelper
	FindOneAndDelete(ctx context.Context, filter interface{},
		opts ...*options.FindOneAndDeleteOptions) SingleResultHelper
	InsertOne(ctx context.Context, document interface{},
		opts ...*options.InsertOneOptions) (InsertOneResultHelper, error)
}

type SingleResultHelper interface {
	Decode(v interface{}) error
}

type CursorHelper interface {
	Close(ctx context.Context) error
	All(ctx context.Context, results interface{}) error
}

type InsertOneResultHelper interface {
	GetInsertedID() interface{}
}

type MongoCollection struct {
	Collection *mongo.Collection
}

func (mc *MongoCollection) Find(ctx context.Context, filter interface{},
	opts ...*options.FindOptions) (CursorHelper, error) {
	cur, err := mc.Collection.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}

	return &MongoCursor{cur: cur}, nil
}

type MongoCursor struct {
	cur *mongo.Cursor
}

func (mc *MongoCursor) Close(ctx context.Context) error {
	return mc.cur.Close(ctx)
}

func (mc *MongoCursor) All(ctx context.Context, results interface{}) error {
	return mc.cur.All(ctx, results)
}

func (mc *MongoCollection) FindOneAndUpdate(ctx context.Context, filter interface{}, update interface{},
	opts ...*options.FindOneAndUpdateOptions) SingleResultHelper {
	return &MongoSingleResult{sr: mc.Collection.FindOneAndUpdate(ctx, filter, update, opts...)}
}

func (mc *MongoCollection) FindOneAndDelete(ctx context.Context, filter interface{},
	opts ...*options.FindOneAndDeleteOptions) SingleResultHelper {
	return &MongoSingleResult{sr: mc.Collection.FindOneAndDelete(ctx, filter, opts...)}
}

type MongoSingleResult struct {
	sr *mongo.SingleResult
}

func (msr *MongoSingleResult) Decode(v interface{}) error {
	return msr.sr.Decode(v)
}

func (mc *MongoCollection) InsertOne(ctx context.Context, document interface{},
	opts ...*options.InsertOneOptions) (InsertOneResultHelper, error) {
	res, err := mc.Collection.InsertOne(ctx, document, opts...)
	if err != nil {
		return nil, err
	}

	return &MongoInsertOneResult{res: res}, nil
}

type MongoInsertOneResult struct {
	res *mongo.InsertOneResult
}

func (r *MongoInsertOneResult) GetInsertedID() interface{} {
	return r.res.InsertedID
}
