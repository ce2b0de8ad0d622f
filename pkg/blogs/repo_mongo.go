package blogs

import (
	"context"
	"errors"
	"fmt"

	"bloglist/pkg/common"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var ErrNotFound = errors.New("blog not found")

type BlogsRepoMongo struct {
	collection common.CollectionHelper
}

func NewMongoClient(ctx context.Context, uri string) (*mongo.Client, error) {
	return mongo.Connect(ctx, options.Client().ApplyURI(uri))
}

func NewBlogsRepoMongo(db *mongo.Database, collection string) *BlogsRepoMongo {
	return &BlogsRepoMongo{collection: &common.MongoCollection{Collection: db.Collection(collection)}}
}

func (r *BlogsRepoMongo) GetAll(ctx context.Context) ([]*Blog, error) {
	cur, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}

	defer cur.Close(ctx)

	blogs := make([]*Blog, 0)
	err = cur.All(ctx, &blogs)
	if err != nil {
		return nil, err
	}

	return blogs, nil
}

func (r *BlogsRepoMongo) Add(ctx context.Context, b *Blog) (*Blog, error) {
	if b.ID.IsZero() {
		b.ID = primitive.NewObjectID()
	}

	res, err := r.collection.InsertOne(ctx, b)
	if err != nil {
		return nil, err
	}

	id, ok := res.GetInsertedID().(primitive.ObjectID)
	if !ok {
		return nil, fmt.Errorf("unexpected inserted id %v", res.GetInsertedID())
	}
	b.ID = id

	return b, nil
}

// Delete removes the blog and returns it, or nil when nothing matched.
func (r *BlogsRepoMongo) Delete(ctx context.Context, id string) (*Blog, error) {
	objID, err := r.ParseID(id)
	if err != nil {
		return nil, nil
	}

	b := &Blog{}
	err = r.collection.FindOneAndDelete(ctx, bson.M{"_id": objID}).Decode(b)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return b, nil
}

// UpdateLikes replaces the like counter; it is not an increment.
func (r *BlogsRepoMongo) UpdateLikes(ctx context.Context, id string, likes int64) (*Blog, error) {
	objID, err := r.ParseID(id)
	if err != nil {
		return nil, ErrNotFound
	}

	b := &Blog{}
	err = r.collection.FindOneAndUpdate(ctx, bson.M{"_id": objID},
		bson.D{
			{Key: "$set", Value: bson.D{{Key: "likes", Value: likes}}},
		},
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(b)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return b, nil
}

func (r *BlogsRepoMongo) ParseID(in string) (primitive.ObjectID, error) {
	return primitive.ObjectIDFromHex(in)
}
