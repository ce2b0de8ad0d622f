package blogs

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"bloglist/pkg/common"

	gomock "github.com/golang/mock/gomock"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type getAllCase struct {
	name      string
	findErr   error
	cursorErr error
}

var getAllCases = []getAllCase{
	{
		name: "GetAllHappyCase",
	},
	{
		name:    "FindErrorExpected",
		findErr: errors.New("error while calling find"),
	},
	{
		name:      "CursorErrorExpected",
		cursorErr: errors.New("cursor error"),
	},
}

func TestGetAll(t *testing.T) {
	for i, c := range getAllCases {
		ctrl := gomock.NewController(t)
		mockCollection := common.NewMockCollectionHelper(ctrl)
		mockCursor := common.NewMockCursorHelper(ctrl)
		repo := &BlogsRepoMongo{collection: mockCollection}

		ctx := context.Background()

		expectedBlogs := []*Blog{
			{ID: primitive.NewObjectID(), Title: "React patterns", Author: "Michael Chan", URL: "https://reactpatterns.com/", Likes: 7, OwnerID: 1},
			{ID: primitive.NewObjectID(), Title: "Go To Statement Considered Harmful", Author: "Edsger W. Dijkstra", URL: "http://www.u.arizona.edu/", Likes: 5, OwnerID: 2},
		}

		if c.findErr != nil {
			mockCollection.EXPECT().Find(ctx, gomock.Eq(bson.M{})).Return(nil, c.findErr)
		} else {
			mockCollection.EXPECT().Find(ctx, gomock.Eq(bson.M{})).Return(mockCursor, nil)
			mockCursor.EXPECT().All(ctx, gomock.AssignableToTypeOf(&expectedBlogs)).
				SetArg(1, expectedBlogs).Return(c.cursorErr)
			mockCursor.EXPECT().Close(ctx).Return(nil)
		}

		res, err := repo.GetAll(ctx)

		switch {
		case c.findErr != nil:
			if err != c.findErr {
				t.Errorf("test #%d %s fail, expected error: %v, but was %v", i, c.name, c.findErr, err)
			}
		case c.cursorErr != nil:
			if err != c.cursorErr {
				t.Errorf("test #%d %s fail, expected error: %v, but was %v", i, c.name, c.cursorErr, err)
			}
		default:
			if err != nil {
				t.Errorf("test #%d %s fail, unexpected error: %v", i, c.name, err)
			}
			if !reflect.DeepEqual(res, expectedBlogs) {
				t.Errorf("test #%d %s fail, expected: %v, but was: %v", i, c.name, expectedBlogs, res)
			}
		}

		ctrl.Finish()
	}
}

func TestAdd(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockCollection := common.NewMockCollectionHelper(ctrl)
	mockInsertOneResult := common.NewMockInsertOneResultHelper(ctrl)

	repo := &BlogsRepoMongo{collection: mockCollection}
	ctx := context.Background()

	blog := &Blog{Title: "Canonical string reduction", URL: "http://www.cs.utexas.edu/", OwnerID: 256}
	var insertedID primitive.ObjectID
	mockCollection.EXPECT().InsertOne(ctx, gomock.AssignableToTypeOf(blog)).
		DoAndReturn(func(_ context.Context, doc interface{}) (common.InsertOneResultHelper, error) {
			insertedID = doc.(*Blog).ID
			return mockInsertOneResult, nil
		})
	mockInsertOneResult.EXPECT().GetInsertedID().DoAndReturn(func() interface{} { return insertedID })

	res, err := repo.Add(ctx, blog)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.ID.IsZero() || res.ID != insertedID {
		t.Errorf("test fail, expected id %v, but was %v", insertedID, res.ID)
	}

	if res.Likes != 0 {
		t.Errorf("test fail, expected zero likes, but was %d", res.Likes)
	}
}

func TestAddInsertError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockCollection := common.NewMockCollectionHelper(ctrl)

	repo := &BlogsRepoMongo{collection: mockCollection}
	ctx := context.Background()

	insertErr := errors.New("insert failed")
	mockCollection.EXPECT().InsertOne(ctx, gomock.Any()).Return(nil, insertErr)

	_, err := repo.Add(ctx, &Blog{Title: "t", URL: "u"})
	if err != insertErr {
		t.Fatalf("expected %v, but was %v", insertErr, err)
	}
}

func TestDelete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockCollection := common.NewMockCollectionHelper(ctrl)
	mockResult := common.NewMockSingleResultHelper(ctrl)

	repo := &BlogsRepoMongo{collection: mockCollection}
	ctx := context.Background()

	id := primitive.NewObjectID()
	expected := &Blog{ID: id, Title: "First class tests", URL: "http://blog.cleancoder.com/", Likes: 10, OwnerID: 3}
	mockCollection.EXPECT().FindOneAndDelete(ctx, gomock.Eq(bson.M{"_id": id})).Return(mockResult)
	mockResult.EXPECT().Decode(gomock.AssignableToTypeOf(expected)).SetArg(0, *expected).Return(nil)

	deleted, err := repo.Delete(ctx, id.Hex())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !reflect.DeepEqual(deleted, expected) {
		t.Errorf("test fail, expected: %v, but was: %v", expected, deleted)
	}
}

func TestDeleteMissing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockCollection := common.NewMockCollectionHelper(ctrl)
	mockResult := common.NewMockSingleResultHelper(ctrl)

	repo := &BlogsRepoMongo{collection: mockCollection}
	ctx := context.Background()

	id := primitive.NewObjectID()
	mockCollection.EXPECT().FindOneAndDelete(ctx, gomock.Eq(bson.M{"_id": id})).Return(mockResult)
	mockResult.EXPECT().Decode(gomock.Any()).Return(mongo.ErrNoDocuments)

	deleted, err := repo.Delete(ctx, id.Hex())
	if deleted != nil || err != nil {
		t.Fatalf("expected both nil, but was %v, %v", deleted, err)
	}

	// malformed ids never reach the collection
	deleted, err = repo.Delete(ctx, "not-an-id")
	if deleted != nil || err != nil {
		t.Fatalf("expected both nil, but was %v, %v", deleted, err)
	}
}

type updateLikesCase struct {
	name      string
	id        string
	decodeErr error
	expectErr error
	callsRepo bool
}

func TestUpdateLikes(t *testing.T) {
	id := primitive.NewObjectID()
	dbErr := errors.New("db_error")
	cases := []updateLikesCase{
		{name: "UpdateLikesHappyCase", id: id.Hex(), callsRepo: true},
		{name: "NotFoundExpected", id: id.Hex(), decodeErr: mongo.ErrNoDocuments, expectErr: ErrNotFound, callsRepo: true},
		{name: "DecodeErrorExpected", id: id.Hex(), decodeErr: dbErr, expectErr: dbErr, callsRepo: true},
		{name: "MalformedIDExpected", id: "42", expectErr: ErrNotFound},
	}

	for i, c := range cases {
		ctrl := gomock.NewController(t)
		mockCollection := common.NewMockCollectionHelper(ctrl)
		mockResult := common.NewMockSingleResultHelper(ctrl)

		repo := &BlogsRepoMongo{collection: mockCollection}
		ctx := context.Background()

		expected := &Blog{ID: id, Title: "TDD harms architecture", URL: "http://blog.cleancoder.com/", Likes: 42, OwnerID: 1}
		update := bson.D{{Key: "$set", Value: bson.D{{Key: "likes", Value: int64(42)}}}}
		if c.callsRepo {
			mockCollection.EXPECT().
				FindOneAndUpdate(ctx, gomock.Eq(bson.M{"_id": id}), gomock.Eq(update), gomock.Any()).
				Return(mockResult)
			if c.decodeErr != nil {
				mockResult.EXPECT().Decode(gomock.Any()).Return(c.decodeErr)
			} else {
				mockResult.EXPECT().Decode(gomock.AssignableToTypeOf(expected)).SetArg(0, *expected).Return(nil)
			}
		}

		res, err := repo.UpdateLikes(ctx, c.id, 42)
		if c.expectErr != nil {
			if !errors.Is(err, c.expectErr) {
				t.Errorf("test #%d %s fail, expected error: %v, but was %v", i, c.name, c.expectErr, err)
			}
		} else if !reflect.DeepEqual(res, expected) {
			t.Errorf("test #%d %s fail, expected: %v, but was: %v", i, c.name, expected, res)
		}

		ctrl.Finish()
	}
}

func TestParseID(t *testing.T) {
	repo := &BlogsRepoMongo{}

	id := primitive.NewObjectID()
	parsed, err := repo.ParseID(id.Hex())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if parsed != id {
		t.Fatalf("values not equal: %v, %v", parsed.Hex(), id.Hex())
	}

	if _, err = repo.ParseID("zzz"); err == nil {
		t.Fatal("expected error for malformed id")
	}
}
