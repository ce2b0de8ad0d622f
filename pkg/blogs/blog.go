package blogs

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Blog struct {
	ID      primitive.ObjectID `bson:"_id,omitempty"`
	Title   string             `bson:"title"`
	Author  string             `bson:"author"`
	URL     string             `bson:"url"`
	Likes   int64              `bson:"likes"`
	OwnerID int64              `bson:"ownerID"`
}

// Favorite is the public shape of a blog in summaries: storage fields
// (id, url, owner) are never part of it.
type Favorite struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	Likes  int64  `json:"likes"`
}

func (b *Blog) Favorite() *Favorite {
	return &Favorite{Title: b.Title, Author: b.Author, Likes: b.Likes}
}

type AuthorStats struct {
	Author string `json:"author"`
	Blogs  int    `json:"blogs"`
}
