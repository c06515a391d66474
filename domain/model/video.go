package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Video is the videos collection document. ChannelID holds the owning
// channel's public identifier, not its object id; resolving the owner always
// goes through the channels collection by that public id.
type Video struct {
	ID           bson.ObjectID   `bson:"_id,omitempty" json:"_id"`
	VideoID      string          `bson:"videoId" json:"videoId"`
	Title        string          `bson:"title" json:"title"`
	ThumbnailURL string          `bson:"thumbnailUrl" json:"thumbnailUrl"`
	Description  string          `bson:"description" json:"description"`
	ChannelID    string          `bson:"channelId" json:"channelId"`
	Uploader     bson.ObjectID   `bson:"uploader" json:"uploader"`
	Views        []bson.ObjectID `bson:"views" json:"views"`
	Likes        []bson.ObjectID `bson:"likes" json:"likes"`
	Dislikes     []bson.ObjectID `bson:"dislikes" json:"dislikes"`
	UploadDate   time.Time       `bson:"uploadDate" json:"uploadDate"`
	VideoURL     string          `bson:"videoUrl" json:"videoUrl"`
	Category     string          `bson:"category,omitempty" json:"category,omitempty"`
	Comments     []Comment       `bson:"comments" json:"comments"`
	CreatedAt    time.Time       `bson:"createdAt,omitempty" json:"createdAt"`
	UpdatedAt    time.Time       `bson:"updatedAt,omitempty" json:"updatedAt"`
}

// Comment is embedded in the video document, not a separate collection.
type Comment struct {
	CommentID string        `bson:"commentId" json:"commentId"`
	UserID    bson.ObjectID `bson:"userId" json:"userId"`
	Text      string        `bson:"text" json:"text"`
	Timestamp time.Time     `bson:"timestamp" json:"timestamp"`
}

// VideoSlim is the title/videoId/thumbnail projection used by profile
// assembly and search suggestions.
type VideoSlim struct {
	ID           bson.ObjectID `bson:"_id" json:"_id"`
	VideoID      string        `bson:"videoId" json:"videoId"`
	Title        string        `bson:"title" json:"title"`
	ThumbnailURL string        `bson:"thumbnailUrl,omitempty" json:"thumbnailUrl,omitempty"`
}
