package repository

import (
	"context"

	"vidhub/domain/model"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// IVideo is the videos collection contract. Like/dislike mutations pair the
// add on one set with the pull on the other inside a single update so the
// mutual-exclusion invariant can never be observed broken on the video side.
type IVideo interface {
	Create(ctx context.Context, video model.Video) (model.Video, error)
	GetByID(ctx context.Context, id bson.ObjectID) (model.Video, error)
	GetByPublicID(ctx context.Context, videoID string) (model.Video, error)
	GetAll(ctx context.Context) ([]model.Video, error)
	GetByIDs(ctx context.Context, ids []bson.ObjectID) ([]model.Video, error)
	GetSlimByIDs(ctx context.Context, ids []bson.ObjectID) ([]model.VideoSlim, error)
	FindByChannelPublicID(ctx context.Context, channelID string) ([]model.Video, error)
	SearchByTitle(ctx context.Context, query string, limit int64) ([]model.Video, error)
	UpdateDetails(ctx context.Context, id bson.ObjectID, title, description *string) (model.Video, error)
	Delete(ctx context.Context, id bson.ObjectID) error
	DeleteByIDs(ctx context.Context, ids []bson.ObjectID) error

	AddLike(ctx context.Context, videoID, userID bson.ObjectID) error
	RemoveLike(ctx context.Context, videoID, userID bson.ObjectID) error
	AddDislike(ctx context.Context, videoID, userID bson.ObjectID) error
	RemoveDislike(ctx context.Context, videoID, userID bson.ObjectID) error

	AddView(ctx context.Context, videoPublicID string, userID bson.ObjectID) (model.Video, error)

	PushComment(ctx context.Context, videoPublicID string, comment model.Comment) (model.Video, error)
	PullComment(ctx context.Context, videoPublicID, commentID string) (model.Video, error)
}
