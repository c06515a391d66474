package repository

import (
	"context"

	"vidhub/domain/model"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// IUser is the users collection contract. Every cross-entity back-reference
// on the user document is mutated through a named operation here; callers
// never poke reference arrays directly.
type IUser interface {
	Create(ctx context.Context, user model.User) (model.User, error)
	GetByID(ctx context.Context, id bson.ObjectID) (model.User, error)
	GetByEmail(ctx context.Context, email string) (model.User, error)
	GetSlimByIDs(ctx context.Context, ids []bson.ObjectID) ([]model.UserSlim, error)
	UpdatePassword(ctx context.Context, id bson.ObjectID, hash string) error

	AppendChannel(ctx context.Context, userID, channelID bson.ObjectID) error
	RemoveChannel(ctx context.Context, userID, channelID bson.ObjectID) error
	// SetDefaultChannelIfUnset only writes when defaultChannel is null, in a
	// single conditional update.
	SetDefaultChannelIfUnset(ctx context.Context, userID bson.ObjectID, channelPublicID string) error
	SetDefaultChannel(ctx context.Context, userID bson.ObjectID, channelPublicID *string) error

	AppendUploadedVideo(ctx context.Context, userID, videoID bson.ObjectID) error
	PullUploadedVideos(ctx context.Context, userID bson.ObjectID, videoIDs []bson.ObjectID) error

	AddSubscription(ctx context.Context, userID, channelID bson.ObjectID) error
	RemoveSubscription(ctx context.Context, userID, channelID bson.ObjectID) error

	AddLikedVideo(ctx context.Context, userID, videoID bson.ObjectID) error
	RemoveLikedVideo(ctx context.Context, userID, videoID bson.ObjectID) error

	AddToHistory(ctx context.Context, userID, videoID bson.ObjectID) (model.User, error)
	RemoveFromHistory(ctx context.Context, userID, videoID bson.ObjectID) error
	ClearHistory(ctx context.Context, userID bson.ObjectID) error

	AddWatchLater(ctx context.Context, userID, videoID bson.ObjectID) error
	RemoveWatchLater(ctx context.Context, userID, videoID bson.ObjectID) error

	AddPlaylist(ctx context.Context, userID, playlistID bson.ObjectID) error
	RemovePlaylist(ctx context.Context, userID, playlistID bson.ObjectID) error
}
