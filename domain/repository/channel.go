package repository

import (
	"context"

	"vidhub/domain/model"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// IChannel is the channels collection contract.
type IChannel interface {
	Create(ctx context.Context, channel model.Channel) (model.Channel, error)
	GetByID(ctx context.Context, id bson.ObjectID) (model.Channel, error)
	GetByPublicID(ctx context.Context, channelID string) (model.Channel, error)
	GetByIDs(ctx context.Context, ids []bson.ObjectID) ([]model.Channel, error)
	GetByOwner(ctx context.Context, owner bson.ObjectID) ([]model.Channel, error)
	GetBySubscriber(ctx context.Context, userID bson.ObjectID) ([]model.Channel, error)
	UpdateDetails(ctx context.Context, id bson.ObjectID, channelName, description, banner, image string) error
	Delete(ctx context.Context, id bson.ObjectID) error

	// AddSubscriber and RemoveSubscriber mutate subscribersList and recompute
	// the cached subscribers count in one atomic pipeline update; they return
	// the new count and model.ErrConflict when the membership precondition
	// does not hold.
	AddSubscriber(ctx context.Context, channelID, userID bson.ObjectID) (int, error)
	RemoveSubscriber(ctx context.Context, channelID, userID bson.ObjectID) (int, error)

	AddVideo(ctx context.Context, channelID, videoID bson.ObjectID) error
	RemoveVideo(ctx context.Context, channelID, videoID bson.ObjectID) error
}
