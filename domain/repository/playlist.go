package repository

import (
	"context"

	"vidhub/domain/model"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// IPlaylist is the playlists collection contract.
type IPlaylist interface {
	Create(ctx context.Context, playlist model.Playlist) (model.Playlist, error)
	GetByID(ctx context.Context, id bson.ObjectID) (model.Playlist, error)
	GetByIDs(ctx context.Context, ids []bson.ObjectID) ([]model.Playlist, error)
	// GetByNameAndOwner backs the upsert-by-name flow; returns
	// model.ErrNotFound when no playlist matches.
	GetByNameAndOwner(ctx context.Context, name string, owner bson.ObjectID) (model.Playlist, error)
	GetByOwner(ctx context.Context, owner bson.ObjectID) ([]model.Playlist, error)
	SearchByName(ctx context.Context, query string, limit int64) ([]model.Playlist, error)
	AddVideo(ctx context.Context, playlistID, videoID bson.ObjectID) error
	RemoveVideo(ctx context.Context, playlistID, videoID bson.ObjectID) error
	UpdateDetails(ctx context.Context, id bson.ObjectID, name *string, isPrivate *bool) (model.Playlist, error)
	Delete(ctx context.Context, id bson.ObjectID) error
}
