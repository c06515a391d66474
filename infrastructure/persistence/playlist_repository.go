package persistence

import (
	"context"
	"errors"

	"vidhub/domain/model"
	"vidhub/domain/repository"
	"vidhub/infrastructure/logger"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// PlaylistRepository is the MongoDB implementation of IPlaylist.
type PlaylistRepository struct {
	db *mongo.Database
}

func NewPlaylistRepository(db *mongo.Database) repository.IPlaylist {
	return &PlaylistRepository{db: db}
}

func (r *PlaylistRepository) collection() *mongo.Collection {
	return r.db.Collection("playlists")
}

func (r *PlaylistRepository) Create(ctx context.Context, playlist model.Playlist) (model.Playlist, error) {
	if playlist.Videos == nil {
		playlist.Videos = []bson.ObjectID{}
	}
	res, err := r.collection().InsertOne(ctx, playlist)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("mongo: insert playlist failed")
		return model.Playlist{}, err
	}
	playlist.ID = res.InsertedID.(bson.ObjectID)
	return playlist, nil
}

func (r *PlaylistRepository) GetByID(ctx context.Context, id bson.ObjectID) (model.Playlist, error) {
	var playlist model.Playlist
	err := r.collection().FindOne(ctx, bson.M{"_id": id}).Decode(&playlist)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.Playlist{}, model.ErrNotFound
	}
	return playlist, err
}

func (r *PlaylistRepository) GetByIDs(ctx context.Context, ids []bson.ObjectID) ([]model.Playlist, error) {
	playlists := []model.Playlist{}
	if len(ids) == 0 {
		return playlists, nil
	}
	return r.find(ctx, bson.M{"_id": bson.M{"$in": ids}}, nil)
}

func (r *PlaylistRepository) GetByNameAndOwner(ctx context.Context, name string, owner bson.ObjectID) (model.Playlist, error) {
	var playlist model.Playlist
	err := r.collection().FindOne(ctx, bson.M{"name": name, "userId": owner}).Decode(&playlist)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.Playlist{}, model.ErrNotFound
	}
	return playlist, err
}

func (r *PlaylistRepository) GetByOwner(ctx context.Context, owner bson.ObjectID) ([]model.Playlist, error) {
	return r.find(ctx, bson.M{"userId": owner}, nil)
}

func (r *PlaylistRepository) SearchByName(ctx context.Context, query string, limit int64) ([]model.Playlist, error) {
	filter := substringFilter("name", query)
	var opts *options.FindOptionsBuilder
	if limit > 0 {
		opts = options.Find().SetLimit(limit)
	}
	return r.find(ctx, filter, opts)
}

func (r *PlaylistRepository) AddVideo(ctx context.Context, playlistID, videoID bson.ObjectID) error {
	// $addToSet keeps membership semantics on the ordered sequence.
	return r.updateOne(ctx, playlistID, bson.M{"$addToSet": bson.M{"videos": videoID}})
}

func (r *PlaylistRepository) RemoveVideo(ctx context.Context, playlistID, videoID bson.ObjectID) error {
	return r.updateOne(ctx, playlistID, bson.M{"$pull": bson.M{"videos": videoID}})
}

func (r *PlaylistRepository) UpdateDetails(ctx context.Context, id bson.ObjectID, name *string, isPrivate *bool) (model.Playlist, error) {
	set := bson.M{}
	if name != nil {
		set["name"] = *name
	}
	if isPrivate != nil {
		set["isPrivate"] = *isPrivate
	}
	var playlist model.Playlist
	if len(set) == 0 {
		return r.GetByID(ctx, id)
	}
	err := r.collection().FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&playlist)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.Playlist{}, model.ErrNotFound
	}
	return playlist, err
}

func (r *PlaylistRepository) Delete(ctx context.Context, id bson.ObjectID) error {
	res, err := r.collection().DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("mongo: delete playlist failed")
		return err
	}
	if res.DeletedCount == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *PlaylistRepository) find(ctx context.Context, filter bson.M, opts *options.FindOptionsBuilder) ([]model.Playlist, error) {
	playlists := []model.Playlist{}
	var cursor *mongo.Cursor
	var err error
	if opts != nil {
		cursor, err = r.collection().Find(ctx, filter, opts)
	} else {
		cursor, err = r.collection().Find(ctx, filter)
	}
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("mongo: find playlists failed")
		return nil, err
	}
	defer cursor.Close(ctx)
	if err := cursor.All(ctx, &playlists); err != nil {
		return nil, err
	}
	return playlists, nil
}

func (r *PlaylistRepository) updateOne(ctx context.Context, id bson.ObjectID, update bson.M) error {
	res, err := r.collection().UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		logger.GetLogger().WithFields(map[string]interface{}{
			"error":       err,
			"playlist_id": id.Hex(),
		}).Error("mongo: update playlist failed")
		return err
	}
	if res.MatchedCount == 0 {
		return model.ErrNotFound
	}
	return nil
}
