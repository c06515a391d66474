package persistence

import (
	"context"
	"errors"
	"time"

	"vidhub/domain/model"
	"vidhub/domain/repository"
	"vidhub/infrastructure/logger"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// UserRepository is the MongoDB implementation of IUser. All reference-array
// mutations go through atomic update operators so concurrent requests on the
// same document never read-modify-write whole lists in process.
type UserRepository struct {
	db *mongo.Database
}

func NewUserRepository(db *mongo.Database) repository.IUser {
	return &UserRepository{db: db}
}

func (r *UserRepository) collection() *mongo.Collection {
	return r.db.Collection("users")
}

func (r *UserRepository) Create(ctx context.Context, user model.User) (model.User, error) {
	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now
	if user.UploadedVideos == nil {
		user.UploadedVideos = []bson.ObjectID{}
	}
	if user.Channels == nil {
		user.Channels = []bson.ObjectID{}
	}
	if user.History == nil {
		user.History = []bson.ObjectID{}
	}
	if user.LikedVideos == nil {
		user.LikedVideos = []bson.ObjectID{}
	}
	if user.WatchLater == nil {
		user.WatchLater = []bson.ObjectID{}
	}
	if user.Playlists == nil {
		user.Playlists = []bson.ObjectID{}
	}
	if user.Subscriptions == nil {
		user.Subscriptions = []bson.ObjectID{}
	}

	res, err := r.collection().InsertOne(ctx, user)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("mongo: insert user failed")
		return model.User{}, err
	}
	user.ID = res.InsertedID.(bson.ObjectID)
	return user, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id bson.ObjectID) (model.User, error) {
	var user model.User
	err := r.collection().FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.User{}, model.ErrNotFound
	}
	return user, err
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (model.User, error) {
	var user model.User
	err := r.collection().FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.User{}, model.ErrNotFound
	}
	return user, err
}

func (r *UserRepository) GetSlimByIDs(ctx context.Context, ids []bson.ObjectID) ([]model.UserSlim, error) {
	users := []model.UserSlim{}
	if len(ids) == 0 {
		return users, nil
	}
	opts := options.Find().SetProjection(bson.M{"username": 1, "avatar": 1})
	cursor, err := r.collection().Find(ctx, bson.M{"_id": bson.M{"$in": ids}}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *UserRepository) UpdatePassword(ctx context.Context, id bson.ObjectID, hash string) error {
	return r.updateOne(ctx, id, bson.M{
		"$set": bson.M{"password": hash, "updatedAt": time.Now().UTC()},
	})
}

func (r *UserRepository) AppendChannel(ctx context.Context, userID, channelID bson.ObjectID) error {
	return r.updateOne(ctx, userID, bson.M{"$push": bson.M{"channels": channelID}})
}

func (r *UserRepository) RemoveChannel(ctx context.Context, userID, channelID bson.ObjectID) error {
	return r.updateOne(ctx, userID, bson.M{"$pull": bson.M{"channels": channelID}})
}

func (r *UserRepository) SetDefaultChannelIfUnset(ctx context.Context, userID bson.ObjectID, channelPublicID string) error {
	// Conditional write: only the first channel ever created lands here.
	_, err := r.collection().UpdateOne(ctx,
		bson.M{"_id": userID, "defaultChannel": nil},
		bson.M{"$set": bson.M{"defaultChannel": channelPublicID}},
	)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("mongo: set default channel if unset failed")
	}
	return err
}

func (r *UserRepository) SetDefaultChannel(ctx context.Context, userID bson.ObjectID, channelPublicID *string) error {
	return r.updateOne(ctx, userID, bson.M{"$set": bson.M{"defaultChannel": channelPublicID}})
}

func (r *UserRepository) AppendUploadedVideo(ctx context.Context, userID, videoID bson.ObjectID) error {
	return r.updateOne(ctx, userID, bson.M{"$push": bson.M{"uploadedVideos": videoID}})
}

func (r *UserRepository) PullUploadedVideos(ctx context.Context, userID bson.ObjectID, videoIDs []bson.ObjectID) error {
	if len(videoIDs) == 0 {
		return nil
	}
	return r.updateOne(ctx, userID, bson.M{"$pull": bson.M{"uploadedVideos": bson.M{"$in": videoIDs}}})
}

func (r *UserRepository) AddSubscription(ctx context.Context, userID, channelID bson.ObjectID) error {
	return r.updateOne(ctx, userID, bson.M{"$addToSet": bson.M{"subscriptions": channelID}})
}

func (r *UserRepository) RemoveSubscription(ctx context.Context, userID, channelID bson.ObjectID) error {
	return r.updateOne(ctx, userID, bson.M{"$pull": bson.M{"subscriptions": channelID}})
}

func (r *UserRepository) AddLikedVideo(ctx context.Context, userID, videoID bson.ObjectID) error {
	return r.updateOne(ctx, userID, bson.M{"$addToSet": bson.M{"likedVideos": videoID}})
}

func (r *UserRepository) RemoveLikedVideo(ctx context.Context, userID, videoID bson.ObjectID) error {
	return r.updateOne(ctx, userID, bson.M{"$pull": bson.M{"likedVideos": videoID}})
}

func (r *UserRepository) AddToHistory(ctx context.Context, userID, videoID bson.ObjectID) (model.User, error) {
	var user model.User
	err := r.collection().FindOneAndUpdate(ctx,
		bson.M{"_id": userID},
		bson.M{"$addToSet": bson.M{"history": videoID}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.User{}, model.ErrNotFound
	}
	return user, err
}

func (r *UserRepository) RemoveFromHistory(ctx context.Context, userID, videoID bson.ObjectID) error {
	return r.updateOne(ctx, userID, bson.M{"$pull": bson.M{"history": videoID}})
}

func (r *UserRepository) ClearHistory(ctx context.Context, userID bson.ObjectID) error {
	return r.updateOne(ctx, userID, bson.M{"$set": bson.M{"history": []bson.ObjectID{}}})
}

func (r *UserRepository) AddWatchLater(ctx context.Context, userID, videoID bson.ObjectID) error {
	return r.updateOne(ctx, userID, bson.M{"$addToSet": bson.M{"watchLater": videoID}})
}

func (r *UserRepository) RemoveWatchLater(ctx context.Context, userID, videoID bson.ObjectID) error {
	return r.updateOne(ctx, userID, bson.M{"$pull": bson.M{"watchLater": videoID}})
}

func (r *UserRepository) AddPlaylist(ctx context.Context, userID, playlistID bson.ObjectID) error {
	// add-if-absent: registering an already-linked playlist is a no-op.
	return r.updateOne(ctx, userID, bson.M{"$addToSet": bson.M{"playlists": playlistID}})
}

func (r *UserRepository) RemovePlaylist(ctx context.Context, userID, playlistID bson.ObjectID) error {
	return r.updateOne(ctx, userID, bson.M{"$pull": bson.M{"playlists": playlistID}})
}

func (r *UserRepository) updateOne(ctx context.Context, id bson.ObjectID, update bson.M) error {
	res, err := r.collection().UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		logger.GetLogger().WithFields(map[string]interface{}{
			"error":   err,
			"user_id": id.Hex(),
		}).Error("mongo: update user failed")
		return err
	}
	if res.MatchedCount == 0 {
		return model.ErrNotFound
	}
	return nil
}
