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

// VideoRepository is the MongoDB implementation of IVideo.
type VideoRepository struct {
	db *mongo.Database
}

func NewVideoRepository(db *mongo.Database) repository.IVideo {
	return &VideoRepository{db: db}
}

func (r *VideoRepository) collection() *mongo.Collection {
	return r.db.Collection("videos")
}

func (r *VideoRepository) Create(ctx context.Context, video model.Video) (model.Video, error) {
	now := time.Now().UTC()
	video.CreatedAt = now
	video.UpdatedAt = now
	if video.Views == nil {
		video.Views = []bson.ObjectID{}
	}
	if video.Likes == nil {
		video.Likes = []bson.ObjectID{}
	}
	if video.Dislikes == nil {
		video.Dislikes = []bson.ObjectID{}
	}
	if video.Comments == nil {
		video.Comments = []model.Comment{}
	}
	res, err := r.collection().InsertOne(ctx, video)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("mongo: insert video failed")
		return model.Video{}, err
	}
	video.ID = res.InsertedID.(bson.ObjectID)
	return video, nil
}

func (r *VideoRepository) GetByID(ctx context.Context, id bson.ObjectID) (model.Video, error) {
	var video model.Video
	err := r.collection().FindOne(ctx, bson.M{"_id": id}).Decode(&video)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.Video{}, model.ErrNotFound
	}
	return video, err
}

func (r *VideoRepository) GetByPublicID(ctx context.Context, videoID string) (model.Video, error) {
	var video model.Video
	err := r.collection().FindOne(ctx, bson.M{"videoId": videoID}).Decode(&video)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.Video{}, model.ErrNotFound
	}
	return video, err
}

func (r *VideoRepository) GetAll(ctx context.Context) ([]model.Video, error) {
	return r.find(ctx, bson.M{}, nil)
}

func (r *VideoRepository) GetByIDs(ctx context.Context, ids []bson.ObjectID) ([]model.Video, error) {
	if len(ids) == 0 {
		return []model.Video{}, nil
	}
	return r.find(ctx, bson.M{"_id": bson.M{"$in": ids}}, nil)
}

func (r *VideoRepository) GetSlimByIDs(ctx context.Context, ids []bson.ObjectID) ([]model.VideoSlim, error) {
	videos := []model.VideoSlim{}
	if len(ids) == 0 {
		return videos, nil
	}
	opts := options.Find().SetProjection(bson.M{"title": 1, "videoId": 1, "thumbnailUrl": 1})
	cursor, err := r.collection().Find(ctx, bson.M{"_id": bson.M{"$in": ids}}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)
	if err := cursor.All(ctx, &videos); err != nil {
		return nil, err
	}
	return videos, nil
}

func (r *VideoRepository) FindByChannelPublicID(ctx context.Context, channelID string) ([]model.Video, error) {
	return r.find(ctx, bson.M{"channelId": channelID}, nil)
}

func (r *VideoRepository) SearchByTitle(ctx context.Context, query string, limit int64) ([]model.Video, error) {
	filter := substringFilter("title", query)
	var opts *options.FindOptionsBuilder
	if limit > 0 {
		opts = options.Find().SetLimit(limit)
	}
	return r.find(ctx, filter, opts)
}

func (r *VideoRepository) UpdateDetails(ctx context.Context, id bson.ObjectID, title, description *string) (model.Video, error) {
	set := bson.M{"updatedAt": time.Now().UTC()}
	if title != nil {
		set["title"] = *title
	}
	if description != nil {
		set["description"] = *description
	}
	var video model.Video
	err := r.collection().FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&video)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.Video{}, model.ErrNotFound
	}
	return video, err
}

func (r *VideoRepository) Delete(ctx context.Context, id bson.ObjectID) error {
	res, err := r.collection().DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("mongo: delete video failed")
		return err
	}
	if res.DeletedCount == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *VideoRepository) DeleteByIDs(ctx context.Context, ids []bson.ObjectID) error {
	if len(ids) == 0 {
		return nil
	}
	_, err := r.collection().DeleteMany(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("mongo: delete videos failed")
	}
	return err
}

// AddLike sets the like and clears any dislike in one update; the two sets
// can never both contain the user afterwards.
func (r *VideoRepository) AddLike(ctx context.Context, videoID, userID bson.ObjectID) error {
	return r.updateOne(ctx, videoID, bson.M{
		"$addToSet": bson.M{"likes": userID},
		"$pull":     bson.M{"dislikes": userID},
	})
}

func (r *VideoRepository) RemoveLike(ctx context.Context, videoID, userID bson.ObjectID) error {
	return r.updateOne(ctx, videoID, bson.M{"$pull": bson.M{"likes": userID}})
}

func (r *VideoRepository) AddDislike(ctx context.Context, videoID, userID bson.ObjectID) error {
	return r.updateOne(ctx, videoID, bson.M{
		"$addToSet": bson.M{"dislikes": userID},
		"$pull":     bson.M{"likes": userID},
	})
}

func (r *VideoRepository) RemoveDislike(ctx context.Context, videoID, userID bson.ObjectID) error {
	return r.updateOne(ctx, videoID, bson.M{"$pull": bson.M{"dislikes": userID}})
}

func (r *VideoRepository) AddView(ctx context.Context, videoPublicID string, userID bson.ObjectID) (model.Video, error) {
	var video model.Video
	err := r.collection().FindOneAndUpdate(ctx,
		bson.M{"videoId": videoPublicID},
		bson.M{"$addToSet": bson.M{"views": userID}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&video)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.Video{}, model.ErrNotFound
	}
	return video, err
}

func (r *VideoRepository) PushComment(ctx context.Context, videoPublicID string, comment model.Comment) (model.Video, error) {
	var video model.Video
	err := r.collection().FindOneAndUpdate(ctx,
		bson.M{"videoId": videoPublicID},
		bson.M{
			"$push": bson.M{"comments": comment},
			"$set":  bson.M{"updatedAt": time.Now().UTC()},
		},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&video)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.Video{}, model.ErrNotFound
	}
	return video, err
}

func (r *VideoRepository) PullComment(ctx context.Context, videoPublicID, commentID string) (model.Video, error) {
	var video model.Video
	err := r.collection().FindOneAndUpdate(ctx,
		bson.M{"videoId": videoPublicID},
		bson.M{
			"$pull": bson.M{"comments": bson.M{"commentId": commentID}},
			"$set":  bson.M{"updatedAt": time.Now().UTC()},
		},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&video)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.Video{}, model.ErrNotFound
	}
	return video, err
}

func (r *VideoRepository) find(ctx context.Context, filter bson.M, opts *options.FindOptionsBuilder) ([]model.Video, error) {
	videos := []model.Video{}
	var cursor *mongo.Cursor
	var err error
	if opts != nil {
		cursor, err = r.collection().Find(ctx, filter, opts)
	} else {
		cursor, err = r.collection().Find(ctx, filter)
	}
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("mongo: find videos failed")
		return nil, err
	}
	defer cursor.Close(ctx)
	if err := cursor.All(ctx, &videos); err != nil {
		return nil, err
	}
	return videos, nil
}

func (r *VideoRepository) updateOne(ctx context.Context, id bson.ObjectID, update bson.M) error {
	res, err := r.collection().UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		logger.GetLogger().WithFields(map[string]interface{}{
			"error":    err,
			"video_id": id.Hex(),
		}).Error("mongo: update video failed")
		return err
	}
	if res.MatchedCount == 0 {
		return model.ErrNotFound
	}
	return nil
}
