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

// ChannelRepository is the MongoDB implementation of IChannel.
type ChannelRepository struct {
	db *mongo.Database
}

func NewChannelRepository(db *mongo.Database) repository.IChannel {
	return &ChannelRepository{db: db}
}

func (r *ChannelRepository) collection() *mongo.Collection {
	return r.db.Collection("channels")
}

func (r *ChannelRepository) Create(ctx context.Context, channel model.Channel) (model.Channel, error) {
	if channel.SubscribersList == nil {
		channel.SubscribersList = []bson.ObjectID{}
	}
	if channel.Videos == nil {
		channel.Videos = []bson.ObjectID{}
	}
	res, err := r.collection().InsertOne(ctx, channel)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("mongo: insert channel failed")
		return model.Channel{}, err
	}
	channel.ID = res.InsertedID.(bson.ObjectID)
	return channel, nil
}

func (r *ChannelRepository) GetByID(ctx context.Context, id bson.ObjectID) (model.Channel, error) {
	var channel model.Channel
	err := r.collection().FindOne(ctx, bson.M{"_id": id}).Decode(&channel)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.Channel{}, model.ErrNotFound
	}
	return channel, err
}

func (r *ChannelRepository) GetByPublicID(ctx context.Context, channelID string) (model.Channel, error) {
	var channel model.Channel
	err := r.collection().FindOne(ctx, bson.M{"channelId": channelID}).Decode(&channel)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.Channel{}, model.ErrNotFound
	}
	return channel, err
}

func (r *ChannelRepository) GetByIDs(ctx context.Context, ids []bson.ObjectID) ([]model.Channel, error) {
	channels := []model.Channel{}
	if len(ids) == 0 {
		return channels, nil
	}
	cursor, err := r.collection().Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)
	if err := cursor.All(ctx, &channels); err != nil {
		return nil, err
	}
	return channels, nil
}

func (r *ChannelRepository) GetByOwner(ctx context.Context, owner bson.ObjectID) ([]model.Channel, error) {
	channels := []model.Channel{}
	cursor, err := r.collection().Find(ctx, bson.M{"owner": owner})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)
	if err := cursor.All(ctx, &channels); err != nil {
		return nil, err
	}
	return channels, nil
}

func (r *ChannelRepository) GetBySubscriber(ctx context.Context, userID bson.ObjectID) ([]model.Channel, error) {
	channels := []model.Channel{}
	opts := options.Find().SetProjection(bson.M{"channelName": 1, "channelImage": 1})
	cursor, err := r.collection().Find(ctx, bson.M{"subscribersList": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)
	if err := cursor.All(ctx, &channels); err != nil {
		return nil, err
	}
	return channels, nil
}

func (r *ChannelRepository) UpdateDetails(ctx context.Context, id bson.ObjectID, channelName, description, banner, image string) error {
	set := bson.M{}
	if channelName != "" {
		set["channelName"] = channelName
	}
	if description != "" {
		set["description"] = description
	}
	if banner != "" {
		set["channelBanner"] = banner
	}
	if image != "" {
		set["channelImage"] = image
	}
	if len(set) == 0 {
		return nil
	}
	res, err := r.collection().UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("mongo: update channel failed")
		return err
	}
	if res.MatchedCount == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *ChannelRepository) Delete(ctx context.Context, id bson.ObjectID) error {
	res, err := r.collection().DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("mongo: delete channel failed")
		return err
	}
	if res.DeletedCount == 0 {
		return model.ErrNotFound
	}
	return nil
}

// AddSubscriber appends the user to subscribersList and recomputes the cached
// subscribers count from the list's new size, all inside one pipeline update.
// The filter requires the user to be absent, so a concurrent duplicate
// subscribe resolves to ErrConflict instead of a double entry.
func (r *ChannelRepository) AddSubscriber(ctx context.Context, channelID, userID bson.ObjectID) (int, error) {
	filter := bson.M{"_id": channelID, "subscribersList": bson.M{"$ne": userID}}
	update := mongo.Pipeline{
		bson.D{{Key: "$set", Value: bson.M{
			"subscribersList": bson.M{"$concatArrays": bson.A{"$subscribersList", bson.A{userID}}},
		}}},
		bson.D{{Key: "$set", Value: bson.M{
			"subscribers": bson.M{"$size": "$subscribersList"},
		}}},
	}
	return r.subscriberUpdate(ctx, channelID, filter, update)
}

// RemoveSubscriber is the inverse of AddSubscriber; the filter requires
// membership, so removing an absent subscriber yields ErrConflict.
func (r *ChannelRepository) RemoveSubscriber(ctx context.Context, channelID, userID bson.ObjectID) (int, error) {
	filter := bson.M{"_id": channelID, "subscribersList": userID}
	update := mongo.Pipeline{
		bson.D{{Key: "$set", Value: bson.M{
			"subscribersList": bson.M{"$filter": bson.M{
				"input": "$subscribersList",
				"as":    "s",
				"cond":  bson.M{"$ne": bson.A{"$$s", userID}},
			}},
		}}},
		bson.D{{Key: "$set", Value: bson.M{
			"subscribers": bson.M{"$size": "$subscribersList"},
		}}},
	}
	return r.subscriberUpdate(ctx, channelID, filter, update)
}

func (r *ChannelRepository) subscriberUpdate(ctx context.Context, channelID bson.ObjectID, filter bson.M, update mongo.Pipeline) (int, error) {
	var channel model.Channel
	err := r.collection().FindOneAndUpdate(ctx, filter, update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&channel)
	if errors.Is(err, mongo.ErrNoDocuments) {
		// A guard miss means either the membership condition failed or the
		// channel itself is gone; re-check by id to tell them apart.
		existsErr := r.collection().FindOne(ctx, bson.M{"_id": channelID},
			options.FindOne().SetProjection(bson.M{"_id": 1}),
		).Err()
		if errors.Is(existsErr, mongo.ErrNoDocuments) {
			return 0, model.ErrNotFound
		}
		if existsErr != nil {
			return 0, existsErr
		}
		return 0, model.ErrConflict
	}
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("mongo: subscriber update failed")
		return 0, err
	}
	return channel.Subscribers, nil
}

func (r *ChannelRepository) AddVideo(ctx context.Context, channelID, videoID bson.ObjectID) error {
	res, err := r.collection().UpdateOne(ctx,
		bson.M{"_id": channelID},
		bson.M{"$addToSet": bson.M{"videos": videoID}},
	)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("mongo: register video on channel failed")
		return err
	}
	if res.MatchedCount == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *ChannelRepository) RemoveVideo(ctx context.Context, channelID, videoID bson.ObjectID) error {
	res, err := r.collection().UpdateOne(ctx,
		bson.M{"_id": channelID},
		bson.M{"$pull": bson.M{"videos": videoID}},
	)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("mongo: detach video from channel failed")
		return err
	}
	if res.MatchedCount == 0 {
		return model.ErrNotFound
	}
	return nil
}
