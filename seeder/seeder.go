package seeder

import (
	"context"
	"fmt"
	"time"

	"vidhub/domain/model"
	"vidhub/infrastructure/logger"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"golang.org/x/crypto/bcrypt"
)

// Seed wipes the four collections and loads a small demo data set whose
// cross-references are mutually consistent: every id a document carries
// points at a document inserted in the same run.
func Seed(ctx context.Context, db *mongo.Database) error {
	for _, name := range []string{"users", "channels", "videos", "playlists"} {
		if err := db.Collection(name).Drop(ctx); err != nil {
			return fmt.Errorf("drop %s: %w", name, err)
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	now := time.Now().UTC()

	aliceID := bson.NewObjectID()
	bobID := bson.NewObjectID()
	aliceChannelID := bson.NewObjectID()
	bobChannelID := bson.NewObjectID()
	videoIDs := []bson.ObjectID{bson.NewObjectID(), bson.NewObjectID(), bson.NewObjectID()}
	playlistID := bson.NewObjectID()

	aliceChannelPublicID := uuid.NewString()
	bobChannelPublicID := uuid.NewString()
	videoPublicIDs := []string{uuid.NewString(), uuid.NewString(), uuid.NewString()}

	channels := []interface{}{
		model.Channel{
			ID:              aliceChannelID,
			ChannelID:       aliceChannelPublicID,
			ChannelName:     "Alice Codes",
			Handle:          "@alicecodes",
			Description:     "Programming walkthroughs and live builds.",
			Owner:           aliceID,
			Subscribers:     1,
			SubscribersList: []bson.ObjectID{bobID},
			Videos:          []bson.ObjectID{videoIDs[0], videoIDs[1]},
		},
		model.Channel{
			ID:              bobChannelID,
			ChannelID:       bobChannelPublicID,
			ChannelName:     "Bob Outdoors",
			Handle:          "@boboutdoors",
			Description:     "Hiking and camping across the country.",
			Owner:           bobID,
			Subscribers:     0,
			SubscribersList: []bson.ObjectID{},
			Videos:          []bson.ObjectID{videoIDs[2]},
		},
	}

	videos := []interface{}{
		model.Video{
			ID:         videoIDs[0],
			VideoID:    videoPublicIDs[0],
			Title:      "Building a REST API from scratch",
			ChannelID:  aliceChannelPublicID,
			Uploader:   aliceID,
			Category:   "Education",
			UploadDate: now,
			Views:      []bson.ObjectID{bobID},
			Likes:      []bson.ObjectID{bobID},
			Dislikes:   []bson.ObjectID{},
			Comments: []model.Comment{{
				CommentID: uuid.NewString(),
				UserID:    bobID,
				Text:      "Great walkthrough, thanks!",
				Timestamp: now,
			}},
			CreatedAt: now,
			UpdatedAt: now,
		},
		model.Video{
			ID:         videoIDs[1],
			VideoID:    videoPublicIDs[1],
			Title:      "Debugging concurrent code",
			ChannelID:  aliceChannelPublicID,
			Uploader:   aliceID,
			Category:   "Education",
			UploadDate: now,
			Views:      []bson.ObjectID{},
			Likes:      []bson.ObjectID{},
			Dislikes:   []bson.ObjectID{},
			Comments:   []model.Comment{},
			CreatedAt:  now,
			UpdatedAt:  now,
		},
		model.Video{
			ID:         videoIDs[2],
			VideoID:    videoPublicIDs[2],
			Title:      "Three days on the ridge trail",
			ChannelID:  bobChannelPublicID,
			Uploader:   bobID,
			Category:   "Travel",
			UploadDate: now,
			Views:      []bson.ObjectID{aliceID},
			Likes:      []bson.ObjectID{},
			Dislikes:   []bson.ObjectID{},
			Comments:   []model.Comment{},
			CreatedAt:  now,
			UpdatedAt:  now,
		},
	}

	playlists := []interface{}{
		model.Playlist{
			ID:        playlistID,
			Name:      "Go tutorials",
			UserID:    bobID,
			Videos:    []bson.ObjectID{videoIDs[0], videoIDs[1]},
			IsPrivate: false,
		},
	}

	users := []interface{}{
		model.User{
			ID:             aliceID,
			Username:       "Alice Nguyen",
			Email:          "alice@example.com",
			Password:       string(hash),
			DefaultChannel: &aliceChannelPublicID,
			Channels:       []bson.ObjectID{aliceChannelID},
			UploadedVideos: []bson.ObjectID{videoIDs[0], videoIDs[1]},
			History:        []bson.ObjectID{videoIDs[2]},
			LikedVideos:    []bson.ObjectID{},
			WatchLater:     []bson.ObjectID{},
			Playlists:      []bson.ObjectID{},
			Subscriptions:  []bson.ObjectID{},
		},
		model.User{
			ID:             bobID,
			Username:       "Bob Castillo",
			Email:          "bob@example.com",
			Password:       string(hash),
			DefaultChannel: &bobChannelPublicID,
			Channels:       []bson.ObjectID{bobChannelID},
			UploadedVideos: []bson.ObjectID{videoIDs[2]},
			History:        []bson.ObjectID{videoIDs[0]},
			LikedVideos:    []bson.ObjectID{videoIDs[0]},
			WatchLater:     []bson.ObjectID{videoIDs[1]},
			Playlists:      []bson.ObjectID{playlistID},
			Subscriptions:  []bson.ObjectID{aliceChannelID},
		},
	}

	if _, err := db.Collection("users").InsertMany(ctx, users); err != nil {
		return fmt.Errorf("seed users: %w", err)
	}
	if _, err := db.Collection("channels").InsertMany(ctx, channels); err != nil {
		return fmt.Errorf("seed channels: %w", err)
	}
	if _, err := db.Collection("videos").InsertMany(ctx, videos); err != nil {
		return fmt.Errorf("seed videos: %w", err)
	}
	if _, err := db.Collection("playlists").InsertMany(ctx, playlists); err != nil {
		return fmt.Errorf("seed playlists: %w", err)
	}

	logger.GetLogger().WithFields(map[string]interface{}{
		"users":     len(users),
		"channels":  len(channels),
		"videos":    len(videos),
		"playlists": len(playlists),
	}).Info("Demo data seeded")
	return nil
}
