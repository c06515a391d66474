package usecase

import (
	"context"
	"io"

	"vidhub/domain/dto"
	"vidhub/domain/model"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/v2/bson"
)

type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) Create(ctx context.Context, user model.User) (model.User, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *mockUserRepo) GetByID(ctx context.Context, id bson.ObjectID) (model.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (model.User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *mockUserRepo) GetSlimByIDs(ctx context.Context, ids []bson.ObjectID) ([]model.UserSlim, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).([]model.UserSlim), args.Error(1)
}

func (m *mockUserRepo) UpdatePassword(ctx context.Context, id bson.ObjectID, hash string) error {
	return m.Called(ctx, id, hash).Error(0)
}

func (m *mockUserRepo) AppendChannel(ctx context.Context, userID, channelID bson.ObjectID) error {
	return m.Called(ctx, userID, channelID).Error(0)
}

func (m *mockUserRepo) RemoveChannel(ctx context.Context, userID, channelID bson.ObjectID) error {
	return m.Called(ctx, userID, channelID).Error(0)
}

func (m *mockUserRepo) SetDefaultChannelIfUnset(ctx context.Context, userID bson.ObjectID, channelPublicID string) error {
	return m.Called(ctx, userID, channelPublicID).Error(0)
}

func (m *mockUserRepo) SetDefaultChannel(ctx context.Context, userID bson.ObjectID, channelPublicID *string) error {
	return m.Called(ctx, userID, channelPublicID).Error(0)
}

func (m *mockUserRepo) AppendUploadedVideo(ctx context.Context, userID, videoID bson.ObjectID) error {
	return m.Called(ctx, userID, videoID).Error(0)
}

func (m *mockUserRepo) PullUploadedVideos(ctx context.Context, userID bson.ObjectID, videoIDs []bson.ObjectID) error {
	return m.Called(ctx, userID, videoIDs).Error(0)
}

func (m *mockUserRepo) AddSubscription(ctx context.Context, userID, channelID bson.ObjectID) error {
	return m.Called(ctx, userID, channelID).Error(0)
}

func (m *mockUserRepo) RemoveSubscription(ctx context.Context, userID, channelID bson.ObjectID) error {
	return m.Called(ctx, userID, channelID).Error(0)
}

func (m *mockUserRepo) AddLikedVideo(ctx context.Context, userID, videoID bson.ObjectID) error {
	return m.Called(ctx, userID, videoID).Error(0)
}

func (m *mockUserRepo) RemoveLikedVideo(ctx context.Context, userID, videoID bson.ObjectID) error {
	return m.Called(ctx, userID, videoID).Error(0)
}

func (m *mockUserRepo) AddToHistory(ctx context.Context, userID, videoID bson.ObjectID) (model.User, error) {
	args := m.Called(ctx, userID, videoID)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *mockUserRepo) RemoveFromHistory(ctx context.Context, userID, videoID bson.ObjectID) error {
	return m.Called(ctx, userID, videoID).Error(0)
}

func (m *mockUserRepo) ClearHistory(ctx context.Context, userID bson.ObjectID) error {
	return m.Called(ctx, userID).Error(0)
}

func (m *mockUserRepo) AddWatchLater(ctx context.Context, userID, videoID bson.ObjectID) error {
	return m.Called(ctx, userID, videoID).Error(0)
}

func (m *mockUserRepo) RemoveWatchLater(ctx context.Context, userID, videoID bson.ObjectID) error {
	return m.Called(ctx, userID, videoID).Error(0)
}

func (m *mockUserRepo) AddPlaylist(ctx context.Context, userID, playlistID bson.ObjectID) error {
	return m.Called(ctx, userID, playlistID).Error(0)
}

func (m *mockUserRepo) RemovePlaylist(ctx context.Context, userID, playlistID bson.ObjectID) error {
	return m.Called(ctx, userID, playlistID).Error(0)
}

type mockChannelRepo struct{ mock.Mock }

func (m *mockChannelRepo) Create(ctx context.Context, channel model.Channel) (model.Channel, error) {
	args := m.Called(ctx, channel)
	return args.Get(0).(model.Channel), args.Error(1)
}

func (m *mockChannelRepo) GetByID(ctx context.Context, id bson.ObjectID) (model.Channel, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Channel), args.Error(1)
}

func (m *mockChannelRepo) GetByPublicID(ctx context.Context, channelID string) (model.Channel, error) {
	args := m.Called(ctx, channelID)
	return args.Get(0).(model.Channel), args.Error(1)
}

func (m *mockChannelRepo) GetByIDs(ctx context.Context, ids []bson.ObjectID) ([]model.Channel, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).([]model.Channel), args.Error(1)
}

func (m *mockChannelRepo) GetByOwner(ctx context.Context, owner bson.ObjectID) ([]model.Channel, error) {
	args := m.Called(ctx, owner)
	return args.Get(0).([]model.Channel), args.Error(1)
}

func (m *mockChannelRepo) GetBySubscriber(ctx context.Context, userID bson.ObjectID) ([]model.Channel, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]model.Channel), args.Error(1)
}

func (m *mockChannelRepo) UpdateDetails(ctx context.Context, id bson.ObjectID, channelName, description, banner, image string) error {
	return m.Called(ctx, id, channelName, description, banner, image).Error(0)
}

func (m *mockChannelRepo) Delete(ctx context.Context, id bson.ObjectID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockChannelRepo) AddSubscriber(ctx context.Context, channelID, userID bson.ObjectID) (int, error) {
	args := m.Called(ctx, channelID, userID)
	return args.Int(0), args.Error(1)
}

func (m *mockChannelRepo) RemoveSubscriber(ctx context.Context, channelID, userID bson.ObjectID) (int, error) {
	args := m.Called(ctx, channelID, userID)
	return args.Int(0), args.Error(1)
}

func (m *mockChannelRepo) AddVideo(ctx context.Context, channelID, videoID bson.ObjectID) error {
	return m.Called(ctx, channelID, videoID).Error(0)
}

func (m *mockChannelRepo) RemoveVideo(ctx context.Context, channelID, videoID bson.ObjectID) error {
	return m.Called(ctx, channelID, videoID).Error(0)
}

type mockVideoRepo struct{ mock.Mock }

func (m *mockVideoRepo) Create(ctx context.Context, video model.Video) (model.Video, error) {
	args := m.Called(ctx, video)
	return args.Get(0).(model.Video), args.Error(1)
}

func (m *mockVideoRepo) GetByID(ctx context.Context, id bson.ObjectID) (model.Video, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Video), args.Error(1)
}

func (m *mockVideoRepo) GetByPublicID(ctx context.Context, videoID string) (model.Video, error) {
	args := m.Called(ctx, videoID)
	return args.Get(0).(model.Video), args.Error(1)
}

func (m *mockVideoRepo) GetAll(ctx context.Context) ([]model.Video, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.Video), args.Error(1)
}

func (m *mockVideoRepo) GetByIDs(ctx context.Context, ids []bson.ObjectID) ([]model.Video, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).([]model.Video), args.Error(1)
}

func (m *mockVideoRepo) GetSlimByIDs(ctx context.Context, ids []bson.ObjectID) ([]model.VideoSlim, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).([]model.VideoSlim), args.Error(1)
}

func (m *mockVideoRepo) FindByChannelPublicID(ctx context.Context, channelID string) ([]model.Video, error) {
	args := m.Called(ctx, channelID)
	return args.Get(0).([]model.Video), args.Error(1)
}

func (m *mockVideoRepo) SearchByTitle(ctx context.Context, query string, limit int64) ([]model.Video, error) {
	args := m.Called(ctx, query, limit)
	return args.Get(0).([]model.Video), args.Error(1)
}

func (m *mockVideoRepo) UpdateDetails(ctx context.Context, id bson.ObjectID, title, description *string) (model.Video, error) {
	args := m.Called(ctx, id, title, description)
	return args.Get(0).(model.Video), args.Error(1)
}

func (m *mockVideoRepo) Delete(ctx context.Context, id bson.ObjectID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockVideoRepo) DeleteByIDs(ctx context.Context, ids []bson.ObjectID) error {
	return m.Called(ctx, ids).Error(0)
}

func (m *mockVideoRepo) AddLike(ctx context.Context, videoID, userID bson.ObjectID) error {
	return m.Called(ctx, videoID, userID).Error(0)
}

func (m *mockVideoRepo) RemoveLike(ctx context.Context, videoID, userID bson.ObjectID) error {
	return m.Called(ctx, videoID, userID).Error(0)
}

func (m *mockVideoRepo) AddDislike(ctx context.Context, videoID, userID bson.ObjectID) error {
	return m.Called(ctx, videoID, userID).Error(0)
}

func (m *mockVideoRepo) RemoveDislike(ctx context.Context, videoID, userID bson.ObjectID) error {
	return m.Called(ctx, videoID, userID).Error(0)
}

func (m *mockVideoRepo) AddView(ctx context.Context, videoPublicID string, userID bson.ObjectID) (model.Video, error) {
	args := m.Called(ctx, videoPublicID, userID)
	return args.Get(0).(model.Video), args.Error(1)
}

func (m *mockVideoRepo) PushComment(ctx context.Context, videoPublicID string, comment model.Comment) (model.Video, error) {
	args := m.Called(ctx, videoPublicID, comment)
	return args.Get(0).(model.Video), args.Error(1)
}

func (m *mockVideoRepo) PullComment(ctx context.Context, videoPublicID, commentID string) (model.Video, error) {
	args := m.Called(ctx, videoPublicID, commentID)
	return args.Get(0).(model.Video), args.Error(1)
}

type mockPlaylistRepo struct{ mock.Mock }

func (m *mockPlaylistRepo) Create(ctx context.Context, playlist model.Playlist) (model.Playlist, error) {
	args := m.Called(ctx, playlist)
	return args.Get(0).(model.Playlist), args.Error(1)
}

func (m *mockPlaylistRepo) GetByID(ctx context.Context, id bson.ObjectID) (model.Playlist, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Playlist), args.Error(1)
}

func (m *mockPlaylistRepo) GetByIDs(ctx context.Context, ids []bson.ObjectID) ([]model.Playlist, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).([]model.Playlist), args.Error(1)
}

func (m *mockPlaylistRepo) GetByNameAndOwner(ctx context.Context, name string, owner bson.ObjectID) (model.Playlist, error) {
	args := m.Called(ctx, name, owner)
	return args.Get(0).(model.Playlist), args.Error(1)
}

func (m *mockPlaylistRepo) GetByOwner(ctx context.Context, owner bson.ObjectID) ([]model.Playlist, error) {
	args := m.Called(ctx, owner)
	return args.Get(0).([]model.Playlist), args.Error(1)
}

func (m *mockPlaylistRepo) SearchByName(ctx context.Context, query string, limit int64) ([]model.Playlist, error) {
	args := m.Called(ctx, query, limit)
	return args.Get(0).([]model.Playlist), args.Error(1)
}

func (m *mockPlaylistRepo) AddVideo(ctx context.Context, playlistID, videoID bson.ObjectID) error {
	return m.Called(ctx, playlistID, videoID).Error(0)
}

func (m *mockPlaylistRepo) RemoveVideo(ctx context.Context, playlistID, videoID bson.ObjectID) error {
	return m.Called(ctx, playlistID, videoID).Error(0)
}

func (m *mockPlaylistRepo) UpdateDetails(ctx context.Context, id bson.ObjectID, name *string, isPrivate *bool) (model.Playlist, error) {
	args := m.Called(ctx, id, name, isPrivate)
	return args.Get(0).(model.Playlist), args.Error(1)
}

func (m *mockPlaylistRepo) Delete(ctx context.Context, id bson.ObjectID) error {
	return m.Called(ctx, id).Error(0)
}

type mockMediaStore struct{ mock.Mock }

func (m *mockMediaStore) Put(ctx context.Context, objectName string, r io.Reader, size int64, contentType string) (string, error) {
	args := m.Called(ctx, objectName, r, size, contentType)
	return args.String(0), args.Error(1)
}

type mockSuggestionCache struct{ mock.Mock }

func (m *mockSuggestionCache) Get(ctx context.Context, key string) ([]dto.Suggestion, bool) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Bool(1)
	}
	return args.Get(0).([]dto.Suggestion), args.Bool(1)
}

func (m *mockSuggestionCache) Set(ctx context.Context, key string, entries []dto.Suggestion) {
	m.Called(ctx, key, entries)
}
