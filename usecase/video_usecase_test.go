package usecase

import (
	"context"
	"testing"
	"time"

	"vidhub/domain/dto"
	"vidhub/domain/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func TestToggleLike_SetMirrorsIntoLikedVideos(t *testing.T) {
	ctx := context.Background()
	userID := bson.NewObjectID()
	videoObjID := bson.NewObjectID()

	videoRepo := new(mockVideoRepo)
	userRepo := new(mockUserRepo)

	videoRepo.On("GetByPublicID", ctx, "vid-1").
		Return(model.Video{ID: videoObjID, VideoID: "vid-1"}, nil)
	videoRepo.On("AddLike", ctx, videoObjID, userID).Return(nil)
	userRepo.On("AddLikedVideo", ctx, userID, videoObjID).Return(nil)
	videoRepo.On("GetByID", ctx, videoObjID).Return(model.Video{
		ID:    videoObjID,
		Likes: []bson.ObjectID{userID},
	}, nil)

	uc := NewVideoUsecase(videoRepo, new(mockChannelRepo), userRepo, nil)
	status, err := uc.ToggleLike(ctx, userID, "vid-1")

	require.NoError(t, err)
	assert.Equal(t, []bson.ObjectID{userID}, status.Likes)
	assert.Empty(t, status.Dislikes)
	userRepo.AssertExpectations(t)
}

func TestToggleLike_ClearRemovesMirror(t *testing.T) {
	ctx := context.Background()
	userID := bson.NewObjectID()
	videoObjID := bson.NewObjectID()

	videoRepo := new(mockVideoRepo)
	userRepo := new(mockUserRepo)

	videoRepo.On("GetByPublicID", ctx, "vid-1").Return(model.Video{
		ID:      videoObjID,
		VideoID: "vid-1",
		Likes:   []bson.ObjectID{userID},
	}, nil)
	videoRepo.On("RemoveLike", ctx, videoObjID, userID).Return(nil)
	userRepo.On("RemoveLikedVideo", ctx, userID, videoObjID).Return(nil)
	videoRepo.On("GetByID", ctx, videoObjID).Return(model.Video{ID: videoObjID}, nil)

	uc := NewVideoUsecase(videoRepo, new(mockChannelRepo), userRepo, nil)
	status, err := uc.ToggleLike(ctx, userID, "vid-1")

	require.NoError(t, err)
	assert.Empty(t, status.Likes)
	userRepo.AssertExpectations(t)
}

func TestToggleDislike_SetClearsLikeMirror(t *testing.T) {
	ctx := context.Background()
	userID := bson.NewObjectID()
	videoObjID := bson.NewObjectID()

	videoRepo := new(mockVideoRepo)
	userRepo := new(mockUserRepo)

	videoRepo.On("GetByPublicID", ctx, "vid-1").Return(model.Video{
		ID:      videoObjID,
		VideoID: "vid-1",
		Likes:   []bson.ObjectID{userID},
	}, nil)
	videoRepo.On("AddDislike", ctx, videoObjID, userID).Return(nil)
	userRepo.On("RemoveLikedVideo", ctx, userID, videoObjID).Return(nil)
	videoRepo.On("GetByID", ctx, videoObjID).Return(model.Video{
		ID:       videoObjID,
		Dislikes: []bson.ObjectID{userID},
	}, nil)

	uc := NewVideoUsecase(videoRepo, new(mockChannelRepo), userRepo, nil)
	status, err := uc.ToggleDislike(ctx, userID, "vid-1")

	require.NoError(t, err)
	assert.Equal(t, []bson.ObjectID{userID}, status.Dislikes)
	userRepo.AssertExpectations(t)
}

func TestToggleDislike_ClearHasNoUserSideEffect(t *testing.T) {
	ctx := context.Background()
	userID := bson.NewObjectID()
	videoObjID := bson.NewObjectID()

	videoRepo := new(mockVideoRepo)
	userRepo := new(mockUserRepo)

	videoRepo.On("GetByPublicID", ctx, "vid-1").Return(model.Video{
		ID:       videoObjID,
		VideoID:  "vid-1",
		Dislikes: []bson.ObjectID{userID},
	}, nil)
	videoRepo.On("RemoveDislike", ctx, videoObjID, userID).Return(nil)
	videoRepo.On("GetByID", ctx, videoObjID).Return(model.Video{ID: videoObjID}, nil)

	uc := NewVideoUsecase(videoRepo, new(mockChannelRepo), userRepo, nil)
	_, err := uc.ToggleDislike(ctx, userID, "vid-1")

	require.NoError(t, err)
	userRepo.AssertNotCalled(t, "RemoveLikedVideo", mock.Anything, mock.Anything, mock.Anything)
}

func TestVideoUpdate_NonUploaderForbidden(t *testing.T) {
	ctx := context.Background()
	uploader := bson.NewObjectID()
	intruder := bson.NewObjectID()

	videoRepo := new(mockVideoRepo)
	videoRepo.On("GetByPublicID", ctx, "vid-1").
		Return(model.Video{ID: bson.NewObjectID(), Uploader: uploader}, nil)

	uc := NewVideoUsecase(videoRepo, new(mockChannelRepo), new(mockUserRepo), nil)
	title := "New title"
	_, err := uc.Update(ctx, intruder, "vid-1", dto.ReqUpdateVideo{Title: &title})

	assert.ErrorIs(t, err, model.ErrForbidden)
	videoRepo.AssertNotCalled(t, "UpdateDetails", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestVideoDelete_DetachesChannelAndUploader(t *testing.T) {
	ctx := context.Background()
	uploader := bson.NewObjectID()
	videoObjID := bson.NewObjectID()
	channelObjID := bson.NewObjectID()

	videoRepo := new(mockVideoRepo)
	channelRepo := new(mockChannelRepo)
	userRepo := new(mockUserRepo)

	videoRepo.On("GetByPublicID", ctx, "vid-1").Return(model.Video{
		ID:        videoObjID,
		VideoID:   "vid-1",
		ChannelID: "pub-1",
		Uploader:  uploader,
	}, nil)
	videoRepo.On("Delete", ctx, videoObjID).Return(nil)
	channelRepo.On("GetByPublicID", ctx, "pub-1").
		Return(model.Channel{ID: channelObjID, ChannelID: "pub-1"}, nil)
	channelRepo.On("RemoveVideo", ctx, channelObjID, videoObjID).Return(nil)
	userRepo.On("PullUploadedVideos", ctx, uploader, []bson.ObjectID{videoObjID}).Return(nil)

	uc := NewVideoUsecase(videoRepo, channelRepo, userRepo, nil)
	err := uc.Delete(ctx, uploader, "vid-1")

	require.NoError(t, err)
	channelRepo.AssertExpectations(t)
	userRepo.AssertExpectations(t)
}

func TestVideoDelete_MissingChannelTolerated(t *testing.T) {
	ctx := context.Background()
	uploader := bson.NewObjectID()
	videoObjID := bson.NewObjectID()

	videoRepo := new(mockVideoRepo)
	channelRepo := new(mockChannelRepo)
	userRepo := new(mockUserRepo)

	videoRepo.On("GetByPublicID", ctx, "vid-1").Return(model.Video{
		ID:        videoObjID,
		ChannelID: "gone",
		Uploader:  uploader,
	}, nil)
	videoRepo.On("Delete", ctx, videoObjID).Return(nil)
	channelRepo.On("GetByPublicID", ctx, "gone").Return(model.Channel{}, model.ErrNotFound)
	userRepo.On("PullUploadedVideos", ctx, uploader, []bson.ObjectID{videoObjID}).Return(nil)

	uc := NewVideoUsecase(videoRepo, channelRepo, userRepo, nil)
	err := uc.Delete(ctx, uploader, "vid-1")

	require.NoError(t, err)
	channelRepo.AssertNotCalled(t, "RemoveVideo", mock.Anything, mock.Anything, mock.Anything)
}

func TestAddView_ReturnsDistinctViewerCount(t *testing.T) {
	ctx := context.Background()
	userID := bson.NewObjectID()

	videoRepo := new(mockVideoRepo)
	videoRepo.On("AddView", ctx, "vid-1", userID).Return(model.Video{
		Views: []bson.ObjectID{bson.NewObjectID(), userID},
	}, nil)

	uc := NewVideoUsecase(videoRepo, new(mockChannelRepo), new(mockUserRepo), nil)
	views, err := uc.AddView(ctx, userID, "vid-1")

	require.NoError(t, err)
	assert.Equal(t, 2, views)
}

func TestToggleWatchLater_AddsThenRemoves(t *testing.T) {
	ctx := context.Background()
	userID := bson.NewObjectID()
	videoObjID := bson.NewObjectID()

	videoRepo := new(mockVideoRepo)
	userRepo := new(mockUserRepo)

	videoRepo.On("GetByPublicID", ctx, "vid-1").
		Return(model.Video{ID: videoObjID}, nil)
	userRepo.On("GetByID", ctx, userID).
		Return(model.User{ID: userID}, nil).Once()
	userRepo.On("AddWatchLater", ctx, userID, videoObjID).Return(nil)

	uc := NewVideoUsecase(videoRepo, new(mockChannelRepo), userRepo, nil)
	saved, err := uc.ToggleWatchLater(ctx, userID, "vid-1")
	require.NoError(t, err)
	assert.True(t, saved)

	userRepo.On("GetByID", ctx, userID).
		Return(model.User{ID: userID, WatchLater: []bson.ObjectID{videoObjID}}, nil).Once()
	userRepo.On("RemoveWatchLater", ctx, userID, videoObjID).Return(nil)

	saved, err = uc.ToggleWatchLater(ctx, userID, "vid-1")
	require.NoError(t, err)
	assert.False(t, saved)
}

func TestDeleteComment_MissingCommentNotFound(t *testing.T) {
	ctx := context.Background()
	userID := bson.NewObjectID()

	videoRepo := new(mockVideoRepo)
	videoRepo.On("GetByPublicID", ctx, "vid-1").
		Return(model.Video{ID: bson.NewObjectID(), Comments: []model.Comment{}}, nil)

	uc := NewVideoUsecase(videoRepo, new(mockChannelRepo), new(mockUserRepo), nil)
	_, err := uc.DeleteComment(ctx, userID, "vid-1", "missing")

	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestDeleteComment_NonAuthorForbidden(t *testing.T) {
	ctx := context.Background()
	author := bson.NewObjectID()
	intruder := bson.NewObjectID()

	videoRepo := new(mockVideoRepo)
	videoRepo.On("GetByPublicID", ctx, "vid-1").Return(model.Video{
		ID: bson.NewObjectID(),
		Comments: []model.Comment{
			{CommentID: "c-1", UserID: author, Text: "hi"},
		},
	}, nil)

	uc := NewVideoUsecase(videoRepo, new(mockChannelRepo), new(mockUserRepo), nil)
	_, err := uc.DeleteComment(ctx, intruder, "vid-1", "c-1")

	assert.ErrorIs(t, err, model.ErrForbidden)
	videoRepo.AssertNotCalled(t, "PullComment", mock.Anything, mock.Anything, mock.Anything)
}

func TestAddComment_ReturnsPopulatedDetail(t *testing.T) {
	ctx := context.Background()
	userID := bson.NewObjectID()
	uploader := bson.NewObjectID()
	videoObjID := bson.NewObjectID()
	now := time.Now().UTC()

	videoRepo := new(mockVideoRepo)
	userRepo := new(mockUserRepo)

	userRepo.On("GetByID", ctx, userID).Return(model.User{ID: userID}, nil)
	videoRepo.On("PushComment", ctx, "vid-1", mock.MatchedBy(func(c model.Comment) bool {
		return c.UserID == userID && c.Text == "nice" && c.CommentID != ""
	})).Return(model.Video{
		ID:       videoObjID,
		VideoID:  "vid-1",
		Uploader: uploader,
		Comments: []model.Comment{{CommentID: "c-1", UserID: userID, Text: "nice", Timestamp: now}},
	}, nil)
	userRepo.On("GetSlimByIDs", ctx, mock.Anything).Return([]model.UserSlim{
		{ID: uploader, Username: "Uploader"},
		{ID: userID, Username: "Commenter"},
	}, nil)

	uc := NewVideoUsecase(videoRepo, new(mockChannelRepo), userRepo, nil)
	detail, err := uc.AddComment(ctx, userID, "vid-1", "nice")

	require.NoError(t, err)
	require.NotNil(t, detail.UploaderInfo)
	assert.Equal(t, "Uploader", detail.UploaderInfo.Username)
	require.Len(t, detail.CommentList, 1)
	require.NotNil(t, detail.CommentList[0].Author)
	assert.Equal(t, "Commenter", detail.CommentList[0].Author.Username)
}

func TestUpload_DefaultChannelFallback(t *testing.T) {
	ctx := context.Background()
	uploader := bson.NewObjectID()
	channelObjID := bson.NewObjectID()
	videoObjID := bson.NewObjectID()
	defaultID := "pub-1"

	videoRepo := new(mockVideoRepo)
	channelRepo := new(mockChannelRepo)
	userRepo := new(mockUserRepo)

	userRepo.On("GetByID", ctx, uploader).
		Return(model.User{ID: uploader, DefaultChannel: &defaultID}, nil)
	channelRepo.On("GetByPublicID", ctx, "pub-1").
		Return(model.Channel{ID: channelObjID, ChannelID: "pub-1"}, nil)
	videoRepo.On("Create", ctx, mock.MatchedBy(func(v model.Video) bool {
		return v.ChannelID == "pub-1" && v.Uploader == uploader && v.VideoID != ""
	})).Return(model.Video{ID: videoObjID, VideoID: "v-pub", ChannelID: "pub-1"}, nil)
	channelRepo.On("AddVideo", ctx, channelObjID, videoObjID).Return(nil)
	userRepo.On("AppendUploadedVideo", ctx, uploader, videoObjID).Return(nil)

	uc := NewVideoUsecase(videoRepo, channelRepo, userRepo, nil)
	video, err := uc.Upload(ctx, uploader, dto.ReqUploadVideo{Title: "Trip"})

	require.NoError(t, err)
	assert.Equal(t, "pub-1", video.ChannelID)
	channelRepo.AssertExpectations(t)
}

func TestUpload_NoChannelInvalidInput(t *testing.T) {
	ctx := context.Background()
	uploader := bson.NewObjectID()

	userRepo := new(mockUserRepo)
	userRepo.On("GetByID", ctx, uploader).Return(model.User{ID: uploader}, nil)

	uc := NewVideoUsecase(new(mockVideoRepo), new(mockChannelRepo), userRepo, nil)
	_, err := uc.Upload(ctx, uploader, dto.ReqUploadVideo{Title: "Trip"})

	assert.ErrorIs(t, err, model.ErrInvalidInput)
}
