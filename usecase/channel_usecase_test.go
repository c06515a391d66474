package usecase

import (
	"context"
	"errors"
	"testing"

	"vidhub/domain/dto"
	"vidhub/domain/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func TestChannelCreate_ClaimsDefaultWhenUnset(t *testing.T) {
	ctx := context.Background()
	owner := bson.NewObjectID()
	channelID := bson.NewObjectID()

	userRepo := new(mockUserRepo)
	channelRepo := new(mockChannelRepo)

	userRepo.On("GetByID", ctx, owner).Return(model.User{ID: owner}, nil)
	channelRepo.On("Create", ctx, mock.MatchedBy(func(ch model.Channel) bool {
		return ch.Owner == owner && ch.ChannelName == "Gardening" && ch.ChannelID != ""
	})).Return(model.Channel{ID: channelID, ChannelID: "pub-1", ChannelName: "Gardening", Owner: owner}, nil)
	userRepo.On("AppendChannel", ctx, owner, channelID).Return(nil)
	userRepo.On("SetDefaultChannelIfUnset", ctx, owner, "pub-1").Return(nil)

	uc := NewChannelUsecase(channelRepo, userRepo, new(mockVideoRepo), nil)
	channel, err := uc.Create(ctx, owner, dto.ReqCreateChannel{ChannelName: "Gardening", Handle: "@gardening"})

	require.NoError(t, err)
	assert.Equal(t, "pub-1", channel.ChannelID)
	userRepo.AssertExpectations(t)
	channelRepo.AssertExpectations(t)
}

func TestChannelCreate_RegistrationFailureIsIntegrityFault(t *testing.T) {
	ctx := context.Background()
	owner := bson.NewObjectID()
	channelID := bson.NewObjectID()

	userRepo := new(mockUserRepo)
	channelRepo := new(mockChannelRepo)

	userRepo.On("GetByID", ctx, owner).Return(model.User{ID: owner}, nil)
	channelRepo.On("Create", ctx, mock.Anything).
		Return(model.Channel{ID: channelID, ChannelID: "pub-1", Owner: owner}, nil)
	userRepo.On("AppendChannel", ctx, owner, channelID).Return(errors.New("write failed"))

	uc := NewChannelUsecase(channelRepo, userRepo, new(mockVideoRepo), nil)
	_, err := uc.Create(ctx, owner, dto.ReqCreateChannel{ChannelName: "Gardening"})

	var integrity *model.IntegrityError
	require.ErrorAs(t, err, &integrity)
	assert.Equal(t, "channel.create", integrity.Op)
	assert.Equal(t, []string{"insert channel"}, integrity.Completed)
}

func TestSubscribe_AlreadySubscribedIsConflict(t *testing.T) {
	ctx := context.Background()
	userID := bson.NewObjectID()
	channelObjID := bson.NewObjectID()

	userRepo := new(mockUserRepo)
	channelRepo := new(mockChannelRepo)

	channelRepo.On("GetByPublicID", ctx, "pub-1").
		Return(model.Channel{ID: channelObjID, ChannelID: "pub-1"}, nil)
	userRepo.On("GetByID", ctx, userID).
		Return(model.User{ID: userID, Subscriptions: []bson.ObjectID{channelObjID}}, nil)

	uc := NewChannelUsecase(channelRepo, userRepo, new(mockVideoRepo), nil)
	_, err := uc.Subscribe(ctx, userID, "pub-1")

	assert.ErrorIs(t, err, model.ErrConflict)
	channelRepo.AssertNotCalled(t, "AddSubscriber", mock.Anything, mock.Anything, mock.Anything)
}

func TestSubscribe_UpdatesBothSidesAndReturnsCount(t *testing.T) {
	ctx := context.Background()
	userID := bson.NewObjectID()
	channelObjID := bson.NewObjectID()

	userRepo := new(mockUserRepo)
	channelRepo := new(mockChannelRepo)

	channelRepo.On("GetByPublicID", ctx, "pub-1").
		Return(model.Channel{ID: channelObjID, ChannelID: "pub-1"}, nil)
	userRepo.On("GetByID", ctx, userID).Return(model.User{ID: userID}, nil)
	channelRepo.On("AddSubscriber", ctx, channelObjID, userID).Return(4, nil)
	userRepo.On("AddSubscription", ctx, userID, channelObjID).Return(nil)

	uc := NewChannelUsecase(channelRepo, userRepo, new(mockVideoRepo), nil)
	count, err := uc.Subscribe(ctx, userID, "pub-1")

	require.NoError(t, err)
	assert.Equal(t, 4, count)
	userRepo.AssertExpectations(t)
	channelRepo.AssertExpectations(t)
}

func TestUnsubscribe_NotSubscribedIsConflict(t *testing.T) {
	ctx := context.Background()
	userID := bson.NewObjectID()
	channelObjID := bson.NewObjectID()

	userRepo := new(mockUserRepo)
	channelRepo := new(mockChannelRepo)

	channelRepo.On("GetByPublicID", ctx, "pub-1").
		Return(model.Channel{ID: channelObjID}, nil)
	userRepo.On("GetByID", ctx, userID).Return(model.User{ID: userID}, nil)

	uc := NewChannelUsecase(channelRepo, userRepo, new(mockVideoRepo), nil)
	_, err := uc.Unsubscribe(ctx, userID, "pub-1")

	assert.ErrorIs(t, err, model.ErrConflict)
}

func TestSubscribe_ChannelGoneBeforeUpdateIsNotFound(t *testing.T) {
	ctx := context.Background()
	userID := bson.NewObjectID()
	channelObjID := bson.NewObjectID()

	userRepo := new(mockUserRepo)
	channelRepo := new(mockChannelRepo)

	channelRepo.On("GetByPublicID", ctx, "pub-1").
		Return(model.Channel{ID: channelObjID, ChannelID: "pub-1"}, nil)
	userRepo.On("GetByID", ctx, userID).Return(model.User{ID: userID}, nil)
	// Channel deleted between the pre-check and the guarded update.
	channelRepo.On("AddSubscriber", ctx, channelObjID, userID).Return(0, model.ErrNotFound)

	uc := NewChannelUsecase(channelRepo, userRepo, new(mockVideoRepo), nil)
	_, err := uc.Subscribe(ctx, userID, "pub-1")

	assert.ErrorIs(t, err, model.ErrNotFound)
	assert.NotErrorIs(t, err, model.ErrConflict)
	userRepo.AssertNotCalled(t, "AddSubscription", mock.Anything, mock.Anything, mock.Anything)
}

func TestChannelUpdate_NonOwnerForbidden(t *testing.T) {
	ctx := context.Background()
	owner := bson.NewObjectID()
	intruder := bson.NewObjectID()

	channelRepo := new(mockChannelRepo)
	channelRepo.On("GetByPublicID", ctx, "pub-1").
		Return(model.Channel{ID: bson.NewObjectID(), ChannelID: "pub-1", Owner: owner}, nil)

	uc := NewChannelUsecase(channelRepo, new(mockUserRepo), new(mockVideoRepo), nil)
	_, err := uc.Update(ctx, intruder, "pub-1", dto.ReqUpdateChannel{ChannelName: "Hijacked"})

	assert.ErrorIs(t, err, model.ErrForbidden)
	channelRepo.AssertNotCalled(t, "UpdateDetails",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestChannelDelete_NonOwnerForbidden(t *testing.T) {
	ctx := context.Background()
	owner := bson.NewObjectID()
	intruder := bson.NewObjectID()

	channelRepo := new(mockChannelRepo)
	channelRepo.On("GetByPublicID", ctx, "pub-1").
		Return(model.Channel{ID: bson.NewObjectID(), ChannelID: "pub-1", Owner: owner}, nil)

	uc := NewChannelUsecase(channelRepo, new(mockUserRepo), new(mockVideoRepo), nil)
	_, err := uc.Delete(ctx, intruder, "pub-1")

	assert.ErrorIs(t, err, model.ErrForbidden)
	channelRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestChannelDelete_CascadeReassignsDefault(t *testing.T) {
	ctx := context.Background()
	owner := bson.NewObjectID()
	channelObjID := bson.NewObjectID()
	otherChannelID := bson.NewObjectID()
	videoID := bson.NewObjectID()
	defaultID := "pub-1"
	otherPublic := "pub-2"

	userRepo := new(mockUserRepo)
	channelRepo := new(mockChannelRepo)
	videoRepo := new(mockVideoRepo)

	channelRepo.On("GetByPublicID", ctx, "pub-1").
		Return(model.Channel{ID: channelObjID, ChannelID: "pub-1", Owner: owner}, nil)
	channelRepo.On("Delete", ctx, channelObjID).Return(nil)
	videoRepo.On("FindByChannelPublicID", ctx, "pub-1").
		Return([]model.Video{{ID: videoID, ChannelID: "pub-1"}}, nil)
	videoRepo.On("DeleteByIDs", ctx, []bson.ObjectID{videoID}).Return(nil)
	userRepo.On("PullUploadedVideos", ctx, owner, []bson.ObjectID{videoID}).Return(nil)
	userRepo.On("RemoveChannel", ctx, owner, channelObjID).Return(nil)
	userRepo.On("GetByID", ctx, owner).Return(model.User{
		ID:             owner,
		DefaultChannel: &defaultID,
		Channels:       []bson.ObjectID{otherChannelID},
	}, nil)
	channelRepo.On("GetByIDs", ctx, []bson.ObjectID{otherChannelID}).
		Return([]model.Channel{{ID: otherChannelID, ChannelID: otherPublic}}, nil)
	userRepo.On("SetDefaultChannel", ctx, owner, mock.MatchedBy(func(s *string) bool {
		return s != nil && *s == otherPublic
	})).Return(nil)

	uc := NewChannelUsecase(channelRepo, userRepo, videoRepo, nil)
	result, err := uc.Delete(ctx, owner, "pub-1")

	require.NoError(t, err)
	require.NotNil(t, result.User.DefaultChannel)
	assert.Equal(t, otherPublic, *result.User.DefaultChannel)
	userRepo.AssertExpectations(t)
}

func TestChannelDelete_MidCascadeFailureNamesCompletedSteps(t *testing.T) {
	ctx := context.Background()
	owner := bson.NewObjectID()
	channelObjID := bson.NewObjectID()
	videoID := bson.NewObjectID()

	userRepo := new(mockUserRepo)
	channelRepo := new(mockChannelRepo)
	videoRepo := new(mockVideoRepo)

	channelRepo.On("GetByPublicID", ctx, "pub-1").
		Return(model.Channel{ID: channelObjID, ChannelID: "pub-1", Owner: owner}, nil)
	channelRepo.On("Delete", ctx, channelObjID).Return(nil)
	videoRepo.On("FindByChannelPublicID", ctx, "pub-1").
		Return([]model.Video{{ID: videoID}}, nil)
	videoRepo.On("DeleteByIDs", ctx, []bson.ObjectID{videoID}).Return(nil)
	userRepo.On("PullUploadedVideos", ctx, owner, []bson.ObjectID{videoID}).
		Return(errors.New("write failed"))

	uc := NewChannelUsecase(channelRepo, userRepo, videoRepo, nil)
	_, err := uc.Delete(ctx, owner, "pub-1")

	var integrity *model.IntegrityError
	require.ErrorAs(t, err, &integrity)
	assert.Equal(t, "channel.delete", integrity.Op)
	assert.Equal(t, []string{"delete channel", "delete channel videos"}, integrity.Completed)
}

func TestGetSubscribed_DefaultChannelNarrows(t *testing.T) {
	ctx := context.Background()
	userID := bson.NewObjectID()
	subscriberID := bson.NewObjectID()
	channelObjID := bson.NewObjectID()
	defaultID := "pub-1"

	userRepo := new(mockUserRepo)
	channelRepo := new(mockChannelRepo)

	userRepo.On("GetByID", ctx, userID).Return(model.User{
		ID:             userID,
		DefaultChannel: &defaultID,
		Subscriptions:  []bson.ObjectID{bson.NewObjectID(), bson.NewObjectID()},
	}, nil)
	channelRepo.On("GetByPublicID", ctx, "pub-1").Return(model.Channel{
		ID:              channelObjID,
		ChannelID:       "pub-1",
		SubscribersList: []bson.ObjectID{subscriberID},
	}, nil)
	userRepo.On("GetSlimByIDs", ctx, []bson.ObjectID{subscriberID}).
		Return([]model.UserSlim{{ID: subscriberID, Username: "Sam"}}, nil)

	uc := NewChannelUsecase(channelRepo, userRepo, new(mockVideoRepo), nil)
	channels, err := uc.GetSubscribed(ctx, userID)

	require.NoError(t, err)
	require.Len(t, channels, 1)
	assert.Equal(t, "pub-1", channels[0].ChannelID)
	require.Len(t, channels[0].Subscribers, 1)
	assert.Equal(t, "Sam", channels[0].Subscribers[0].Username)
	channelRepo.AssertNotCalled(t, "GetBySubscriber", mock.Anything, mock.Anything)
}

func TestGetSubscribed_MissingDefaultChannelIsIntegrityFault(t *testing.T) {
	ctx := context.Background()
	userID := bson.NewObjectID()
	defaultID := "gone"

	userRepo := new(mockUserRepo)
	channelRepo := new(mockChannelRepo)

	userRepo.On("GetByID", ctx, userID).
		Return(model.User{ID: userID, DefaultChannel: &defaultID}, nil)
	channelRepo.On("GetByPublicID", ctx, "gone").
		Return(model.Channel{}, model.ErrNotFound)

	uc := NewChannelUsecase(channelRepo, userRepo, new(mockVideoRepo), nil)
	_, err := uc.GetSubscribed(ctx, userID)

	var integrity *model.IntegrityError
	require.ErrorAs(t, err, &integrity)
	assert.Equal(t, "channel.subscriptions", integrity.Op)
}

func TestGetSubscribed_NoDefaultReturnsSlimList(t *testing.T) {
	ctx := context.Background()
	userID := bson.NewObjectID()
	channelObjID := bson.NewObjectID()

	userRepo := new(mockUserRepo)
	channelRepo := new(mockChannelRepo)

	userRepo.On("GetByID", ctx, userID).Return(model.User{ID: userID}, nil)
	channelRepo.On("GetBySubscriber", ctx, userID).Return([]model.Channel{
		{ID: channelObjID, ChannelName: "Cooking", ChannelImage: "img.png"},
	}, nil)

	uc := NewChannelUsecase(channelRepo, userRepo, new(mockVideoRepo), nil)
	channels, err := uc.GetSubscribed(ctx, userID)

	require.NoError(t, err)
	require.Len(t, channels, 1)
	assert.Equal(t, "Cooking", channels[0].ChannelName)
	assert.Empty(t, channels[0].Subscribers)
}
