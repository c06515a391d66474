package usecase

import (
	"context"
	"errors"
	"fmt"

	"vidhub/domain/dto"
	"vidhub/domain/model"
	"vidhub/domain/repository"
	"vidhub/infrastructure/logger"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/bson"
)

type IChannelUsecase interface {
	Create(ctx context.Context, owner bson.ObjectID, req dto.ReqCreateChannel) (model.Channel, error)
	Get(ctx context.Context, channelPublicID string) (dto.ChannelDetail, error)
	Update(ctx context.Context, caller bson.ObjectID, channelPublicID string, req dto.ReqUpdateChannel) (dto.ChannelUpdateResult, error)
	GetMine(ctx context.Context, owner bson.ObjectID) ([]model.Channel, error)
	Delete(ctx context.Context, caller bson.ObjectID, channelPublicID string) (dto.UserWithChannels, error)
	Subscribe(ctx context.Context, userID bson.ObjectID, channelPublicID string) (int, error)
	Unsubscribe(ctx context.Context, userID bson.ObjectID, channelPublicID string) (int, error)
	GetSubscribed(ctx context.Context, userID bson.ObjectID) ([]dto.SubscribedChannel, error)
}

type ChannelUsecase struct {
	channelRepo repository.IChannel
	userRepo    repository.IUser
	videoRepo   repository.IVideo
	mediaStore  repository.IMediaStore
}

func NewChannelUsecase(
	channelRepo repository.IChannel,
	userRepo repository.IUser,
	videoRepo repository.IVideo,
	mediaStore repository.IMediaStore,
) IChannelUsecase {
	return &ChannelUsecase{
		channelRepo: channelRepo,
		userRepo:    userRepo,
		videoRepo:   videoRepo,
		mediaStore:  mediaStore,
	}
}

// Create allocates a channel with a fresh public identifier and registers it
// on the owner: append to channels, and claim defaultChannel when none is
// set. Steps after the insert are reported as integrity faults on failure.
func (u *ChannelUsecase) Create(ctx context.Context, owner bson.ObjectID, req dto.ReqCreateChannel) (model.Channel, error) {
	// An authenticated caller without a user document is an integrity fault
	// upstream; here it fails the whole operation before any write.
	if _, err := u.userRepo.GetByID(ctx, owner); err != nil {
		return model.Channel{}, err
	}

	bannerURL, err := uploadMedia(ctx, u.mediaStore, "channels", req.ChannelBanner)
	if err != nil {
		return model.Channel{}, err
	}
	imageURL, err := uploadMedia(ctx, u.mediaStore, "channels", req.ChannelImage)
	if err != nil {
		return model.Channel{}, err
	}

	channel, err := u.channelRepo.Create(ctx, model.Channel{
		ChannelID:     uuid.NewString(),
		ChannelName:   req.ChannelName,
		Handle:        req.Handle,
		Description:   req.Description,
		ChannelBanner: bannerURL,
		ChannelImage:  imageURL,
		Owner:         owner,
	})
	if err != nil {
		return model.Channel{}, err
	}

	if err := u.userRepo.AppendChannel(ctx, owner, channel.ID); err != nil {
		return model.Channel{}, &model.IntegrityError{
			Op:        "channel.create",
			Completed: []string{"insert channel"},
			Err:       err,
		}
	}
	if err := u.userRepo.SetDefaultChannelIfUnset(ctx, owner, channel.ChannelID); err != nil {
		return model.Channel{}, &model.IntegrityError{
			Op:        "channel.create",
			Completed: []string{"insert channel", "append to owner channels"},
			Err:       err,
		}
	}
	return channel, nil
}

func (u *ChannelUsecase) Get(ctx context.Context, channelPublicID string) (dto.ChannelDetail, error) {
	channel, err := u.channelRepo.GetByPublicID(ctx, channelPublicID)
	if err != nil {
		return dto.ChannelDetail{}, err
	}
	videos, err := u.videoRepo.GetByIDs(ctx, channel.Videos)
	if err != nil {
		return dto.ChannelDetail{}, err
	}
	return dto.ChannelDetail{Channel: channel, VideoList: videos}, nil
}

func (u *ChannelUsecase) Update(ctx context.Context, caller bson.ObjectID, channelPublicID string, req dto.ReqUpdateChannel) (dto.ChannelUpdateResult, error) {
	channel, err := u.channelRepo.GetByPublicID(ctx, channelPublicID)
	if err != nil {
		return dto.ChannelUpdateResult{}, err
	}
	if channel.Owner != caller {
		return dto.ChannelUpdateResult{}, fmt.Errorf("caller does not own channel: %w", model.ErrForbidden)
	}

	bannerURL, err := uploadMedia(ctx, u.mediaStore, "channels", req.ChannelBanner)
	if err != nil {
		return dto.ChannelUpdateResult{}, err
	}
	imageURL, err := uploadMedia(ctx, u.mediaStore, "channels", req.ChannelImage)
	if err != nil {
		return dto.ChannelUpdateResult{}, err
	}

	if err := u.channelRepo.UpdateDetails(ctx, channel.ID, req.ChannelName, req.Description, bannerURL, imageURL); err != nil {
		return dto.ChannelUpdateResult{}, err
	}
	channel, err = u.channelRepo.GetByID(ctx, channel.ID)
	if err != nil {
		return dto.ChannelUpdateResult{}, err
	}

	owner, err := u.userRepo.GetByID(ctx, channel.Owner)
	if err != nil {
		return dto.ChannelUpdateResult{}, err
	}
	ownerChannels, err := u.channelRepo.GetByIDs(ctx, owner.Channels)
	if err != nil {
		return dto.ChannelUpdateResult{}, err
	}
	return dto.ChannelUpdateResult{
		Channel: channel,
		User:    dto.UserWithChannels{User: owner, Channels: ownerChannels},
	}, nil
}

func (u *ChannelUsecase) GetMine(ctx context.Context, owner bson.ObjectID) ([]model.Channel, error) {
	return u.channelRepo.GetByOwner(ctx, owner)
}

// Delete runs the channel-deletion cascade in fixed order: delete channel,
// delete its videos, prune the owner's uploadedVideos, unlink the channel,
// then reassign defaultChannel. There is no transaction; a failure partway
// surfaces as an IntegrityError naming the completed steps.
func (u *ChannelUsecase) Delete(ctx context.Context, caller bson.ObjectID, channelPublicID string) (dto.UserWithChannels, error) {
	channel, err := u.channelRepo.GetByPublicID(ctx, channelPublicID)
	if err != nil {
		return dto.UserWithChannels{}, err
	}
	if channel.Owner != caller {
		return dto.UserWithChannels{}, fmt.Errorf("caller does not own channel: %w", model.ErrForbidden)
	}

	completed := []string{}
	fault := func(err error) error {
		return &model.IntegrityError{Op: "channel.delete", Completed: completed, Err: err}
	}

	if err := u.channelRepo.Delete(ctx, channel.ID); err != nil {
		return dto.UserWithChannels{}, fault(err)
	}
	completed = append(completed, "delete channel")

	videos, err := u.videoRepo.FindByChannelPublicID(ctx, channelPublicID)
	if err != nil {
		return dto.UserWithChannels{}, fault(err)
	}
	videoIDs := make([]bson.ObjectID, 0, len(videos))
	for _, v := range videos {
		videoIDs = append(videoIDs, v.ID)
	}
	if err := u.videoRepo.DeleteByIDs(ctx, videoIDs); err != nil {
		return dto.UserWithChannels{}, fault(err)
	}
	completed = append(completed, "delete channel videos")

	if err := u.userRepo.PullUploadedVideos(ctx, caller, videoIDs); err != nil {
		return dto.UserWithChannels{}, fault(err)
	}
	completed = append(completed, "prune uploadedVideos")

	if err := u.userRepo.RemoveChannel(ctx, caller, channel.ID); err != nil {
		return dto.UserWithChannels{}, fault(err)
	}
	completed = append(completed, "unlink channel from owner")

	user, err := u.userRepo.GetByID(ctx, caller)
	if err != nil {
		return dto.UserWithChannels{}, fault(err)
	}
	remaining, err := u.channelRepo.GetByIDs(ctx, user.Channels)
	if err != nil {
		return dto.UserWithChannels{}, fault(err)
	}

	if user.DefaultChannel != nil && *user.DefaultChannel == channelPublicID {
		var next *string
		if len(remaining) > 0 {
			next = &remaining[0].ChannelID
		}
		if err := u.userRepo.SetDefaultChannel(ctx, caller, next); err != nil {
			return dto.UserWithChannels{}, fault(err)
		}
		user.DefaultChannel = next
	}

	logger.GetLogger().WithFields(map[string]interface{}{
		"channel_id":     channelPublicID,
		"videos_removed": len(videoIDs),
	}).Info("Channel cascade complete")
	return dto.UserWithChannels{User: user, Channels: remaining}, nil
}

// Subscribe validates before mutating: missing channel or user aborts with
// no effect, an existing subscription is a Conflict. Both sides then update
// with atomic operators; the channel side recomputes the cached count from
// the list inside the same store update.
func (u *ChannelUsecase) Subscribe(ctx context.Context, userID bson.ObjectID, channelPublicID string) (int, error) {
	channel, err := u.channelRepo.GetByPublicID(ctx, channelPublicID)
	if err != nil {
		return 0, err
	}
	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return 0, err
	}
	if model.ContainsID(user.Subscriptions, channel.ID) {
		return 0, fmt.Errorf("already subscribed: %w", model.ErrConflict)
	}

	count, err := u.channelRepo.AddSubscriber(ctx, channel.ID, userID)
	if err != nil {
		return 0, err
	}
	if err := u.userRepo.AddSubscription(ctx, userID, channel.ID); err != nil {
		return 0, &model.IntegrityError{
			Op:        "channel.subscribe",
			Completed: []string{"add to subscribersList"},
			Err:       err,
		}
	}
	return count, nil
}

func (u *ChannelUsecase) Unsubscribe(ctx context.Context, userID bson.ObjectID, channelPublicID string) (int, error) {
	channel, err := u.channelRepo.GetByPublicID(ctx, channelPublicID)
	if err != nil {
		return 0, err
	}
	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return 0, err
	}
	if !model.ContainsID(user.Subscriptions, channel.ID) {
		return 0, fmt.Errorf("not subscribed: %w", model.ErrConflict)
	}

	count, err := u.channelRepo.RemoveSubscriber(ctx, channel.ID, userID)
	if err != nil {
		return 0, err
	}
	if err := u.userRepo.RemoveSubscription(ctx, userID, channel.ID); err != nil {
		return 0, &model.IntegrityError{
			Op:        "channel.unsubscribe",
			Completed: []string{"remove from subscribersList"},
			Err:       err,
		}
	}
	return count, nil
}

// GetSubscribed narrows to the default channel when one is set: the caller
// sees only that channel, with subscribers dereferenced, regardless of other
// subscriptions. Only without a default channel does the full subscription
// set come back, as a slim projection.
func (u *ChannelUsecase) GetSubscribed(ctx context.Context, userID bson.ObjectID) ([]dto.SubscribedChannel, error) {
	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if user.DefaultChannel != nil {
		channel, err := u.channelRepo.GetByPublicID(ctx, *user.DefaultChannel)
		if err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return nil, &model.IntegrityError{
					Op:  "channel.subscriptions",
					Err: fmt.Errorf("default channel %s does not exist", *user.DefaultChannel),
				}
			}
			return nil, err
		}
		subscribers, err := u.userRepo.GetSlimByIDs(ctx, channel.SubscribersList)
		if err != nil {
			return nil, err
		}
		return []dto.SubscribedChannel{{
			ID:          channel.ID,
			ChannelID:   channel.ChannelID,
			Subscribers: subscribers,
		}}, nil
	}

	channels, err := u.channelRepo.GetBySubscriber(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SubscribedChannel, 0, len(channels))
	for _, ch := range channels {
		out = append(out, dto.SubscribedChannel{
			ID:           ch.ID,
			ChannelName:  ch.ChannelName,
			ChannelImage: ch.ChannelImage,
		})
	}
	return out, nil
}
