package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"vidhub/domain/dto"
	"vidhub/domain/model"
	"vidhub/domain/repository"
	"vidhub/infrastructure/logger"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/bson"
)

type IVideoUsecase interface {
	Upload(ctx context.Context, uploader bson.ObjectID, req dto.ReqUploadVideo) (model.Video, error)
	GetAll(ctx context.Context) ([]dto.VideoDetail, error)
	Get(ctx context.Context, videoPublicID string) (dto.VideoDetail, error)
	Update(ctx context.Context, caller bson.ObjectID, videoPublicID string, req dto.ReqUpdateVideo) (model.Video, error)
	Delete(ctx context.Context, caller bson.ObjectID, videoPublicID string) error
	ToggleLike(ctx context.Context, userID bson.ObjectID, videoPublicID string) (dto.LikeStatus, error)
	ToggleDislike(ctx context.Context, userID bson.ObjectID, videoPublicID string) (dto.LikeStatus, error)
	AddView(ctx context.Context, userID bson.ObjectID, videoPublicID string) (int, error)
	AddToHistory(ctx context.Context, userID bson.ObjectID, videoPublicID string) ([]bson.ObjectID, error)
	ToggleWatchLater(ctx context.Context, userID bson.ObjectID, videoPublicID string) (bool, error)
	AddComment(ctx context.Context, userID bson.ObjectID, videoPublicID, text string) (dto.VideoDetail, error)
	DeleteComment(ctx context.Context, userID bson.ObjectID, videoPublicID, commentID string) (dto.VideoDetail, error)
}

type VideoUsecase struct {
	videoRepo   repository.IVideo
	channelRepo repository.IChannel
	userRepo    repository.IUser
	mediaStore  repository.IMediaStore
}

func NewVideoUsecase(
	videoRepo repository.IVideo,
	channelRepo repository.IChannel,
	userRepo repository.IUser,
	mediaStore repository.IMediaStore,
) IVideoUsecase {
	return &VideoUsecase{
		videoRepo:   videoRepo,
		channelRepo: channelRepo,
		userRepo:    userRepo,
		mediaStore:  mediaStore,
	}
}

// Upload stores the media, inserts the video, then registers it on the
// channel and the uploader. The target channel must exist before anything is
// written; registration failures after the insert are integrity faults.
func (u *VideoUsecase) Upload(ctx context.Context, uploader bson.ObjectID, req dto.ReqUploadVideo) (model.Video, error) {
	channelPublicID := req.ChannelID
	if channelPublicID == "" {
		user, err := u.userRepo.GetByID(ctx, uploader)
		if err != nil {
			return model.Video{}, err
		}
		if user.DefaultChannel == nil {
			return model.Video{}, fmt.Errorf("no channel to upload to: %w", model.ErrInvalidInput)
		}
		channelPublicID = *user.DefaultChannel
	}
	channel, err := u.channelRepo.GetByPublicID(ctx, channelPublicID)
	if err != nil {
		return model.Video{}, err
	}

	videoURL, err := uploadMedia(ctx, u.mediaStore, "videos", req.Video)
	if err != nil {
		return model.Video{}, err
	}
	thumbnailURL, err := uploadMedia(ctx, u.mediaStore, "thumbnails", req.Thumbnail)
	if err != nil {
		return model.Video{}, err
	}

	now := time.Now().UTC()
	video, err := u.videoRepo.Create(ctx, model.Video{
		VideoID:      uuid.NewString(),
		Title:        req.Title,
		Description:  req.Description,
		ChannelID:    channel.ChannelID,
		Uploader:     uploader,
		VideoURL:     videoURL,
		ThumbnailURL: thumbnailURL,
		Category:     req.Category,
		UploadDate:   now,
		Views:        []bson.ObjectID{},
		Likes:        []bson.ObjectID{},
		Dislikes:     []bson.ObjectID{},
		Comments:     []model.Comment{},
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return model.Video{}, err
	}

	if err := u.channelRepo.AddVideo(ctx, channel.ID, video.ID); err != nil {
		return model.Video{}, &model.IntegrityError{
			Op:        "video.upload",
			Completed: []string{"insert video"},
			Err:       err,
		}
	}
	if err := u.userRepo.AppendUploadedVideo(ctx, uploader, video.ID); err != nil {
		return model.Video{}, &model.IntegrityError{
			Op:        "video.upload",
			Completed: []string{"insert video", "register on channel"},
			Err:       err,
		}
	}

	logger.GetLogger().WithFields(map[string]interface{}{
		"video_id": video.VideoID,
		"channel":  channel.ChannelID,
	}).Info("Video uploaded")
	return video, nil
}

func (u *VideoUsecase) GetAll(ctx context.Context) ([]dto.VideoDetail, error) {
	videos, err := u.videoRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.VideoDetail, 0, len(videos))
	for _, v := range videos {
		detail, err := u.populate(ctx, v)
		if err != nil {
			return nil, err
		}
		out = append(out, detail)
	}
	return out, nil
}

func (u *VideoUsecase) Get(ctx context.Context, videoPublicID string) (dto.VideoDetail, error) {
	video, err := u.videoRepo.GetByPublicID(ctx, videoPublicID)
	if err != nil {
		return dto.VideoDetail{}, err
	}
	return u.populate(ctx, video)
}

// populate dereferences the uploader and each comment's author. A dangling
// author reference leaves the entry with a nil author rather than failing
// the read.
func (u *VideoUsecase) populate(ctx context.Context, video model.Video) (dto.VideoDetail, error) {
	detail := dto.VideoDetail{Video: video}

	ids := make([]bson.ObjectID, 0, len(video.Comments)+1)
	ids = append(ids, video.Uploader)
	for _, c := range video.Comments {
		ids = append(ids, c.UserID)
	}
	authors, err := u.userRepo.GetSlimByIDs(ctx, model.DedupIDs(ids))
	if err != nil {
		return dto.VideoDetail{}, err
	}
	byID := make(map[bson.ObjectID]model.UserSlim, len(authors))
	for _, a := range authors {
		byID[a.ID] = a
	}

	if uploader, ok := byID[video.Uploader]; ok {
		detail.UploaderInfo = &uploader
	}
	detail.CommentList = make([]dto.CommentDetail, 0, len(video.Comments))
	for _, c := range video.Comments {
		entry := dto.CommentDetail{
			CommentID: c.CommentID,
			Text:      c.Text,
			Timestamp: c.Timestamp.Format(time.RFC3339),
		}
		if author, ok := byID[c.UserID]; ok {
			entry.Author = &author
		}
		detail.CommentList = append(detail.CommentList, entry)
	}
	return detail, nil
}

func (u *VideoUsecase) Update(ctx context.Context, caller bson.ObjectID, videoPublicID string, req dto.ReqUpdateVideo) (model.Video, error) {
	video, err := u.videoRepo.GetByPublicID(ctx, videoPublicID)
	if err != nil {
		return model.Video{}, err
	}
	if video.Uploader != caller {
		return model.Video{}, fmt.Errorf("caller did not upload video: %w", model.ErrForbidden)
	}
	return u.videoRepo.UpdateDetails(ctx, video.ID, req.Title, req.Description)
}

// Delete removes the video, then detaches it from the owning channel and the
// uploader's uploadedVideos. Dangling references elsewhere (history,
// watchLater, playlists) are tolerated and skipped at read time.
func (u *VideoUsecase) Delete(ctx context.Context, caller bson.ObjectID, videoPublicID string) error {
	video, err := u.videoRepo.GetByPublicID(ctx, videoPublicID)
	if err != nil {
		return err
	}
	if video.Uploader != caller {
		return fmt.Errorf("caller did not upload video: %w", model.ErrForbidden)
	}

	if err := u.videoRepo.Delete(ctx, video.ID); err != nil {
		return err
	}
	completed := []string{"delete video"}
	fault := func(err error) error {
		return &model.IntegrityError{Op: "video.delete", Completed: completed, Err: err}
	}

	channel, err := u.channelRepo.GetByPublicID(ctx, video.ChannelID)
	switch {
	case err == nil:
		if err := u.channelRepo.RemoveVideo(ctx, channel.ID, video.ID); err != nil {
			return fault(err)
		}
		completed = append(completed, "detach from channel")
	case errors.Is(err, model.ErrNotFound):
		// Channel already gone; nothing to detach.
	default:
		return fault(err)
	}

	if err := u.userRepo.PullUploadedVideos(ctx, caller, []bson.ObjectID{video.ID}); err != nil {
		return fault(err)
	}
	return nil
}

// ToggleLike flips the caller's like. Setting a like clears any dislike in
// the same video update and mirrors into the user's likedVideos; clearing a
// like removes the mirror too.
func (u *VideoUsecase) ToggleLike(ctx context.Context, userID bson.ObjectID, videoPublicID string) (dto.LikeStatus, error) {
	video, err := u.videoRepo.GetByPublicID(ctx, videoPublicID)
	if err != nil {
		return dto.LikeStatus{}, err
	}

	liked := model.ContainsID(video.Likes, userID)
	if liked {
		if err := u.videoRepo.RemoveLike(ctx, video.ID, userID); err != nil {
			return dto.LikeStatus{}, err
		}
		if err := u.userRepo.RemoveLikedVideo(ctx, userID, video.ID); err != nil {
			return dto.LikeStatus{}, &model.IntegrityError{
				Op:        "video.like",
				Completed: []string{"remove like"},
				Err:       err,
			}
		}
	} else {
		if err := u.videoRepo.AddLike(ctx, video.ID, userID); err != nil {
			return dto.LikeStatus{}, err
		}
		if err := u.userRepo.AddLikedVideo(ctx, userID, video.ID); err != nil {
			return dto.LikeStatus{}, &model.IntegrityError{
				Op:        "video.like",
				Completed: []string{"add like"},
				Err:       err,
			}
		}
	}

	video, err = u.videoRepo.GetByID(ctx, video.ID)
	if err != nil {
		return dto.LikeStatus{}, err
	}
	return dto.LikeStatus{Likes: video.Likes, Dislikes: video.Dislikes}, nil
}

// ToggleDislike flips the caller's dislike. Setting one clears any like on
// the video and drops the likedVideos mirror in the same pass so the two
// sides cannot drift. Dislikes themselves have no user-side mirror.
func (u *VideoUsecase) ToggleDislike(ctx context.Context, userID bson.ObjectID, videoPublicID string) (dto.LikeStatus, error) {
	video, err := u.videoRepo.GetByPublicID(ctx, videoPublicID)
	if err != nil {
		return dto.LikeStatus{}, err
	}

	if model.ContainsID(video.Dislikes, userID) {
		if err := u.videoRepo.RemoveDislike(ctx, video.ID, userID); err != nil {
			return dto.LikeStatus{}, err
		}
	} else {
		hadLike := model.ContainsID(video.Likes, userID)
		if err := u.videoRepo.AddDislike(ctx, video.ID, userID); err != nil {
			return dto.LikeStatus{}, err
		}
		if hadLike {
			if err := u.userRepo.RemoveLikedVideo(ctx, userID, video.ID); err != nil {
				return dto.LikeStatus{}, &model.IntegrityError{
					Op:        "video.dislike",
					Completed: []string{"add dislike"},
					Err:       err,
				}
			}
		}
	}

	video, err = u.videoRepo.GetByID(ctx, video.ID)
	if err != nil {
		return dto.LikeStatus{}, err
	}
	return dto.LikeStatus{Likes: video.Likes, Dislikes: video.Dislikes}, nil
}

// AddView records the viewer at most once per user and returns the distinct
// viewer count.
func (u *VideoUsecase) AddView(ctx context.Context, userID bson.ObjectID, videoPublicID string) (int, error) {
	video, err := u.videoRepo.AddView(ctx, videoPublicID, userID)
	if err != nil {
		return 0, err
	}
	return len(video.Views), nil
}

// AddToHistory appends once per video and returns the stored history in
// first-seen order.
func (u *VideoUsecase) AddToHistory(ctx context.Context, userID bson.ObjectID, videoPublicID string) ([]bson.ObjectID, error) {
	video, err := u.videoRepo.GetByPublicID(ctx, videoPublicID)
	if err != nil {
		return nil, err
	}
	user, err := u.userRepo.AddToHistory(ctx, userID, video.ID)
	if err != nil {
		return nil, err
	}
	return user.History, nil
}

// ToggleWatchLater reports true when the video is in the list after the call.
func (u *VideoUsecase) ToggleWatchLater(ctx context.Context, userID bson.ObjectID, videoPublicID string) (bool, error) {
	video, err := u.videoRepo.GetByPublicID(ctx, videoPublicID)
	if err != nil {
		return false, err
	}
	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return false, err
	}
	if model.ContainsID(user.WatchLater, video.ID) {
		if err := u.userRepo.RemoveWatchLater(ctx, userID, video.ID); err != nil {
			return false, err
		}
		return false, nil
	}
	if err := u.userRepo.AddWatchLater(ctx, userID, video.ID); err != nil {
		return false, err
	}
	return true, nil
}

func (u *VideoUsecase) AddComment(ctx context.Context, userID bson.ObjectID, videoPublicID, text string) (dto.VideoDetail, error) {
	if _, err := u.userRepo.GetByID(ctx, userID); err != nil {
		return dto.VideoDetail{}, err
	}
	video, err := u.videoRepo.PushComment(ctx, videoPublicID, model.Comment{
		CommentID: uuid.NewString(),
		UserID:    userID,
		Text:      text,
		Timestamp: time.Now().UTC(),
	})
	if err != nil {
		return dto.VideoDetail{}, err
	}
	return u.populate(ctx, video)
}

// DeleteComment removes the caller's own comment. A missing video or comment
// is NotFound; someone else's comment is Forbidden.
func (u *VideoUsecase) DeleteComment(ctx context.Context, userID bson.ObjectID, videoPublicID, commentID string) (dto.VideoDetail, error) {
	video, err := u.videoRepo.GetByPublicID(ctx, videoPublicID)
	if err != nil {
		return dto.VideoDetail{}, err
	}
	var target *model.Comment
	for i := range video.Comments {
		if video.Comments[i].CommentID == commentID {
			target = &video.Comments[i]
			break
		}
	}
	if target == nil {
		return dto.VideoDetail{}, fmt.Errorf("comment %s: %w", commentID, model.ErrNotFound)
	}
	if target.UserID != userID {
		return dto.VideoDetail{}, fmt.Errorf("caller does not own comment: %w", model.ErrForbidden)
	}

	video, err = u.videoRepo.PullComment(ctx, videoPublicID, commentID)
	if err != nil {
		return dto.VideoDetail{}, err
	}
	return u.populate(ctx, video)
}
