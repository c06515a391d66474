package usecase

import (
	"context"
	"errors"
	"fmt"

	"vidhub/domain/dto"
	"vidhub/domain/model"
	"vidhub/domain/repository"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type IPlaylistUsecase interface {
	CreateOrAppend(ctx context.Context, owner bson.ObjectID, req dto.ReqCreatePlaylist) (dto.PlaylistWithVideos, error)
	GetForUser(ctx context.Context, owner bson.ObjectID) ([]dto.PlaylistDetail, error)
	AddVideo(ctx context.Context, caller, playlistID bson.ObjectID, videoPublicID string) (dto.PlaylistDetail, error)
	RemoveVideo(ctx context.Context, caller, playlistID bson.ObjectID, videoPublicID string) (dto.PlaylistDetail, error)
	Update(ctx context.Context, caller, playlistID bson.ObjectID, req dto.ReqUpdatePlaylist) (dto.PlaylistDetail, error)
	Delete(ctx context.Context, caller, playlistID bson.ObjectID) error
}

type PlaylistUsecase struct {
	playlistRepo repository.IPlaylist
	videoRepo    repository.IVideo
	userRepo     repository.IUser
}

func NewPlaylistUsecase(
	playlistRepo repository.IPlaylist,
	videoRepo repository.IVideo,
	userRepo repository.IUser,
) IPlaylistUsecase {
	return &PlaylistUsecase{
		playlistRepo: playlistRepo,
		videoRepo:    videoRepo,
		userRepo:     userRepo,
	}
}

// CreateOrAppend upserts by (name, owner): when the caller already has a
// playlist of that name the video joins it, otherwise a new playlist is
// inserted and registered on the user.
func (u *PlaylistUsecase) CreateOrAppend(ctx context.Context, owner bson.ObjectID, req dto.ReqCreatePlaylist) (dto.PlaylistWithVideos, error) {
	video, err := u.videoRepo.GetByPublicID(ctx, req.VideoID)
	if err != nil {
		return dto.PlaylistWithVideos{}, err
	}

	playlist, err := u.playlistRepo.GetByNameAndOwner(ctx, req.Name, owner)
	switch {
	case err == nil:
		if err := u.playlistRepo.AddVideo(ctx, playlist.ID, video.ID); err != nil {
			return dto.PlaylistWithVideos{}, err
		}
		playlist, err = u.playlistRepo.GetByID(ctx, playlist.ID)
		if err != nil {
			return dto.PlaylistWithVideos{}, err
		}
	case errors.Is(err, model.ErrNotFound):
		playlist, err = u.playlistRepo.Create(ctx, model.Playlist{
			Name:      req.Name,
			UserID:    owner,
			IsPrivate: req.IsPrivate,
			Videos:    []bson.ObjectID{video.ID},
		})
		if err != nil {
			return dto.PlaylistWithVideos{}, err
		}
		if err := u.userRepo.AddPlaylist(ctx, owner, playlist.ID); err != nil {
			return dto.PlaylistWithVideos{}, &model.IntegrityError{
				Op:        "playlist.create",
				Completed: []string{"insert playlist"},
				Err:       err,
			}
		}
	default:
		return dto.PlaylistWithVideos{}, err
	}

	videos, err := u.videoRepo.GetSlimByIDs(ctx, playlist.Videos)
	if err != nil {
		return dto.PlaylistWithVideos{}, err
	}
	return dto.PlaylistWithVideos{
		ID:        playlist.ID,
		Name:      playlist.Name,
		IsPrivate: playlist.IsPrivate,
		Videos:    videos,
	}, nil
}

func (u *PlaylistUsecase) GetForUser(ctx context.Context, owner bson.ObjectID) ([]dto.PlaylistDetail, error) {
	playlists, err := u.playlistRepo.GetByOwner(ctx, owner)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PlaylistDetail, 0, len(playlists))
	for _, p := range playlists {
		detail, err := u.detail(ctx, p)
		if err != nil {
			return nil, err
		}
		out = append(out, detail)
	}
	return out, nil
}

func (u *PlaylistUsecase) AddVideo(ctx context.Context, caller, playlistID bson.ObjectID, videoPublicID string) (dto.PlaylistDetail, error) {
	playlist, err := u.owned(ctx, caller, playlistID)
	if err != nil {
		return dto.PlaylistDetail{}, err
	}
	video, err := u.videoRepo.GetByPublicID(ctx, videoPublicID)
	if err != nil {
		return dto.PlaylistDetail{}, err
	}
	if err := u.playlistRepo.AddVideo(ctx, playlist.ID, video.ID); err != nil {
		return dto.PlaylistDetail{}, err
	}
	return u.refreshed(ctx, playlist.ID)
}

func (u *PlaylistUsecase) RemoveVideo(ctx context.Context, caller, playlistID bson.ObjectID, videoPublicID string) (dto.PlaylistDetail, error) {
	playlist, err := u.owned(ctx, caller, playlistID)
	if err != nil {
		return dto.PlaylistDetail{}, err
	}
	video, err := u.videoRepo.GetByPublicID(ctx, videoPublicID)
	if err != nil {
		return dto.PlaylistDetail{}, err
	}
	if err := u.playlistRepo.RemoveVideo(ctx, playlist.ID, video.ID); err != nil {
		return dto.PlaylistDetail{}, err
	}
	return u.refreshed(ctx, playlist.ID)
}

func (u *PlaylistUsecase) Update(ctx context.Context, caller, playlistID bson.ObjectID, req dto.ReqUpdatePlaylist) (dto.PlaylistDetail, error) {
	if _, err := u.owned(ctx, caller, playlistID); err != nil {
		return dto.PlaylistDetail{}, err
	}
	playlist, err := u.playlistRepo.UpdateDetails(ctx, playlistID, req.Name, req.IsPrivate)
	if err != nil {
		return dto.PlaylistDetail{}, err
	}
	return u.detail(ctx, playlist)
}

func (u *PlaylistUsecase) Delete(ctx context.Context, caller, playlistID bson.ObjectID) error {
	if _, err := u.owned(ctx, caller, playlistID); err != nil {
		return err
	}
	if err := u.playlistRepo.Delete(ctx, playlistID); err != nil {
		return err
	}
	if err := u.userRepo.RemovePlaylist(ctx, caller, playlistID); err != nil {
		return &model.IntegrityError{
			Op:        "playlist.delete",
			Completed: []string{"delete playlist"},
			Err:       err,
		}
	}
	return nil
}

func (u *PlaylistUsecase) owned(ctx context.Context, caller, playlistID bson.ObjectID) (model.Playlist, error) {
	playlist, err := u.playlistRepo.GetByID(ctx, playlistID)
	if err != nil {
		return model.Playlist{}, err
	}
	if playlist.UserID != caller {
		return model.Playlist{}, fmt.Errorf("caller does not own playlist: %w", model.ErrForbidden)
	}
	return playlist, nil
}

func (u *PlaylistUsecase) refreshed(ctx context.Context, playlistID bson.ObjectID) (dto.PlaylistDetail, error) {
	playlist, err := u.playlistRepo.GetByID(ctx, playlistID)
	if err != nil {
		return dto.PlaylistDetail{}, err
	}
	return u.detail(ctx, playlist)
}

// detail dereferences the playlist's videos; dangling references drop out of
// the listing without failing it.
func (u *PlaylistUsecase) detail(ctx context.Context, playlist model.Playlist) (dto.PlaylistDetail, error) {
	videos, err := u.videoRepo.GetByIDs(ctx, playlist.Videos)
	if err != nil {
		return dto.PlaylistDetail{}, err
	}
	return dto.PlaylistDetail{
		ID:        playlist.ID,
		Name:      playlist.Name,
		UserID:    playlist.UserID,
		IsPrivate: playlist.IsPrivate,
		Videos:    orderVideos(playlist.Videos, videos),
	}, nil
}
