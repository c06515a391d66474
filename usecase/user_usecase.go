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

	"github.com/golang-jwt/jwt"
	"go.mongodb.org/mongo-driver/v2/bson"
	"golang.org/x/crypto/bcrypt"
)

type IUserUsecase interface {
	Register(ctx context.Context, req dto.ReqRegister) error
	Login(ctx context.Context, req dto.ReqLogin) (dto.ResLogin, error)
	CheckEmail(ctx context.Context, email string) (bool, error)
	ForgetPassword(ctx context.Context, req dto.ReqForgetPassword) error
	GetProfile(ctx context.Context, userID bson.ObjectID) (dto.Profile, error)
	SetDefaultChannel(ctx context.Context, userID bson.ObjectID, channelPublicID string) (dto.Profile, error)

	GetHistory(ctx context.Context, userID bson.ObjectID) ([]model.Video, error)
	ClearHistory(ctx context.Context, userID bson.ObjectID) error
	RemoveFromHistory(ctx context.Context, userID, videoID bson.ObjectID) error
	GetLikedVideos(ctx context.Context, userID bson.ObjectID) ([]model.Video, error)
	RemoveFromLikedVideos(ctx context.Context, userID, videoID bson.ObjectID) error
	GetWatchLater(ctx context.Context, userID bson.ObjectID) ([]model.Video, error)
	RemoveFromWatchLater(ctx context.Context, userID, videoID bson.ObjectID) error
}

type UserUsecase struct {
	userRepo     repository.IUser
	channelRepo  repository.IChannel
	videoRepo    repository.IVideo
	playlistRepo repository.IPlaylist
	mediaStore   repository.IMediaStore
	secretKey    string
}

func NewUserUsecase(
	userRepo repository.IUser,
	channelRepo repository.IChannel,
	videoRepo repository.IVideo,
	playlistRepo repository.IPlaylist,
	mediaStore repository.IMediaStore,
	secretKey string,
) IUserUsecase {
	return &UserUsecase{
		userRepo:     userRepo,
		channelRepo:  channelRepo,
		videoRepo:    videoRepo,
		playlistRepo: playlistRepo,
		mediaStore:   mediaStore,
		secretKey:    secretKey,
	}
}

func (u *UserUsecase) Register(ctx context.Context, req dto.ReqRegister) error {
	if _, err := u.userRepo.GetByEmail(ctx, req.Email); err == nil {
		return fmt.Errorf("email already registered: %w", model.ErrConflict)
	} else if !errors.Is(err, model.ErrNotFound) {
		return err
	}

	avatarURL, err := uploadMedia(ctx, u.mediaStore, "avatars", req.Avatar)
	if err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	_, err = u.userRepo.Create(ctx, model.User{
		Username: fmt.Sprintf("%s %s", req.Firstname, req.Lastname),
		Email:    req.Email,
		Password: string(hash),
		Avatar:   avatarURL,
	})
	return err
}

func (u *UserUsecase) Login(ctx context.Context, req dto.ReqLogin) (dto.ResLogin, error) {
	user, err := u.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return dto.ResLogin{}, fmt.Errorf("invalid credentials: %w", model.ErrInvalidInput)
		}
		return dto.ResLogin{}, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		return dto.ResLogin{}, fmt.Errorf("invalid credentials: %w", model.ErrInvalidInput)
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, model.UserClaims{
		Email: user.Email,
		StandardClaims: jwt.StandardClaims{
			Issuer:    user.ID.Hex(),
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(72 * time.Hour).Unix(),
		},
	})
	signed, err := token.SignedString([]byte(u.secretKey))
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("signing token failed")
		return dto.ResLogin{}, err
	}

	// Login and /me must return the exact same assembled shape.
	profile, err := u.assembleProfile(ctx, user)
	if err != nil {
		return dto.ResLogin{}, err
	}
	return dto.ResLogin{Token: signed, User: profile}, nil
}

func (u *UserUsecase) CheckEmail(ctx context.Context, email string) (bool, error) {
	_, err := u.userRepo.GetByEmail(ctx, email)
	if errors.Is(err, model.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (u *UserUsecase) ForgetPassword(ctx context.Context, req dto.ReqForgetPassword) error {
	user, err := u.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		return err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return u.userRepo.UpdatePassword(ctx, user.ID, string(hash))
}

func (u *UserUsecase) GetProfile(ctx context.Context, userID bson.ObjectID) (dto.Profile, error) {
	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return dto.Profile{}, err
	}
	return u.assembleProfile(ctx, user)
}

func (u *UserUsecase) SetDefaultChannel(ctx context.Context, userID bson.ObjectID, channelPublicID string) (dto.Profile, error) {
	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return dto.Profile{}, err
	}
	channel, err := u.channelRepo.GetByPublicID(ctx, channelPublicID)
	if err != nil {
		return dto.Profile{}, err
	}
	if !model.ContainsID(user.Channels, channel.ID) {
		return dto.Profile{}, fmt.Errorf("channel not owned by user: %w", model.ErrForbidden)
	}
	if err := u.userRepo.SetDefaultChannel(ctx, userID, &channelPublicID); err != nil {
		return dto.Profile{}, err
	}
	user.DefaultChannel = &channelPublicID
	return u.assembleProfile(ctx, user)
}

// assembleProfile dereferences the user's owned collections in one logical
// read. A referenced channel that no longer exists is an invariant violation
// and is surfaced, not patched.
func (u *UserUsecase) assembleProfile(ctx context.Context, user model.User) (dto.Profile, error) {
	channels, err := u.channelRepo.GetByIDs(ctx, user.Channels)
	if err != nil {
		return dto.Profile{}, err
	}
	if len(channels) != len(user.Channels) {
		return dto.Profile{}, &model.IntegrityError{
			Op:  "user.profile",
			Err: fmt.Errorf("user %s references %d channels, found %d", user.ID.Hex(), len(user.Channels), len(channels)),
		}
	}

	var defaultChannel *model.Channel
	if user.DefaultChannel != nil {
		ch, err := u.channelRepo.GetByPublicID(ctx, *user.DefaultChannel)
		if err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return dto.Profile{}, &model.IntegrityError{
					Op:  "user.profile",
					Err: fmt.Errorf("default channel %s does not exist", *user.DefaultChannel),
				}
			}
			return dto.Profile{}, err
		}
		defaultChannel = &ch
	}

	playlists, err := u.playlistRepo.GetByIDs(ctx, user.Playlists)
	if err != nil {
		return dto.Profile{}, err
	}
	populated := make([]dto.PlaylistWithVideos, 0, len(playlists))
	for _, p := range playlists {
		videos, err := u.videoRepo.GetSlimByIDs(ctx, p.Videos)
		if err != nil {
			return dto.Profile{}, err
		}
		populated = append(populated, dto.PlaylistWithVideos{
			ID:        p.ID,
			Name:      p.Name,
			IsPrivate: p.IsPrivate,
			Videos:    videos,
		})
	}

	uploaded, err := u.videoRepo.GetSlimByIDs(ctx, user.UploadedVideos)
	if err != nil {
		return dto.Profile{}, err
	}

	return dto.Profile{
		ID:             user.ID,
		Username:       user.Username,
		Email:          user.Email,
		Avatar:         user.Avatar,
		DefaultChannel: defaultChannel,
		Channels:       channels,
		Playlists:      populated,
		UploadedVideos: uploaded,
		History:        user.History,
		LikedVideos:    user.LikedVideos,
		WatchLater:     user.WatchLater,
		Subscriptions:  user.Subscriptions,
	}, nil
}

// GetHistory deduplicates by video identity at read time, keeping the first
// occurrence's position. Stored history is append-ordered and may predate
// add-if-absent writes.
func (u *UserUsecase) GetHistory(ctx context.Context, userID bson.ObjectID) ([]model.Video, error) {
	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	ids := model.DedupIDs(user.History)
	videos, err := u.videoRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	return orderVideos(ids, videos), nil
}

func (u *UserUsecase) ClearHistory(ctx context.Context, userID bson.ObjectID) error {
	return u.userRepo.ClearHistory(ctx, userID)
}

func (u *UserUsecase) RemoveFromHistory(ctx context.Context, userID, videoID bson.ObjectID) error {
	return u.userRepo.RemoveFromHistory(ctx, userID, videoID)
}

func (u *UserUsecase) GetLikedVideos(ctx context.Context, userID bson.ObjectID) ([]model.Video, error) {
	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return u.videoRepo.GetByIDs(ctx, user.LikedVideos)
}

// RemoveFromLikedVideos drops the entry from the user's liked list only; the
// video document's likes array is left untouched.
func (u *UserUsecase) RemoveFromLikedVideos(ctx context.Context, userID, videoID bson.ObjectID) error {
	return u.userRepo.RemoveLikedVideo(ctx, userID, videoID)
}

func (u *UserUsecase) GetWatchLater(ctx context.Context, userID bson.ObjectID) ([]model.Video, error) {
	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return u.videoRepo.GetByIDs(ctx, user.WatchLater)
}

func (u *UserUsecase) RemoveFromWatchLater(ctx context.Context, userID, videoID bson.ObjectID) error {
	return u.userRepo.RemoveWatchLater(ctx, userID, videoID)
}

// orderVideos re-applies the reference array's order to an unordered fetch.
func orderVideos(ids []bson.ObjectID, videos []model.Video) []model.Video {
	byID := make(map[bson.ObjectID]model.Video, len(videos))
	for _, v := range videos {
		byID[v.ID] = v
	}
	out := make([]model.Video, 0, len(videos))
	for _, id := range ids {
		if v, ok := byID[id]; ok {
			out = append(out, v)
		}
	}
	return out
}
