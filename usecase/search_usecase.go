package usecase

import (
	"context"
	"strings"

	"vidhub/domain/dto"
	"vidhub/domain/model"
	"vidhub/domain/repository"
	"vidhub/infrastructure/cache"
)

const suggestionLimit = 5

type ISearchUsecase interface {
	Suggest(ctx context.Context, query string) ([]dto.Suggestion, error)
	Search(ctx context.Context, query string) (dto.SearchResult, error)
}

type SearchUsecase struct {
	videoRepo       repository.IVideo
	playlistRepo    repository.IPlaylist
	suggestionCache cache.ISuggestionCache
}

func NewSearchUsecase(
	videoRepo repository.IVideo,
	playlistRepo repository.IPlaylist,
	suggestionCache cache.ISuggestionCache,
) ISearchUsecase {
	return &SearchUsecase{
		videoRepo:       videoRepo,
		playlistRepo:    playlistRepo,
		suggestionCache: suggestionCache,
	}
}

// Suggest returns a merged list of tagged entries, video matches first and
// each group capped independently. Blank queries short-circuit to an empty
// list without touching the store.
func (u *SearchUsecase) Suggest(ctx context.Context, query string) ([]dto.Suggestion, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []dto.Suggestion{}, nil
	}

	key := "suggest:" + strings.ToLower(query)
	if entries, ok := u.suggestionCache.Get(ctx, key); ok {
		return entries, nil
	}

	videos, err := u.videoRepo.SearchByTitle(ctx, query, suggestionLimit)
	if err != nil {
		return nil, err
	}
	playlists, err := u.playlistRepo.SearchByName(ctx, query, suggestionLimit)
	if err != nil {
		return nil, err
	}

	entries := make([]dto.Suggestion, 0, len(videos)+len(playlists))
	for _, v := range videos {
		entries = append(entries, dto.Suggestion{
			Type:    "video",
			Title:   v.Title,
			VideoID: v.VideoID,
		})
	}
	for _, p := range playlists {
		slim, err := u.videoRepo.GetSlimByIDs(ctx, p.Videos)
		if err != nil {
			return nil, err
		}
		entries = append(entries, dto.Suggestion{
			Type:       "playlist",
			Title:      p.Name,
			PlaylistID: p.ID.Hex(),
			Videos:     slim,
		})
	}

	u.suggestionCache.Set(ctx, key, entries)
	return entries, nil
}

// Search is the uncapped variant with full documents. Playlists come back
// with their videos dereferenced.
func (u *SearchUsecase) Search(ctx context.Context, query string) (dto.SearchResult, error) {
	empty := dto.SearchResult{Videos: []model.Video{}, Playlists: []dto.PlaylistDetail{}}

	query = strings.TrimSpace(query)
	if query == "" {
		return empty, nil
	}

	videos, err := u.videoRepo.SearchByTitle(ctx, query, 0)
	if err != nil {
		return dto.SearchResult{}, err
	}
	playlists, err := u.playlistRepo.SearchByName(ctx, query, 0)
	if err != nil {
		return dto.SearchResult{}, err
	}

	result := empty
	result.Videos = append(result.Videos, videos...)
	for _, p := range playlists {
		full, err := u.videoRepo.GetByIDs(ctx, p.Videos)
		if err != nil {
			return dto.SearchResult{}, err
		}
		result.Playlists = append(result.Playlists, dto.PlaylistDetail{
			ID:        p.ID,
			Name:      p.Name,
			UserID:    p.UserID,
			IsPrivate: p.IsPrivate,
			Videos:    full,
		})
	}
	return result, nil
}
