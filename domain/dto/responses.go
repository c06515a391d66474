package dto

import (
	"vidhub/domain/model"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Res is the generic envelope used by the auth middleware and error paths.
type Res struct {
	ResponseCode    string `json:"response_code"`
	ResponseMessage string `json:"response_message"`
}

// Profile is the assembled current-user view: owned channels, default channel
// and playlists/uploads dereferenced. Login and /me return this exact shape.
type Profile struct {
	ID             bson.ObjectID        `json:"_id"`
	Username       string               `json:"username"`
	Email          string               `json:"email"`
	Avatar         string               `json:"avatar"`
	DefaultChannel *model.Channel       `json:"defaultChannel"`
	Channels       []model.Channel      `json:"channels"`
	Playlists      []PlaylistWithVideos `json:"playlists"`
	UploadedVideos []model.VideoSlim    `json:"uploadedVideos"`
	History        []bson.ObjectID      `json:"history"`
	LikedVideos    []bson.ObjectID      `json:"likedVideos"`
	WatchLater     []bson.ObjectID      `json:"watchLater"`
	Subscriptions  []bson.ObjectID      `json:"subscriptions"`
}

type ResLogin struct {
	Token string  `json:"token"`
	User  Profile `json:"user"`
}

// PlaylistWithVideos carries the slim video projection used in profiles and
// the playlist create response.
type PlaylistWithVideos struct {
	ID        bson.ObjectID     `json:"_id"`
	Name      string            `json:"name"`
	IsPrivate bool              `json:"isPrivate"`
	Videos    []model.VideoSlim `json:"videos"`
}

// PlaylistDetail carries full video documents (playlist listing and search).
type PlaylistDetail struct {
	ID        bson.ObjectID `json:"_id"`
	Name      string        `json:"name"`
	UserID    bson.ObjectID `json:"userId"`
	IsPrivate bool          `json:"isPrivate"`
	Videos    []model.Video `json:"videos"`
}

// ChannelDetail is a channel with its claimed videos dereferenced.
type ChannelDetail struct {
	model.Channel
	VideoList []model.Video `json:"videoList"`
}

// ChannelUpdateResult pairs the updated channel with the owner's refreshed
// channel list, matching the update response contract.
type ChannelUpdateResult struct {
	Channel model.Channel    `json:"channel"`
	User    UserWithChannels `json:"updatedUser"`
}

// UserWithChannels is a user document with the channels set dereferenced.
type UserWithChannels struct {
	User     model.User      `json:"user"`
	Channels []model.Channel `json:"channels"`
}

// SubscribedChannel is one element of the subscriptions view. Subscribers is
// populated only in the default-channel narrowing path.
type SubscribedChannel struct {
	ID           bson.ObjectID    `json:"_id"`
	ChannelID    string           `json:"channelId,omitempty"`
	ChannelName  string           `json:"channelName,omitempty"`
	ChannelImage string           `json:"channelImage,omitempty"`
	Subscribers  []model.UserSlim `json:"subscribersList,omitempty"`
}

type ResSubscribe struct {
	Message     string `json:"message"`
	Subscribers int    `json:"subscribers"`
}

// LikeStatus is the video-side like/dislike state after a toggle.
type LikeStatus struct {
	Likes    []bson.ObjectID `json:"likes"`
	Dislikes []bson.ObjectID `json:"dislikes"`
}

// CommentDetail is a comment with its author dereferenced.
type CommentDetail struct {
	CommentID string          `json:"commentId"`
	Text      string          `json:"text"`
	Timestamp string          `json:"timestamp"`
	Author    *model.UserSlim `json:"userId"`
}

// VideoDetail is a video with uploader and comment authors dereferenced.
type VideoDetail struct {
	model.Video
	UploaderInfo *model.UserSlim `json:"uploaderInfo,omitempty"`
	CommentList  []CommentDetail `json:"commentList,omitempty"`
}

// Suggestion is one tagged entry of the merged suggestion list: video entries
// first, then playlist entries, each group capped independently.
type Suggestion struct {
	Type       string            `json:"type"`
	Title      string            `json:"title"`
	VideoID    string            `json:"videoId,omitempty"`
	PlaylistID string            `json:"playlistId,omitempty"`
	Videos     []model.VideoSlim `json:"videos,omitempty"`
}

// SearchResult returns full documents in two separate collections, no cap.
type SearchResult struct {
	Videos    []model.Video    `json:"videos"`
	Playlists []PlaylistDetail `json:"playlists"`
}
