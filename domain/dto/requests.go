package dto

import "mime/multipart"

type ReqRegister struct {
	Firstname string                `form:"firstname" binding:"required"`
	Lastname  string                `form:"lastname" binding:"required"`
	Email     string                `form:"email" binding:"required,email"`
	Password  string                `form:"password" binding:"required"`
	Avatar    *multipart.FileHeader `form:"avatar" binding:"required"`
}

type ReqLogin struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type ReqForgetPassword struct {
	Email       string `json:"email" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required"`
}

type ReqCreateChannel struct {
	ChannelName   string                `form:"channelName" binding:"required"`
	Handle        string                `form:"handle" binding:"required"`
	Description   string                `form:"description"`
	ChannelBanner *multipart.FileHeader `form:"channelBanner"`
	ChannelImage  *multipart.FileHeader `form:"channelImage"`
}

type ReqUpdateChannel struct {
	ChannelName   string                `form:"channelName"`
	Description   string                `form:"description"`
	ChannelBanner *multipart.FileHeader `form:"channelBanner"`
	ChannelImage  *multipart.FileHeader `form:"channelImage"`
}

type ReqSetDefaultChannel struct {
	// ID is the channel's public identifier, not an object id.
	ID string `json:"id" binding:"required"`
}

type ReqUploadVideo struct {
	Title       string                `form:"title" binding:"required"`
	Description string                `form:"description"`
	ChannelID   string                `form:"channelId"`
	Category    string                `form:"category"`
	Video       *multipart.FileHeader `form:"video" binding:"required"`
	Thumbnail   *multipart.FileHeader `form:"thumbnail"`
}

type ReqUpdateVideo struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
}

type ReqCreatePlaylist struct {
	Name      string `json:"name" binding:"required"`
	VideoID   string `json:"videoId" binding:"required"`
	IsPrivate bool   `json:"isPrivate"`
}

type ReqPlaylistVideo struct {
	VideoID string `json:"videoId" binding:"required"`
}

type ReqUpdatePlaylist struct {
	Name      *string `json:"name"`
	IsPrivate *bool   `json:"isPrivate"`
}

type ReqAddComment struct {
	Text string `json:"text" binding:"required"`
}
