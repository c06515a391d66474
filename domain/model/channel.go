package model

import "go.mongodb.org/mongo-driver/v2/bson"

// Channel is the channels collection document. ChannelID is the public
// identifier handed to callers; it is generated once at creation and never
// changes. Subscribers caches len(SubscribersList) and is only ever written
// inside the same store update that mutates the list.
type Channel struct {
	ID              bson.ObjectID   `bson:"_id,omitempty" json:"_id"`
	ChannelID       string          `bson:"channelId" json:"channelId"`
	ChannelName     string          `bson:"channelName" json:"channelName"`
	Handle          string          `bson:"handle" json:"handle"`
	Owner           bson.ObjectID   `bson:"owner" json:"owner"`
	Description     string          `bson:"description,omitempty" json:"description,omitempty"`
	ChannelBanner   string          `bson:"channelBanner,omitempty" json:"channelBanner,omitempty"`
	ChannelImage    string          `bson:"channelImage,omitempty" json:"channelImage,omitempty"`
	Subscribers     int             `bson:"subscribers" json:"subscribers"`
	SubscribersList []bson.ObjectID `bson:"subscribersList" json:"subscribersList"`
	Videos          []bson.ObjectID `bson:"videos" json:"videos"`
}
