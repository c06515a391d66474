package model

import "go.mongodb.org/mongo-driver/v2/bson"

// Playlist has no public identifier of its own; lookups from the create flow
// go by (name, owner), which is deliberately not unique by schema.
type Playlist struct {
	ID        bson.ObjectID   `bson:"_id,omitempty" json:"_id"`
	Name      string          `bson:"name" json:"name"`
	UserID    bson.ObjectID   `bson:"userId" json:"userId"`
	Videos    []bson.ObjectID `bson:"videos" json:"videos"`
	IsPrivate bool            `bson:"isPrivate" json:"isPrivate"`
}
