package model

import (
	"time"

	"github.com/golang-jwt/jwt"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// User is the users collection document. The reference arrays mirror the
// denormalized schema: every one of them is the owning or inverse side of a
// relationship whose other side lives on Channel, Video or Playlist.
type User struct {
	ID             bson.ObjectID   `bson:"_id,omitempty" json:"_id"`
	Username       string          `bson:"username" json:"username"`
	Email          string          `bson:"email" json:"email"`
	Password       string          `bson:"password" json:"-"`
	Avatar         string          `bson:"avatar" json:"avatar"`
	Gender         string          `bson:"gender,omitempty" json:"gender,omitempty"`
	DefaultChannel *string         `bson:"defaultChannel" json:"defaultChannel"`
	UploadedVideos []bson.ObjectID `bson:"uploadedVideos" json:"uploadedVideos"`
	Channels       []bson.ObjectID `bson:"channels" json:"channels"`
	History        []bson.ObjectID `bson:"history" json:"history"`
	LikedVideos    []bson.ObjectID `bson:"likedVideos" json:"likedVideos"`
	WatchLater     []bson.ObjectID `bson:"watchLater" json:"watchLater"`
	Playlists      []bson.ObjectID `bson:"playlists" json:"playlists"`
	Subscriptions  []bson.ObjectID `bson:"subscriptions" json:"subscriptions"`
	CreatedAt      time.Time       `bson:"createdAt,omitempty" json:"createdAt"`
	UpdatedAt      time.Time       `bson:"updatedAt,omitempty" json:"updatedAt"`
}

// UserSlim is the projection used when dereferencing subscriber lists and
// comment authors.
type UserSlim struct {
	ID       bson.ObjectID `bson:"_id" json:"_id"`
	Username string        `bson:"username" json:"username"`
	Avatar   string        `bson:"avatar" json:"avatar"`
}

// UserClaims carries the authenticated user's object id hex in Issuer.
type UserClaims struct {
	Email string `json:"email,omitempty"`
	jwt.StandardClaims
}

// ContainsID reports membership of id in a reference array.
func ContainsID(ids []bson.ObjectID, id bson.ObjectID) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

// DedupIDs collapses duplicate ids keeping the first occurrence's position.
// History arrays written before add-if-absent semantics may still hold
// duplicates.
func DedupIDs(ids []bson.ObjectID) []bson.ObjectID {
	seen := make(map[bson.ObjectID]struct{}, len(ids))
	out := make([]bson.ObjectID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
