package persistence

import (
	"regexp"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// substringFilter builds a case-insensitive literal substring match on the
// field. The query is escaped so regex metacharacters in user input match
// themselves instead of reaching the server's regex engine raw.
func substringFilter(field, query string) bson.M {
	return bson.M{field: bson.M{"$regex": regexp.QuoteMeta(query), "$options": "i"}}
}
