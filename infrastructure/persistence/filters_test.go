package persistence

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func TestSubstringFilter_EscapesMetacharacters(t *testing.T) {
	filter := substringFilter("title", "c++ (live)")

	inner, ok := filter["title"].(bson.M)
	require.True(t, ok)
	pattern, ok := inner["$regex"].(string)
	require.True(t, ok)
	assert.Equal(t, "i", inner["$options"])

	re, err := regexp.Compile(pattern)
	require.NoError(t, err, "escaped pattern must stay a valid regex")
	assert.True(t, re.MatchString("intro to c++ (live) coding"))
	assert.False(t, re.MatchString("cab live"))
}

func TestSubstringFilter_PlainQueryUnchanged(t *testing.T) {
	filter := substringFilter("name", "lofi beats")
	inner := filter["name"].(bson.M)
	assert.Equal(t, "lofi beats", inner["$regex"])
}
