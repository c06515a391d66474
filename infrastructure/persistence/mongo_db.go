package persistence

import (
	"fmt"
	"net/url"
	"time"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// NewMongoDb creates a client for the document store. Credentials are
// optional for local instances.
func NewMongoDb(host, port, user, password string) (*mongo.Client, error) {
	var uri string
	if user != "" {
		uri = fmt.Sprintf("mongodb://%s:%s@%s:%s", url.QueryEscape(user), url.QueryEscape(password), host, port)
	} else {
		uri = fmt.Sprintf("mongodb://%s:%s", host, port)
	}

	opts := options.Client().
		ApplyURI(uri).
		SetServerSelectionTimeout(5 * time.Second)

	client, err := mongo.Connect(opts)
	if err != nil {
		return nil, err
	}
	return client, nil
}
