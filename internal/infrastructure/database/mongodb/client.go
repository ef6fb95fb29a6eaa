package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"gestion-projets-core/internal/app/config"
)

type Client struct {
	client   *mongo.Client
	database *mongo.Database
}

// NewClient prépare le client; mongo.Connect n'ouvre les connexions qu'à la première opération.
func NewClient(cfg config.MongoConfig) (*Client, error) {
	clientOptions := options.Client().ApplyURI(cfg.URI)

	// Configuration du pool de connexions
	clientOptions.SetMaxPoolSize(uint64(cfg.MaxPoolSize))
	clientOptions.SetMinPoolSize(2)
	clientOptions.SetMaxConnIdleTime(30 * time.Minute)
	clientOptions.SetConnectTimeout(cfg.ConnectTimeout)
	clientOptions.SetServerSelectionTimeout(5 * time.Second)

	// Lecture sur le primaire: une écriture doit être relue immédiatement
	clientOptions.SetReadPreference(readpref.Primary())
	clientOptions.SetRetryWrites(true)
	clientOptions.SetRetryReads(true)

	mongoClient, err := mongo.Connect(context.Background(), clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	return &Client{
		client:   mongoClient,
		database: mongoClient.Database(cfg.Database),
	}, nil
}

func (c *Client) Ping(ctx context.Context) error {
	if c.client == nil {
		return fmt.Errorf("MongoDB client is nil")
	}

	if err := c.client.Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("ping failed: %w", err)
	}

	return nil
}

func (c *Client) Close(ctx context.Context) error {
	if c.client != nil {
		return c.client.Disconnect(ctx)
	}
	return nil
}

func (c *Client) Collection(name string) *mongo.Collection {
	return c.database.Collection(name)
}
