package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// DocumentsCollection reçoit toutes les collections locales, distinguées par le champ collection
const DocumentsCollection = "console_documents"

var documentIndexes = []mongo.IndexModel{
	{
		Keys:    bson.D{{Key: "collection", Value: 1}, {Key: "doc_id", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("collection_doc_id"),
	},
	{
		Keys:    bson.D{{Key: "collection", Value: 1}, {Key: "_id", Value: 1}},
		Options: options.Index().SetName("collection_insertion"),
	},
}

func ensureIndexes(ctx context.Context, coll *mongo.Collection) error {
	if _, err := coll.Indexes().CreateMany(ctx, documentIndexes); err != nil {
		return fmt.Errorf("failed to create indexes on %s: %w", coll.Name(), err)
	}
	return nil
}
