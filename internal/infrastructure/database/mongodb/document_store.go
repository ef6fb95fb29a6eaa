package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"gestion-projets-core/internal/infrastructure/metrics"
	"gestion-projets-core/internal/shared/store"
)

const driverName = "mongodb"

// documentRecord le payload reste une chaîne pour être relu octet pour octet
type documentRecord struct {
	ObjectID   primitive.ObjectID `bson:"_id,omitempty"`
	Collection string             `bson:"collection"`
	DocID      string             `bson:"doc_id"`
	Payload    string             `bson:"payload"`
	CreatedAt  time.Time          `bson:"created_at"`
	UpdatedAt  time.Time          `bson:"updated_at"`
}

func (r documentRecord) document() store.Document {
	return store.Document{ID: r.DocID, Payload: []byte(r.Payload)}
}

// DocumentStore range les collections locales dans MongoDB.
// L'ordre d'insertion suit l'ObjectID attribué à la création.
type DocumentStore struct {
	coll *mongo.Collection
}

func NewDocumentStore(client *Client) *DocumentStore {
	return &DocumentStore{coll: client.Collection(DocumentsCollection)}
}

func (s *DocumentStore) EnsureSchema(ctx context.Context) error {
	return ensureIndexes(ctx, s.coll)
}

func (s *DocumentStore) All(ctx context.Context, collection string) ([]store.Document, error) {
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	cursor, err := s.coll.Find(ctx, bson.M{"collection": collection}, opts)
	if err != nil {
		metrics.ObserveStore(driverName, "list", err)
		return nil, fmt.Errorf("lecture de %s: %w", collection, err)
	}
	defer cursor.Close(ctx)

	var records []documentRecord
	err = cursor.All(ctx, &records)
	metrics.ObserveStore(driverName, "list", err)
	if err != nil {
		return nil, fmt.Errorf("lecture de %s: %w", collection, err)
	}

	docs := make([]store.Document, 0, len(records))
	for _, r := range records {
		docs = append(docs, r.document())
	}
	return docs, nil
}

func (s *DocumentStore) Find(ctx context.Context, collection, id string) (store.Document, error) {
	var record documentRecord
	err := s.coll.FindOne(ctx, bson.M{"collection": collection, "doc_id": id}).Decode(&record)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return store.Document{}, store.ErrNotFound
	}
	metrics.ObserveStore(driverName, "get", err)
	if err != nil {
		return store.Document{}, fmt.Errorf("lecture de %s/%s: %w", collection, id, err)
	}
	return record.document(), nil
}

func (s *DocumentStore) Save(ctx context.Context, collection string, doc store.Document) error {
	now := time.Now().UTC()
	update := bson.M{
		"$set":         bson.M{"payload": string(doc.Payload), "updated_at": now},
		"$setOnInsert": bson.M{"created_at": now},
	}
	_, err := s.coll.UpdateOne(ctx,
		bson.M{"collection": collection, "doc_id": doc.ID},
		update,
		options.Update().SetUpsert(true),
	)
	metrics.ObserveStore(driverName, "save", err)
	if err != nil {
		return fmt.Errorf("écriture de %s/%s: %w", collection, doc.ID, err)
	}
	return nil
}

func (s *DocumentStore) Remove(ctx context.Context, collection, id string) error {
	result, err := s.coll.DeleteOne(ctx, bson.M{"collection": collection, "doc_id": id})
	metrics.ObserveStore(driverName, "remove", err)
	if err != nil {
		return fmt.Errorf("suppression de %s/%s: %w", collection, id, err)
	}
	if result.DeletedCount == 0 {
		return store.ErrNotFound
	}
	return nil
}

// Replace vide puis réinsère la collection. Sans replica set il n'y a pas de
// transaction: une erreur d'insertion laisse la collection partiellement écrite.
func (s *DocumentStore) Replace(ctx context.Context, collection string, docs []store.Document) error {
	err := s.replace(ctx, collection, docs)
	metrics.ObserveStore(driverName, "replace", err)
	if err != nil {
		return fmt.Errorf("réécriture de %s: %w", collection, err)
	}
	return nil
}

func (s *DocumentStore) replace(ctx context.Context, collection string, docs []store.Document) error {
	if _, err := s.coll.DeleteMany(ctx, bson.M{"collection": collection}); err != nil {
		return err
	}
	if len(docs) == 0 {
		return nil
	}

	now := time.Now().UTC()
	records := make([]interface{}, 0, len(docs))
	for _, doc := range docs {
		records = append(records, documentRecord{
			Collection: collection,
			DocID:      doc.ID,
			Payload:    string(doc.Payload),
			CreatedAt:  now,
			UpdatedAt:  now,
		})
	}
	_, err := s.coll.InsertMany(ctx, records, options.InsertMany().SetOrdered(true))
	return err
}
