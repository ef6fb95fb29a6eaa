package mongodb

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"gestion-projets-core/internal/shared/store"
)

func namespace(mt *mtest.T) string {
	return mt.Coll.Database().Name() + "." + mt.Coll.Name()
}

func TestDocumentStore(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("All renvoie les payloads dans l'ordre", func(mt *mtest.T) {
		s := &DocumentStore{coll: mt.Coll}
		mt.AddMockResponses(mtest.CreateCursorResponse(0, namespace(mt), mtest.FirstBatch,
			bson.D{
				{Key: "_id", Value: primitive.NewObjectID()},
				{Key: "collection", Value: "marches"},
				{Key: "doc_id", Value: "1"},
				{Key: "payload", Value: `{"id":1, "objet":"Voirie"}`},
			},
			bson.D{
				{Key: "_id", Value: primitive.NewObjectID()},
				{Key: "collection", Value: "marches"},
				{Key: "doc_id", Value: "2"},
				{Key: "payload", Value: `{"id":2}`},
			},
		))

		docs, err := s.All(context.Background(), "marches")
		require.NoError(mt, err)
		require.Len(mt, docs, 2)
		assert.Equal(mt, store.Document{ID: "1", Payload: []byte(`{"id":1, "objet":"Voirie"}`)}, docs[0])
		assert.Equal(mt, "2", docs[1].ID)
	})

	mt.Run("Find absent", func(mt *mtest.T) {
		s := &DocumentStore{coll: mt.Coll}
		mt.AddMockResponses(mtest.CreateCursorResponse(0, namespace(mt), mtest.FirstBatch))

		_, err := s.Find(context.Background(), "marches", "9")
		assert.ErrorIs(mt, err, store.ErrNotFound)
	})

	mt.Run("Save puis Remove", func(mt *mtest.T) {
		s := &DocumentStore{coll: mt.Coll}
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}),
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}),
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}),
		)

		ctx := context.Background()
		require.NoError(mt, s.Save(ctx, "marches", store.Document{ID: "1", Payload: []byte(`{"id":1}`)}))
		require.NoError(mt, s.Remove(ctx, "marches", "1"))
		assert.ErrorIs(mt, s.Remove(ctx, "marches", "1"), store.ErrNotFound)
	})

	mt.Run("Save remonte les erreurs d'écriture", func(mt *mtest.T) {
		s := &DocumentStore{coll: mt.Coll}
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index: 0, Code: 11000, Message: "duplicate key",
		}))

		err := s.Save(context.Background(), "marches", store.Document{ID: "1", Payload: []byte(`{}`)})
		assert.Error(mt, err)
	})

	mt.Run("Replace", func(mt *mtest.T) {
		s := &DocumentStore{coll: mt.Coll}
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 3}),
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 2}),
		)

		err := s.Replace(context.Background(), "marches", []store.Document{
			{ID: "1", Payload: []byte(`{"id":1}`)},
			{ID: "2", Payload: []byte(`{"id":2}`)},
		})
		assert.NoError(mt, err)
	})

	mt.Run("EnsureSchema", func(mt *mtest.T) {
		s := &DocumentStore{coll: mt.Coll}
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		assert.NoError(mt, s.EnsureSchema(context.Background()))
	})
}
