package memdb_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/brainsync/pkg/docstore"
	"github.com/aussiebroadwan/brainsync/pkg/docstore/memdb"
)

func seed(t *testing.T, coll docstore.Collection, docs ...docstore.Document) []string {
	t.Helper()
	ids := make([]string, 0, len(docs))
	for _, d := range docs {
		id, err := coll.InsertOne(context.Background(), d)
		require.NoError(t, err)
		ids = append(ids, id)
	}
	return ids
}

func names(docs []docstore.Document) []string {
	out := make([]string, 0, len(docs))
	for _, d := range docs {
		out = append(out, d["name"].(string))
	}
	return out
}

func TestInsertOne_AssignsCounterIDs(t *testing.T) {
	db := memdb.New()
	users := db.Collection("users")

	ids := seed(t, users, docstore.Document{"name": "a"}, docstore.Document{"name": "b"})
	require.Equal(t, []string{"1", "2"}, ids)

	// Counters are per collection.
	other := seed(t, db.Collection("translations"), docstore.Document{"name": "x"})
	require.Equal(t, []string{"1"}, other)

	// The same collection handle is returned on every call.
	require.Same(t, users, db.Collection("users"))
}

func TestInsertOne_StoresCopy(t *testing.T) {
	ctx := context.Background()
	coll := memdb.New().Collection("c")

	doc := docstore.Document{"name": "original", "_id": "ignored"}
	id, err := coll.InsertOne(ctx, doc)
	require.NoError(t, err)
	require.Equal(t, "1", id)
	doc["name"] = "mutated"

	got, err := coll.FindOne(ctx, docstore.ByID(id))
	require.NoError(t, err)
	require.Equal(t, "original", got["name"])
	require.Equal(t, "1", got.ID())
}

func TestFind_OrderAndLimit(t *testing.T) {
	ctx := context.Background()
	coll := memdb.New().Collection("c")
	seed(t, coll,
		docstore.Document{"name": "a"},
		docstore.Document{"name": "b"},
		docstore.Document{"name": "c"},
	)

	t.Run("unsorted is newest first", func(t *testing.T) {
		docs, err := coll.Find(ctx, docstore.All()).All(ctx, 0)
		require.NoError(t, err)
		require.Equal(t, []string{"c", "b", "a"}, names(docs))
	})

	t.Run("descending", func(t *testing.T) {
		docs, err := coll.Find(ctx, docstore.All()).Sort("created_at", docstore.Descending).All(ctx, 0)
		require.NoError(t, err)
		require.Equal(t, []string{"c", "b", "a"}, names(docs))
	})

	t.Run("ascending", func(t *testing.T) {
		docs, err := coll.Find(ctx, docstore.All()).Sort("created_at", docstore.Ascending).All(ctx, 0)
		require.NoError(t, err)
		require.Equal(t, []string{"a", "b", "c"}, names(docs))
	})

	t.Run("limit", func(t *testing.T) {
		docs, err := coll.Find(ctx, docstore.All()).Sort("created_at", docstore.Descending).All(ctx, 1)
		require.NoError(t, err)
		require.Equal(t, []string{"c"}, names(docs))
	})

	t.Run("negative limit is unlimited", func(t *testing.T) {
		docs, err := coll.Find(ctx, docstore.All()).All(ctx, -5)
		require.NoError(t, err)
		require.Len(t, docs, 3)
	})

	t.Run("no match yields empty slice", func(t *testing.T) {
		docs, err := coll.Find(ctx, docstore.Eq("name", "zzz")).All(ctx, 0)
		require.NoError(t, err)
		require.NotNil(t, docs)
		require.Empty(t, docs)
	})
}

func TestFind_OrFilter(t *testing.T) {
	ctx := context.Background()
	coll := memdb.New().Collection("translations")
	seed(t, coll,
		docstore.Document{"name": "hello", "source_text": "Hello World", "braille_output": nil},
		docstore.Document{"name": "bye", "source_text": "goodbye", "braille_output": nil},
		docstore.Document{"name": "braille", "source_text": nil, "braille_output": "say hello"},
	)

	filter := docstore.Or(
		docstore.Match{"source_text": "hello"},
		docstore.Match{"braille_output": "hello"},
	)
	docs, err := coll.Find(ctx, filter).Sort("created_at", docstore.Descending).All(ctx, 0)
	require.NoError(t, err)
	require.Equal(t, []string{"braille", "hello"}, names(docs))
}

func TestFindOne(t *testing.T) {
	ctx := context.Background()
	coll := memdb.New().Collection("users")
	seed(t, coll,
		docstore.Document{"name": "first", "email": "dup@example.com"},
		docstore.Document{"name": "second", "email": "dup@example.com"},
	)

	got, err := coll.FindOne(ctx, docstore.Eq("email", "dup@example.com"))
	require.NoError(t, err)
	require.Equal(t, "second", got["name"])

	_, err = coll.FindOne(ctx, docstore.Eq("email", "nobody@example.com"))
	require.ErrorIs(t, err, docstore.ErrNoDocuments)
}

func TestUpdateOne(t *testing.T) {
	ctx := context.Background()
	coll := memdb.New().Collection("c")
	ids := seed(t, coll,
		docstore.Document{"name": "a", "tag": "x"},
		docstore.Document{"name": "b", "tag": "x"},
	)

	n, err := coll.UpdateOne(ctx, docstore.Eq("tag", "x"), docstore.Document{"tag": "y", "_id": "99"})
	require.NoError(t, err)
	require.EqualValues(t, 1, n)

	first, err := coll.FindOne(ctx, docstore.ByID(ids[0]))
	require.NoError(t, err)
	require.Equal(t, "y", first["tag"])
	require.Equal(t, ids[0], first.ID())

	second, err := coll.FindOne(ctx, docstore.ByID(ids[1]))
	require.NoError(t, err)
	require.Equal(t, "x", second["tag"])

	n, err = coll.UpdateOne(ctx, docstore.ByID("404"), docstore.Document{"tag": "z"})
	require.NoError(t, err)
	require.Zero(t, n)
}

func TestDeleteOne(t *testing.T) {
	ctx := context.Background()
	coll := memdb.New().Collection("c")
	ids := seed(t, coll, docstore.Document{"name": "a"}, docstore.Document{"name": "b"})

	n, err := coll.DeleteOne(ctx, docstore.ByID(ids[0]))
	require.NoError(t, err)
	require.EqualValues(t, 1, n)

	n, err = coll.DeleteOne(ctx, docstore.ByID(ids[0]))
	require.NoError(t, err)
	require.Zero(t, n)

	docs, err := coll.Find(ctx, docstore.All()).All(ctx, 0)
	require.NoError(t, err)
	require.Equal(t, []string{"b"}, names(docs))

	// Identifiers are not reused after a delete.
	next := seed(t, coll, docstore.Document{"name": "c"})
	require.Equal(t, []string{"3"}, next)
}

func TestCountDocuments(t *testing.T) {
	ctx := context.Background()
	coll := memdb.New().Collection("c")
	seed(t, coll,
		docstore.Document{"name": "a", "kind": "text"},
		docstore.Document{"name": "b", "kind": "image"},
		docstore.Document{"name": "c", "kind": "text"},
	)

	n, err := coll.CountDocuments(ctx, docstore.All())
	require.NoError(t, err)
	require.EqualValues(t, 3, n)

	n, err = coll.CountDocuments(ctx, docstore.Eq("kind", "text"))
	require.NoError(t, err)
	require.EqualValues(t, 2, n)
}

func TestAggregate_FirstOccurrenceOrder(t *testing.T) {
	ctx := context.Background()
	coll := memdb.New().Collection("translations")
	seed(t, coll,
		docstore.Document{"name": "1", "translation_type": "image"},
		docstore.Document{"name": "2", "translation_type": "text"},
		docstore.Document{"name": "3", "translation_type": "image"},
		docstore.Document{"name": "4"},
	)

	groups, err := coll.Aggregate(ctx, "translation_type")
	require.NoError(t, err)
	require.Equal(t, []docstore.GroupCount{
		{Key: "image", Count: 2},
		{Key: "text", Count: 1},
		{Key: nil, Count: 1},
	}, groups)

	empty, err := memdb.New().Collection("none").Aggregate(ctx, "translation_type")
	require.NoError(t, err)
	require.Empty(t, empty)
}

func TestConcurrentInserts(t *testing.T) {
	ctx := context.Background()
	db := memdb.New()
	coll := db.Collection("c")

	const workers, perWorker = 8, 50
	var wg sync.WaitGroup
	for w := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range perWorker {
				_, err := coll.InsertOne(ctx, docstore.Document{"name": fmt.Sprintf("%d-%d", w, i)})
				require.NoError(t, err)
				_, err = coll.Find(ctx, docstore.All()).All(ctx, 5)
				require.NoError(t, err)
			}
		}()
	}
	wg.Wait()

	n, err := coll.CountDocuments(ctx, docstore.All())
	require.NoError(t, err)
	require.EqualValues(t, workers*perWorker, n)

	docs, err := coll.Find(ctx, docstore.All()).All(ctx, 0)
	require.NoError(t, err)
	seen := make(map[string]struct{}, len(docs))
	for _, d := range docs {
		seen[d.ID()] = struct{}{}
	}
	require.Len(t, seen, workers*perWorker)
}

func TestPingAndClose(t *testing.T) {
	db := memdb.New()
	require.NoError(t, db.Ping(context.Background()))
	require.NoError(t, db.Close(context.Background()))
}
