// Package mongodb is the MongoDB docstore driver.
package mongodb

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"slices"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/aussiebroadwan/brainsync/pkg/docstore"
)

// DefaultConnectTimeout bounds the startup handshake.
const DefaultConnectTimeout = 5 * time.Second

// ErrMissingURI indicates the connection string is not provided.
var ErrMissingURI = errors.New("mongodb: connection URI is required")

// Options configures the MongoDB driver.
type Options struct {
	URI            string
	Database       string
	ConnectTimeout time.Duration
}

// DB is a docstore.Database backed by a MongoDB database.
type DB struct {
	client *mongo.Client
	db     *mongo.Database
	name   string
	uri    string
}

var _ docstore.Database = (*DB)(nil)

// Connect dials MongoDB and pings the primary. Failing to reach the server
// within the connect timeout is reported as docstore.ErrUnavailable; there is
// no retry.
func Connect(ctx context.Context, opts Options) (*DB, error) {
	if opts.URI == "" {
		return nil, ErrMissingURI
	}
	timeout := opts.ConnectTimeout
	if timeout <= 0 {
		timeout = DefaultConnectTimeout
	}

	clientOpts := options.Client().
		ApplyURI(opts.URI).
		SetConnectTimeout(timeout).
		SetServerSelectionTimeout(timeout)

	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return nil, fmt.Errorf("%w: connect: %w", docstore.ErrUnavailable, err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("%w: ping: %w", docstore.ErrUnavailable, err)
	}

	return &DB{
		client: client,
		db:     client.Database(opts.Database),
		name:   opts.Database,
		uri:    opts.URI,
	}, nil
}

func (d *DB) Collection(name string) docstore.Collection {
	return &collection{coll: d.db.Collection(name)}
}

func (d *DB) Ping(ctx context.Context) error {
	return d.client.Ping(ctx, readpref.Primary())
}

func (d *DB) Close(ctx context.Context) error {
	return d.client.Disconnect(ctx)
}

type collection struct {
	coll *mongo.Collection
}

func (c *collection) InsertOne(ctx context.Context, doc docstore.Document) (string, error) {
	payload := bson.M{}
	for k, v := range doc {
		if k == docstore.IDField {
			continue
		}
		payload[k] = v
	}

	res, err := c.coll.InsertOne(ctx, payload)
	if err != nil {
		return "", mapWriteError(err)
	}
	return idString(res.InsertedID), nil
}

func (c *collection) Find(_ context.Context, filter docstore.Filter) docstore.Cursor {
	return &cursor{coll: c.coll, filter: toBSON(filter)}
}

func (c *collection) FindOne(ctx context.Context, filter docstore.Filter) (docstore.Document, error) {
	// ObjectIDs embed their creation time, so _id descending is newest-first.
	opts := options.FindOne().SetSort(bson.D{{Key: docstore.IDField, Value: -1}})

	var raw bson.M
	err := c.coll.FindOne(ctx, toBSON(filter), opts).Decode(&raw)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, docstore.ErrNoDocuments
	}
	if err != nil {
		return nil, err
	}
	return fromBSON(raw), nil
}

func (c *collection) UpdateOne(ctx context.Context, filter docstore.Filter, set docstore.Document) (int64, error) {
	fields := bson.M{}
	for k, v := range set {
		if k == docstore.IDField {
			continue
		}
		fields[k] = v
	}
	if len(fields) == 0 {
		n, err := c.coll.CountDocuments(ctx, toBSON(filter), options.Count().SetLimit(1))
		return n, err
	}

	res, err := c.coll.UpdateOne(ctx, toBSON(filter), bson.M{"$set": fields})
	if err != nil {
		return 0, mapWriteError(err)
	}
	return res.MatchedCount, nil
}

func (c *collection) DeleteOne(ctx context.Context, filter docstore.Filter) (int64, error) {
	res, err := c.coll.DeleteOne(ctx, toBSON(filter))
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

func (c *collection) CountDocuments(ctx context.Context, filter docstore.Filter) (int64, error) {
	return c.coll.CountDocuments(ctx, toBSON(filter))
}

func (c *collection) Aggregate(ctx context.Context, field string) ([]docstore.GroupCount, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$" + field},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
	}

	cur, err := c.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var rows []struct {
		Key   any   `bson:"_id"`
		Count int64 `bson:"count"`
	}
	if err := cur.All(ctx, &rows); err != nil {
		return nil, err
	}

	out := make([]docstore.GroupCount, 0, len(rows))
	for _, row := range rows {
		out = append(out, docstore.GroupCount{Key: row.Key, Count: row.Count})
	}
	return out, nil
}

type cursor struct {
	coll   *mongo.Collection
	filter bson.M
	sort   bson.D
}

func (cur *cursor) Sort(field string, direction int) docstore.Cursor {
	next := *cur
	dir := 1
	if direction < 0 {
		dir = -1
	}
	next.sort = append(slices.Clone(cur.sort), bson.E{Key: field, Value: dir})
	return &next
}

func (cur *cursor) All(ctx context.Context, limit int) ([]docstore.Document, error) {
	opts := options.Find()
	if len(cur.sort) > 0 {
		opts.SetSort(cur.sort)
	}
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}

	res, err := cur.coll.Find(ctx, cur.filter, opts)
	if err != nil {
		return nil, err
	}
	defer res.Close(ctx)

	var raw []bson.M
	if err := res.All(ctx, &raw); err != nil {
		return nil, err
	}

	out := make([]docstore.Document, 0, len(raw))
	for _, r := range raw {
		out = append(out, fromBSON(r))
	}
	return out, nil
}

// toBSON translates a docstore filter into a MongoDB query document.
// Substring patterns are quoted so they are never interpreted as regular
// expressions.
func toBSON(f docstore.Filter) bson.M {
	if len(f.AnyOf) > 0 {
		or := bson.A{}
		for _, cond := range f.AnyOf {
			fields := make([]string, 0, len(cond))
			for field := range cond {
				fields = append(fields, field)
			}
			slices.Sort(fields)
			for _, field := range fields {
				or = append(or, bson.M{field: bson.M{
					"$regex":   regexp.QuoteMeta(cond[field]),
					"$options": "i",
				}})
			}
		}
		return bson.M{"$or": or}
	}

	out := bson.M{}
	for k, v := range f.Equals {
		if k == docstore.IDField {
			if s, ok := v.(string); ok {
				if oid, err := primitive.ObjectIDFromHex(s); err == nil {
					v = oid
				}
			}
		}
		out[k] = v
	}
	return out
}

// fromBSON normalises driver types so repositories see the same shapes the
// in-memory driver produces.
func fromBSON(raw bson.M) docstore.Document {
	doc := make(docstore.Document, len(raw))
	for k, v := range raw {
		switch val := v.(type) {
		case primitive.ObjectID:
			doc[k] = val.Hex()
		case primitive.DateTime:
			doc[k] = val.Time().UTC()
		default:
			doc[k] = val
		}
	}
	return doc
}

func idString(id any) string {
	if oid, ok := id.(primitive.ObjectID); ok {
		return oid.Hex()
	}
	return fmt.Sprint(id)
}

func mapWriteError(err error) error {
	if mongo.IsDuplicateKeyError(err) {
		return fmt.Errorf("%w: %w", docstore.ErrDuplicateKey, err)
	}
	return err
}
