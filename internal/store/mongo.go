package store

import (
	"context"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type mongoAdapter struct {
	db *mongo.Database
}

func NewMongoAdapter(db *mongo.Database) Adapter {
	return &mongoAdapter{db: db}
}

// Connect dials the cluster and verifies it with a ping before returning.
func Connect(ctx context.Context, uri, dbName string) (*mongo.Client, *mongo.Database, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, nil, err
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, nil, err
	}

	return client, client.Database(dbName), nil
}

func (a *mongoAdapter) Create(ctx context.Context, collection string, doc Record) (string, error) {
	now := time.Now().UTC()

	insert := bson.M{}
	for k, v := range doc {
		insert[k] = v
	}
	insert["createdAt"] = now
	insert["updatedAt"] = now

	res, err := a.db.Collection(collection).InsertOne(ctx, insert)
	if err != nil {
		slog.Info(err.Error())
		return "", err
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", mongo.ErrNilDocument
	}
	return oid.Hex(), nil
}

func (a *mongoAdapter) List(ctx context.Context, collection string, q Query) ([]Record, error) {
	filter := bson.M{}
	for k, v := range q.Filters {
		filter[k] = v
	}

	opts := options.Find()
	if q.OrderBy != "" {
		dir := 1
		if q.Descending {
			dir = -1
		}
		opts.SetSort(bson.D{{Key: q.OrderBy, Value: dir}})
	}
	if q.Limit > 0 {
		opts.SetLimit(q.Limit)
	}

	cursor, err := a.db.Collection(collection).Find(ctx, filter, opts)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	defer cursor.Close(ctx)

	var raw []bson.M
	if err := cursor.All(ctx, &raw); err != nil {
		slog.Info(err.Error())
		return nil, err
	}

	records := make([]Record, 0, len(raw))
	for _, doc := range raw {
		records = append(records, fromBSON(doc))
	}
	return records, nil
}

func (a *mongoAdapter) Get(ctx context.Context, collection string, id string) (Record, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	var doc bson.M
	err = a.db.Collection(collection).FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		slog.Info(err.Error())
		return nil, err
	}
	return fromBSON(doc), nil
}

func (a *mongoAdapter) Update(ctx context.Context, collection string, id string, partial Record) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	set := bson.M{}
	for k, v := range partial {
		set[k] = v
	}
	set["updatedAt"] = time.Now().UTC()

	res, err := a.db.Collection(collection).UpdateByID(ctx, oid, bson.M{"$set": set})
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (a *mongoAdapter) Delete(ctx context.Context, collection string, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	_, err = a.db.Collection(collection).DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}

// fromBSON flattens a decoded document into a Record, replacing the _id key
// with its hex form under "id" and unwrapping driver-specific value types.
func fromBSON(doc bson.M) Record {
	record := Record{}
	for k, v := range doc {
		if k == "_id" {
			if oid, ok := v.(primitive.ObjectID); ok {
				record["id"] = oid.Hex()
			}
			continue
		}
		record[k] = fromBSONValue(v)
	}
	return record
}

func fromBSONValue(v any) any {
	switch val := v.(type) {
	case primitive.DateTime:
		return val.Time().UTC()
	case primitive.A:
		items := make([]any, 0, len(val))
		for _, item := range val {
			items = append(items, fromBSONValue(item))
		}
		return items
	case bson.M:
		nested := map[string]any{}
		for k, item := range val {
			nested[k] = fromBSONValue(item)
		}
		return nested
	case bson.D:
		nested := map[string]any{}
		for _, elem := range val {
			nested[elem.Key] = fromBSONValue(elem.Value)
		}
		return nested
	default:
		return v
	}
}
