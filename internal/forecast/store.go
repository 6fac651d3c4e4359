package forecast

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"weatherapp/internal/config"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Store persists forecasts keyed by their geographic point.
type Store interface {
	// Insert adds a new document, assigning an ID if the forecast has none.
	Insert(ctx context.Context, f *Forecast) error
	// DeleteByPoint removes the document at p and reports whether one was removed.
	DeleteByPoint(ctx context.Context, p orb.Point) (bool, error)
	// ReplaceByPoint overwrites the document whose coordinates equal f's and reports whether it changed.
	ReplaceByPoint(ctx context.Context, f *Forecast) (bool, error)
	// GetByPoint returns the document at p or ErrNotFound.
	GetByPoint(ctx context.Context, p orb.Point) (*Forecast, error)
	// GetByID returns the document with the given hex id, ErrInvalidID or ErrNotFound.
	GetByID(ctx context.Context, id string) (*Forecast, error)
	// List returns every stored document in natural order.
	List(ctx context.Context) ([]Forecast, error)
}

// MongoStore implements Store on a MongoDB collection.
type MongoStore struct {
	client     *mongo.Client
	collection *mongo.Collection
	logger     *slog.Logger
}

// NewMongoStore connects to MongoDB, verifies the connection and returns a store
// on the configured collection. Call Close to disconnect.
func NewMongoStore(ctx context.Context, cfg config.MongoDBConfig, logger *slog.Logger) (*MongoStore, error) {
	connectCtx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.URL))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	if err := client.Ping(connectCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	store := NewMongoStoreWithCollection(client.Database(cfg.Database).Collection(cfg.Collection), logger)
	store.client = client

	store.logger.Info("connected to mongodb",
		"database", cfg.Database,
		"collection", cfg.Collection,
	)

	return store, nil
}

// NewMongoStoreWithCollection wraps an existing collection. The caller keeps ownership of the client.
func NewMongoStoreWithCollection(collection *mongo.Collection, logger *slog.Logger) *MongoStore {
	return &MongoStore{
		collection: collection,
		logger:     logger.With("component", "forecast-store"),
	}
}

// EnsureIndexes creates the unique 2dsphere index on location.
func (s *MongoStore) EnsureIndexes(ctx context.Context) error {
	model := mongo.IndexModel{
		Keys:    bson.D{{Key: "location", Value: "2dsphere"}},
		Options: options.Index().SetUnique(true).SetName("location_2dsphere_unique"),
	}

	name, err := s.collection.Indexes().CreateOne(ctx, model)
	if err != nil {
		return fmt.Errorf("failed to create location index: %w", err)
	}

	s.logger.Debug("ensured index", "index", name)
	return nil
}

// Ping checks that the primary is reachable.
func (s *MongoStore) Ping(ctx context.Context) error {
	return s.collection.Database().Client().Ping(ctx, readpref.Primary())
}

// Close disconnects the client if this store opened it.
func (s *MongoStore) Close(ctx context.Context) error {
	if s.client == nil {
		return nil
	}
	return s.client.Disconnect(ctx)
}

func (s *MongoStore) Insert(ctx context.Context, f *Forecast) error {
	if f.ID.IsZero() {
		f.ID = primitive.NewObjectID()
	}

	if _, err := s.collection.InsertOne(ctx, f); err != nil {
		s.logger.Error("failed to insert forecast",
			"id", f.ID.Hex(),
			"longitude", f.Point().Lon(),
			"latitude", f.Point().Lat(),
			"error", err,
		)
		return fmt.Errorf("%w: insert: %v", ErrStoreFault, err)
	}

	return nil
}

func (s *MongoStore) DeleteByPoint(ctx context.Context, p orb.Point) (bool, error) {
	res, err := s.collection.DeleteOne(ctx, intersectsFilter(p))
	deleted, err := deleteOutcome(res, err)
	if err != nil {
		s.logger.Error("failed to delete forecast",
			"longitude", p.Lon(),
			"latitude", p.Lat(),
			"error", err,
		)
	}
	return deleted, err
}

func (s *MongoStore) ReplaceByPoint(ctx context.Context, f *Forecast) (bool, error) {
	p := f.Point()
	filter := bson.D{{Key: "location.coordinates", Value: bson.A{p.Lon(), p.Lat()}}}

	res, err := s.collection.ReplaceOne(ctx, filter, f)
	updated, err := replaceOutcome(res, err)
	if err != nil {
		s.logger.Error("failed to replace forecast",
			"id", f.ID.Hex(),
			"longitude", p.Lon(),
			"latitude", p.Lat(),
			"error", err,
		)
	}
	return updated, err
}

func (s *MongoStore) GetByPoint(ctx context.Context, p orb.Point) (*Forecast, error) {
	return s.findOne(ctx, intersectsFilter(p))
}

func (s *MongoStore) GetByID(ctx context.Context, id string) (*Forecast, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	return s.findOne(ctx, bson.D{{Key: "_id", Value: oid}})
}

func (s *MongoStore) List(ctx context.Context) ([]Forecast, error) {
	cursor, err := s.collection.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("%w: list: %v", ErrStoreFault, err)
	}

	forecasts := make([]Forecast, 0)
	if err := cursor.All(ctx, &forecasts); err != nil {
		return nil, fmt.Errorf("%w: decode: %v", ErrStoreFault, err)
	}

	return forecasts, nil
}

func (s *MongoStore) findOne(ctx context.Context, filter bson.D) (*Forecast, error) {
	var f Forecast
	if err := s.collection.FindOne(ctx, filter).Decode(&f); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: find: %v", ErrStoreFault, err)
	}
	return &f, nil
}

// intersectsFilter matches documents whose location intersects p.
func intersectsFilter(p orb.Point) bson.D {
	return bson.D{{
		Key: "location",
		Value: bson.D{{
			Key:   "$geoIntersects",
			Value: bson.D{{Key: "$geometry", Value: geojson.Point(p)}},
		}},
	}}
}

// deleteOutcome interprets a DeleteOne result: one removed is true, none is false,
// anything else is a store fault.
func deleteOutcome(res *mongo.DeleteResult, err error) (bool, error) {
	if err != nil {
		if errors.Is(err, mongo.ErrUnacknowledgedWrite) {
			return false, fmt.Errorf("%w: delete not acknowledged", ErrStoreFault)
		}
		return false, fmt.Errorf("%w: delete: %v", ErrStoreFault, err)
	}
	if res == nil {
		return false, fmt.Errorf("%w: delete returned no result", ErrStoreFault)
	}

	switch res.DeletedCount {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, fmt.Errorf("%w: delete removed %d documents", ErrStoreFault, res.DeletedCount)
	}
}

// replaceOutcome interprets a ReplaceOne result: a nonzero modified count is true.
func replaceOutcome(res *mongo.UpdateResult, err error) (bool, error) {
	if err != nil {
		if errors.Is(err, mongo.ErrUnacknowledgedWrite) {
			return false, fmt.Errorf("%w: replace not acknowledged", ErrStoreFault)
		}
		return false, fmt.Errorf("%w: replace: %v", ErrStoreFault, err)
	}
	if res == nil {
		return false, fmt.Errorf("%w: replace returned no result", ErrStoreFault)
	}
	return res.ModifiedCount > 0, nil
}
