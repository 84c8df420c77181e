package store

import (
	"context"
	"fmt"

	"github.com/avvvet/pickup-services/internal/itemsvc/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const ItemsCollection = "items"

type ItemStore struct {
	coll *mongo.Collection
}

func NewItemStore(db *mongo.Database) *ItemStore {
	return &ItemStore{coll: db.Collection(ItemsCollection)}
}

// FindAll returns every stored item, unfiltered and unpaginated.
func (s *ItemStore) FindAll(ctx context.Context) ([]models.Item, error) {
	cursor, err := s.coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("failed to find items: %w", err)
	}
	defer cursor.Close(ctx)

	items := []models.Item{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("failed to decode items: %w", err)
	}
	if items == nil {
		items = []models.Item{}
	}

	return items, nil
}

// Create inserts item and sets its ID.
func (s *ItemStore) Create(ctx context.Context, item *models.Item) error {
	if item.ID.IsZero() {
		item.ID = primitive.NewObjectID()
	}

	if _, err := s.coll.InsertOne(ctx, item); err != nil {
		item.ID = primitive.NilObjectID
		return fmt.Errorf("failed to insert item: %w", err)
	}

	return nil
}
