package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/avvvet/pickup-services/internal/itemsvc/models"
)

// ErrInvalidInput marks a request body that is not a single item object.
var ErrInvalidInput = errors.New("invalid input")

type ItemRepository interface {
	FindAll(ctx context.Context) ([]models.Item, error)
	Create(ctx context.Context, item *models.Item) error
}

type ItemService struct {
	itemStore ItemRepository
}

func NewItemService(itemStore ItemRepository) *ItemService {
	return &ItemService{itemStore: itemStore}
}

func (s *ItemService) ListItems(ctx context.Context) ([]models.Item, error) {
	return s.itemStore.FindAll(ctx)
}

// CreateItem decodes body and persists it. Decode failures wrap
// ErrInvalidInput and never reach the store.
func (s *ItemService) CreateItem(ctx context.Context, body []byte) (*models.Item, error) {
	item, err := DecodeItem(body)
	if err != nil {
		return nil, err
	}

	if err := s.itemStore.Create(ctx, item); err != nil {
		return nil, err
	}

	return item, nil
}

type itemInput struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// DecodeItem accepts exactly one JSON object whose name and description are
// strings or null. Other fields are dropped.
func DecodeItem(body []byte) (*models.Item, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, fmt.Errorf("%w: body must be a JSON object", ErrInvalidInput)
	}

	dec := json.NewDecoder(bytes.NewReader(trimmed))
	var in itemInput
	if err := dec.Decode(&in); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("%w: unexpected data after object", ErrInvalidInput)
	}

	return &models.Item{
		Name:        in.Name,
		Description: in.Description,
	}, nil
}
