package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Item is a generic named record. Name and Description are null when the
// client left them out.
type Item struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name        *string            `json:"name" bson:"name"`
	Description *string            `json:"description" bson:"description"`
}
