// Package converter maps domain entities to the BSON documents stored in
// MongoDB and back. Field names follow the wire JSON (camelCase).
package converter

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ProductDocument struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	Description string             `bson:"description"`
	Price       float64            `bson:"price"`
	Category    string             `bson:"category"`
	Image       string             `bson:"image"`
	InStock     bool               `bson:"inStock"`
	Featured    bool               `bson:"featured"`
	CreatedAt   time.Time          `bson:"createdAt"`
}

type BookingDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	Phone     string             `bson:"phone"`
	Email     *string            `bson:"email"`
	Service   string             `bson:"service"`
	Date      string             `bson:"date"`
	Time      string             `bson:"time"`
	Message   *string            `bson:"message"`
	Status    string             `bson:"status"`
	CreatedAt time.Time          `bson:"createdAt"`
}

type ReviewDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	Rating    int                `bson:"rating"`
	Comment   string             `bson:"comment"`
	Approved  bool               `bson:"approved"`
	CreatedAt time.Time          `bson:"createdAt"`
}

type ServiceDocument struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	Description string             `bson:"description"`
	Duration    string             `bson:"duration"`
	Price       float64            `bson:"price"`
	Image       string             `bson:"image"`
	Popular     bool               `bson:"popular"`
}

type GalleryDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Image     string             `bson:"image"`
	Caption   *string            `bson:"caption"`
	CreatedAt time.Time          `bson:"createdAt"`
}
