package invoices

import (
	"context"
	"encoding/json"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/arkanum/sentinel/internal/cfdi"
)

// MongoRepository is the production alternative to the JSON-file store.
// Invoices are persisted as their canonical JSON encoding (decimal amounts
// as strings) so the export round-trip stays byte-stable regardless of the
// backend.
type MongoRepository struct {
	col *mongo.Collection
}

func NewMongoRepository(col *mongo.Collection) *MongoRepository {
	return &MongoRepository{col: col}
}

type invoiceDoc struct {
	UUID string `bson:"uuid"`
	Body string `bson:"body"`
}

func (r *MongoRepository) Append(ctx context.Context, inv *cfdi.Invoice) error {
	b, err := json.Marshal(inv)
	if err != nil {
		return fmt.Errorf("encode invoice %s: %w", inv.ID, err)
	}
	_, err = r.col.InsertOne(ctx, invoiceDoc{UUID: inv.ID, Body: string(b)})
	return err
}

func (r *MongoRepository) List(ctx context.Context) ([]cfdi.Invoice, error) {
	cur, err := r.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.M{"_id": 1}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []cfdi.Invoice{}
	for cur.Next(ctx) {
		var doc invoiceDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		var inv cfdi.Invoice
		if err := json.Unmarshal([]byte(doc.Body), &inv); err != nil {
			return nil, fmt.Errorf("decode invoice %s: %w", doc.UUID, err)
		}
		out = append(out, inv)
	}
	return out, cur.Err()
}
