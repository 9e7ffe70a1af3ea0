package evidence

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoRepository is the production alternative backend for the evidence
// collection.
type MongoRepository struct {
	col *mongo.Collection
}

func NewMongoRepository(col *mongo.Collection) *MongoRepository {
	return &MongoRepository{col: col}
}

type evidenceDoc struct {
	ID         string    `bson:"id"`
	InvoiceID  string    `bson:"cfdiUuid"`
	Filename   string    `bson:"filename"`
	SHA256     string    `bson:"hash"`
	UploadedAt time.Time `bson:"uploadedAt"`
}

func (r *MongoRepository) Append(ctx context.Context, ev *Evidence) error {
	_, err := r.col.InsertOne(ctx, evidenceDoc{
		ID:         ev.ID,
		InvoiceID:  ev.InvoiceID,
		Filename:   ev.Filename,
		SHA256:     ev.SHA256,
		UploadedAt: ev.UploadedAt,
	})
	return err
}

func (r *MongoRepository) List(ctx context.Context) ([]Evidence, error) {
	return r.find(ctx, bson.M{})
}

func (r *MongoRepository) ListByInvoice(ctx context.Context, invoiceID string) ([]Evidence, error) {
	return r.find(ctx, bson.M{"cfdiUuid": invoiceID})
}

func (r *MongoRepository) find(ctx context.Context, filter bson.M) ([]Evidence, error) {
	cur, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []Evidence{}
	for cur.Next(ctx) {
		var doc evidenceDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		out = append(out, Evidence{
			ID:         doc.ID,
			InvoiceID:  doc.InvoiceID,
			Filename:   doc.Filename,
			SHA256:     doc.SHA256,
			UploadedAt: doc.UploadedAt,
		})
	}
	return out, cur.Err()
}
