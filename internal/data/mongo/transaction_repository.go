// Package mongo provides the MongoDB implementation of the transaction
// repository. It owns the document schema, including the migration of legacy
// documents that stored decimal hours instead of canonical minutes.
package mongo

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ueberstunden/overtime-ledger/internal/domain/transaction"
	"github.com/ueberstunden/overtime-ledger/internal/ledger"
)

const (
	// TransactionCollectionName is the name of the transaction collection in MongoDB
	TransactionCollectionName = "transactions"
)

// document is the stored shape of a transaction. Field names match the
// collection as written by the first version of the application: kind is
// stored under "type", and legacy documents carry a decimal "hours" value
// with no "minutes" field.
type document struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Date        string             `bson:"date"`
	Kind        string             `bson:"type"`
	Minutes     *int               `bson:"minutes,omitempty"`
	Hours       *float64           `bson:"hours,omitempty"` // legacy duration representation
	Description string             `bson:"description"`
	CreatedAt   time.Time          `bson:"createdAt"`
}

// toDomain converts a stored document into a domain transaction. This is the
// single place legacy hours are migrated to canonical minutes; past it the
// two representations can never disagree.
func (d *document) toDomain() *transaction.Transaction {
	minutes := 0
	switch {
	case d.Minutes != nil:
		minutes = *d.Minutes
	case d.Hours != nil:
		minutes = ledger.MinutesFromHours(*d.Hours)
	}

	return &transaction.Transaction{
		ID:          d.ID.Hex(),
		Date:        d.Date,
		Kind:        transaction.Kind(d.Kind),
		Minutes:     minutes,
		Description: d.Description,
		CreatedAt:   d.CreatedAt,
	}
}

// TransactionRepository implements the transaction.Repository interface for MongoDB
type TransactionRepository struct {
	db     *mongo.Database
	logger *slog.Logger
}

// NewTransactionRepository creates a new MongoDB transaction repository
func NewTransactionRepository(logger *slog.Logger, db *mongo.Database) transaction.Repository {
	return &TransactionRepository{
		db:     db,
		logger: logger,
	}
}

// Create stores a new transaction and returns it with the assigned ID
func (r *TransactionRepository) Create(ctx context.Context, tx *transaction.Transaction) (*transaction.Transaction, error) {
	collection := r.db.Collection(TransactionCollectionName)

	createdAt := tx.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	minutes := tx.Minutes
	doc := document{
		Date:        tx.Date,
		Kind:        string(tx.Kind),
		Minutes:     &minutes,
		Description: tx.Description,
		CreatedAt:   createdAt,
	}

	result, err := collection.InsertOne(ctx, doc)
	if err != nil {
		r.logger.Error("Failed to create transaction", "date", tx.Date, "error", err)
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	id, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, fmt.Errorf("unexpected inserted ID type %T", result.InsertedID)
	}

	created := *tx
	created.ID = id.Hex()
	created.CreatedAt = createdAt
	return &created, nil
}

// List retrieves all transactions sorted chronologically: by calendar date,
// ties broken by creation time, so snapshot order is insertion order.
func (r *TransactionRepository) List(ctx context.Context) ([]*transaction.Transaction, error) {
	collection := r.db.Collection(TransactionCollectionName)

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}, {Key: "createdAt", Value: 1}})
	cursor, err := collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		r.logger.Error("Failed to list transactions", "error", err)
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []document
	if err := cursor.All(ctx, &docs); err != nil {
		r.logger.Error("Failed to decode transactions", "error", err)
		return nil, fmt.Errorf("failed to decode transactions: %w", err)
	}

	txs := make([]*transaction.Transaction, len(docs))
	for i := range docs {
		txs[i] = docs[i].toDomain()
	}

	return txs, nil
}

// Get retrieves a transaction by its ID.
// Returns ErrTransactionNotFound if no such transaction exists.
func (r *TransactionRepository) Get(ctx context.Context, id string) (*transaction.Transaction, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		// An ID the store never issued cannot reference an existing entry
		return nil, transaction.ErrTransactionNotFound{ID: id}
	}

	collection := r.db.Collection(TransactionCollectionName)

	var doc document
	err = collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, transaction.ErrTransactionNotFound{ID: id}
		}
		r.logger.Error("Failed to get transaction", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}

	return doc.toDomain(), nil
}

// Update replaces the mutable fields of a transaction with the given
// normalized record. The legacy hours field is removed in the same write so
// an updated document can never carry two disagreeing durations.
func (r *TransactionRepository) Update(ctx context.Context, id string, tx *transaction.Transaction) (*transaction.Transaction, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, transaction.ErrTransactionNotFound{ID: id}
	}

	collection := r.db.Collection(TransactionCollectionName)

	update := bson.M{
		"$set": bson.M{
			"date":        tx.Date,
			"type":        string(tx.Kind),
			"minutes":     tx.Minutes,
			"description": tx.Description,
			"updatedAt":   time.Now().UTC(),
		},
		"$unset": bson.M{"hours": ""},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc document
	err = collection.FindOneAndUpdate(ctx, bson.M{"_id": objectID}, update, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, transaction.ErrTransactionNotFound{ID: id}
		}
		r.logger.Error("Failed to update transaction", "id", id, "error", err)
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}

	return doc.toDomain(), nil
}

// Delete removes a transaction by its ID.
// Returns ErrTransactionNotFound if no such transaction exists.
func (r *TransactionRepository) Delete(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return transaction.ErrTransactionNotFound{ID: id}
	}

	collection := r.db.Collection(TransactionCollectionName)

	result, err := collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		r.logger.Error("Failed to delete transaction", "id", id, "error", err)
		return fmt.Errorf("failed to delete transaction: %w", err)
	}

	if result.DeletedCount == 0 {
		return transaction.ErrTransactionNotFound{ID: id}
	}

	return nil
}
