package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readconcern"
	"go.mongodb.org/mongo-driver/mongo/writeconcern"
)

// MongoTxnRunner runs functions inside MongoDB multi-document transactions.
// Snapshot read concern plus majority write concern gives each transaction a
// consistent view; two transactions adjusting the same recipe total conflict
// and one aborts, so totals never interleave.
type MongoTxnRunner struct {
	client *mongo.Client
}

// NewMongoTxnRunner creates a transaction runner bound to the client.
func NewMongoTxnRunner(client *mongo.Client) *MongoTxnRunner {
	return &MongoTxnRunner{client: client}
}

// WithTransaction implements TxnRunner. The callback receives a context
// carrying the session; repository calls made with it join the transaction.
// Any error from the callback aborts the transaction and is returned as-is.
func (r *MongoTxnRunner) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	session, err := r.client.StartSession()
	if err != nil {
		return err
	}
	defer session.EndSession(ctx)

	txnOpts := options.Transaction().
		SetReadConcern(readconcern.Snapshot()).
		SetWriteConcern(writeconcern.Majority())

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		return nil, fn(sc)
	}, txnOpts)
	return err
}
