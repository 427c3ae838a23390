package newrelic

import (
	"context"

	"github.com/newrelic/go-agent/v3/newrelic"
)

// PostgresSegment starts a datastore segment for an operation on table.
// It returns nil when ctx carries no transaction; End is safe on nil.
func PostgresSegment(ctx context.Context, table, operation string) *newrelic.DatastoreSegment {
	return datastoreSegment(ctx, newrelic.DatastorePostgres, table, operation)
}

// RedisSegment starts a datastore segment for a Redis command
func RedisSegment(ctx context.Context, operation string) *newrelic.DatastoreSegment {
	return datastoreSegment(ctx, newrelic.DatastoreRedis, "", operation)
}

func datastoreSegment(ctx context.Context, product newrelic.DatastoreProduct, collection, operation string) *newrelic.DatastoreSegment {
	txn := newrelic.FromContext(ctx)
	if txn == nil {
		return nil
	}
	return &newrelic.DatastoreSegment{
		StartTime:  txn.StartSegmentNow(),
		Product:    product,
		Collection: collection,
		Operation:  operation,
	}
}
