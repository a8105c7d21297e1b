package store

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/option"

	"github.com/jonwraymond/studyplanner/plan"
)

// FirestoreGateway is the production Gateway over a Firestore project. The
// client is opened once at process start and shared for the process
// lifetime; Firestore serializes per-document writes itself.
type FirestoreGateway struct {
	client *firestore.Client
}

// NewFirestoreGateway opens the process-wide Firestore client.
// credentialsFile may be empty, in which case application default
// credentials apply.
func NewFirestoreGateway(ctx context.Context, projectID, credentialsFile string) (*FirestoreGateway, error) {
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}
	client, err := firestore.NewClient(ctx, projectID, opts...)
	if err != nil {
		return nil, &StorageError{Op: "connect", Err: err}
	}
	return &FirestoreGateway{client: client}, nil
}

// Close releases the underlying client.
func (g *FirestoreGateway) Close() error {
	return g.client.Close()
}

// AddRecord creates a document and returns its server-assigned ID. The
// createdAt/updatedAt stamps are always server time.
func (g *FirestoreGateway) AddRecord(ctx context.Context, c plan.Collection, fields map[string]any) (string, error) {
	doc := make(map[string]any, len(fields)+2)
	for k, v := range fields {
		doc[k] = v
	}
	doc["createdAt"] = firestore.ServerTimestamp
	doc["updatedAt"] = firestore.ServerTimestamp

	ref, _, err := g.client.Collection(string(c)).Add(ctx, doc)
	if err != nil {
		return "", &StorageError{Op: "add", Err: err}
	}
	return ref.ID, nil
}

// QueryRecords fetches every document matching the filter conjunction in one
// round trip.
func (g *FirestoreGateway) QueryRecords(ctx context.Context, c plan.Collection, filters []Filter) ([]Record, error) {
	q := g.client.Collection(string(c)).Query
	for _, f := range filters {
		q = q.Where(f.Field, string(f.Op), f.Value)
	}

	snaps, err := q.Documents(ctx).GetAll()
	if err != nil {
		return nil, &StorageError{Op: "query", Err: err}
	}

	records := make([]Record, 0, len(snaps))
	for _, snap := range snaps {
		records = append(records, Record{ID: snap.Ref.ID, Fields: snap.Data()})
	}
	return records, nil
}

// UpdateRecord applies fields to an existing document and restamps
// updatedAt. Updating a document that never existed fails.
func (g *FirestoreGateway) UpdateRecord(ctx context.Context, c plan.Collection, id string, fields map[string]any) error {
	updates := make([]firestore.Update, 0, len(fields)+1)
	for k, v := range fields {
		if k == "createdAt" || k == "updatedAt" {
			continue
		}
		updates = append(updates, firestore.Update{Path: k, Value: v})
	}
	updates = append(updates, firestore.Update{Path: "updatedAt", Value: firestore.ServerTimestamp})

	if _, err := g.client.Collection(string(c)).Doc(id).Update(ctx, updates); err != nil {
		return &StorageError{Op: "update", Err: err}
	}
	return nil
}

// DeleteRecord hard-deletes a document. Deleting a missing document fails
// rather than succeeding silently.
func (g *FirestoreGateway) DeleteRecord(ctx context.Context, c plan.Collection, id string) error {
	if _, err := g.client.Collection(string(c)).Doc(id).Delete(ctx, firestore.Exists); err != nil {
		return &StorageError{Op: "delete", Err: err}
	}
	return nil
}
