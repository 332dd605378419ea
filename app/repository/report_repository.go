package repository

import (
	"context"

	"cloud.google.com/go/firestore"
)

// reportRepository implements the ReportRepository interface
type reportRepository struct {
	client *firestore.Client
}

// NewReportRepository creates a new report repository instance
func NewReportRepository(client *firestore.Client) ReportRepository {
	return &reportRepository{client: client}
}

// CollectByEmail returns the raw documents of a reporting collection matching
// the email, in whatever order the store yields them.
func (r *reportRepository) CollectByEmail(ctx context.Context, collection, email string) ([]map[string]interface{}, error) {
	docs, err := r.client.Collection(collection).Where("email", "==", email).Documents(ctx).GetAll()
	if err != nil {
		return nil, err
	}

	rows := make([]map[string]interface{}, 0, len(docs))
	for _, doc := range docs {
		rows = append(rows, doc.Data())
	}
	return rows, nil
}
