package store

import (
	"context"
	"fmt"
)

// AppendActivity inserts an activity log entry.
// Callers append activity in the same transaction as the operation it
// records, so the log never mentions a write that did not commit.
func AppendActivity(ctx context.Context, db DBTX, a Activity) error {
	_, err := db.ExecContext(ctx, `
		INSERT INTO activity (id, op, detail, outcome)
		VALUES (?, ?, ?, ?)
	`, a.ID, a.Op, a.Detail, a.Outcome)
	if err != nil {
		return fmt.Errorf("append activity: %w", err)
	}
	return nil
}

// ListActivity returns the most recent activity entries, newest first.
// Activity ids are UUIDv7, so id order is creation order.
func ListActivity(ctx context.Context, db DBTX, limit int64) ([]Activity, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT id, op, detail, outcome, created_at
		FROM activity
		ORDER BY id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("query activity: %w", err)
	}
	defer rows.Close()

	var entries []Activity
	for rows.Next() {
		var a Activity
		if err := rows.Scan(&a.ID, &a.Op, &a.Detail, &a.Outcome, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan activity: %w", err)
		}
		entries = append(entries, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate activity: %w", err)
	}
	return entries, nil
}
