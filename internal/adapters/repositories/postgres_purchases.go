package repositories

import (
	"context"
	"errors"
	"fmt"

	"rail-booking-service/internal/domain"
	"rail-booking-service/internal/platform/obs"
)

// Append one purchase-history entry.
func (l *PostgresLedger) RecordPurchase(ctx context.Context, rec domain.PurchaseRecord) (err error) {
	defer obs.Time(ctx, "ledger.RecordPurchase")(&err)

	if l.DB == nil {
		return errors.New("record purchase: DB is nil")
	}

	_, err = l.DB.ExecContext(ctx,
		`INSERT INTO purchase_history (user_email, travel_date, details) VALUES ($1, $2, $3);`,
		rec.UserEmail, rec.TravelDate, rec.Details,
	)
	if err != nil {
		return classify("record purchase", fmt.Errorf("insert: %w", err))
	}

	return nil
}

// List a user's purchase history, most recent travel date first.
func (l *PostgresLedger) PurchaseHistory(ctx context.Context, email string) (_ []domain.PurchaseRecord, err error) {
	defer obs.Time(ctx, "ledger.PurchaseHistory")(&err)

	if l.DB == nil {
		return nil, errors.New("purchase history: DB is nil")
	}

	rows, err := l.DB.QueryContext(ctx, `
	SELECT id, user_email, travel_date, details
	FROM purchase_history
	WHERE user_email = $1
	ORDER BY travel_date DESC;
	`, email)
	if err != nil {
		return nil, classify("purchase history", fmt.Errorf("query: %w", err))
	}
	defer rows.Close()

	records := make([]domain.PurchaseRecord, 0, 16)
	for rows.Next() {
		var rec domain.PurchaseRecord
		if err := rows.Scan(&rec.ID, &rec.UserEmail, &rec.TravelDate, &rec.Details); err != nil {
			return nil, classify("purchase history", fmt.Errorf("scan row: %w", err))
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, classify("purchase history", fmt.Errorf("row iteration: %w", err))
	}

	return records, nil
}
