package state

import (
	"context"
	"database/sql"
	"maps"
	"slices"
	"time"

	"github.com/llehouerou/rangeslider/internal/db"
	"github.com/llehouerou/rangeslider/internal/slider"
)

// getRanges returns every saved range keyed by slider name.
func getRanges(conn *sql.DB) (map[string]slider.Pair, error) {
	rows, err := conn.Query(`SELECT name, lower, upper FROM slider_ranges`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ranges := make(map[string]slider.Pair)
	for rows.Next() {
		var (
			name         string
			lower, upper float64
		)
		if err := rows.Scan(&name, &lower, &upper); err != nil {
			return nil, err
		}
		ranges[name] = slider.Pair{lower, upper}
	}
	return ranges, rows.Err()
}

// saveRanges upserts ranges in a single transaction, in name order.
func saveRanges(ctx context.Context, conn *sql.DB, ranges map[string]slider.Pair) error {
	now := time.Now().Unix()
	return db.WithTx(ctx, conn, func(tx *sql.Tx) error {
		for _, name := range slices.Sorted(maps.Keys(ranges)) {
			p := ranges[name]
			_, err := tx.ExecContext(ctx, `
				INSERT INTO slider_ranges (name, lower, upper, updated_at)
				VALUES (?, ?, ?, ?)
				ON CONFLICT(name) DO UPDATE SET
					lower = excluded.lower,
					upper = excluded.upper,
					updated_at = excluded.updated_at
			`, name, p.Lower(), p.Upper(), now)
			if err != nil {
				return err
			}
		}
		return nil
	})
}
