package queries

import (
	"context"

	"github.com/hasanshibly90/sisl-rmc-scada/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetRunsByOrderQueryHandler lists delivery runs with raw SQL, joining the
// vehicles table for the hauler's display name.
type GetRunsByOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetRunsByOrderQueryHandler creates a handler for delivery run queries.
func NewGetRunsByOrderQueryHandler(db *gorm.DB) GetRunsByOrderQueryHandler {
	return GetRunsByOrderQueryHandler{db: db}
}

// Handle executes the query. Runs come back in load sequence order.
func (h GetRunsByOrderQueryHandler) Handle(
	ctx context.Context,
	query GetRunsByOrderQuery,
) ([]GetRunsByOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	runs := make([]GetRunsByOrderQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			cr.id,
			cr.vehicle_id,
			v.name,
			cr.load_seq,
			cr.volume,
			cr.note,
			cr.row_start_seq,
			cr.row_end_seq,
			cr.created_at
		FROM car_runs cr
		JOIN vehicles v ON v.id = cr.vehicle_id
		WHERE cr.order_id = ?
		ORDER BY cr.load_seq
	`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetRunsByOrderQueryResponse
		var id, vehicleID uuid.UUID

		err = rows.Scan(
			&id,
			&vehicleID,
			&resp.VehicleName,
			&resp.LoadSeq,
			&resp.Volume,
			&resp.Note,
			&resp.RowStartSeq,
			&resp.RowEndSeq,
			&resp.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if resp.VehicleID, err = kernel.UUIDFromBytes(vehicleID[:]); err != nil {
			return nil, err
		}

		runs = append(runs, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return runs, nil
}
