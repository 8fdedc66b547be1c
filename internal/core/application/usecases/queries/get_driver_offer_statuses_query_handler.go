package queries

import (
	"context"
	"time"

	"tanker/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Clock supplies the instant offers are judged live or expired against.
type Clock func() time.Time

// GetDriverOfferStatusesQueryHandler derives per-driver offer statuses for
// one order. The status is not stored anywhere; it falls out of the offer
// row's rejected flag and deadline at the moment of the query.
type GetDriverOfferStatusesQueryHandler struct {
	db    *gorm.DB
	clock Clock
}

// NewGetDriverOfferStatusesQueryHandler creates a handler for offer status queries.
func NewGetDriverOfferStatusesQueryHandler(db *gorm.DB, clock Clock) GetDriverOfferStatusesQueryHandler {
	return GetDriverOfferStatusesQueryHandler{db: db, clock: clock}
}

// Handle executes the query. Every roster driver appears exactly once:
// rejected if the driver declined, pending while a live offer stands,
// available otherwise (including after the offer's deadline lapsed).
func (h GetDriverOfferStatusesQueryHandler) Handle(
	ctx context.Context,
	query GetDriverOfferStatusesQuery,
) ([]GetDriverOfferStatusesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	statuses := make([]GetDriverOfferStatusesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			d.id,
			CASE
				WHEN o.rejected THEN ?
				WHEN o.deadline > ? THEN ?
				ELSE ?
			END
		FROM drivers d
		LEFT JOIN driver_offers o
			ON o.driver_id = d.id AND o.order_id = ?
		WHERE d.supplier_id = ?
		ORDER BY d.id
	`,
		DriverOfferRejected,
		h.clock(),
		DriverOfferPending,
		DriverOfferAvailable,
		query.OrderID().Bytes(),
		query.SupplierID().Bytes(),
	).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetDriverOfferStatusesQueryResponse
		var driverID uuid.UUID

		if err = rows.Scan(&driverID, &resp.Status); err != nil {
			return nil, err
		}

		resp.DriverID, err = kernel.UUIDFromBytes(driverID[:])
		if err != nil {
			return nil, err
		}

		statuses = append(statuses, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return statuses, nil
}
