// Package commands contains the engine's transition operations. Implements
// the Command pattern for write operations in the CQRS architecture: each
// operation is a validated command value object plus a handler that runs the
// transition as one logical transaction against the store.
package commands

import (
	"context"
	"time"

	"tanker/internal/core/ports"
)

// Clock supplies the current time to handlers. Deadline checks are lazy —
// evaluated at the moment of the next operation, not by a background sweep —
// so the clock is injected to keep expiry behavior testable.
type Clock func() time.Time

// Unit of Work interfaces provide transaction management for command
// handlers. Each handler depends only on the repositories its transition
// touches.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// BidRepoFactory provides access to the bid repository within a transaction.
	BidRepoFactory interface {
		BidRepository() ports.BidRepository
	}

	// OfferRepoFactory provides access to the offer repository within a transaction.
	OfferRepoFactory interface {
		OfferRepository() ports.OfferRepository
	}

	// HistoryRepoFactory provides access to the history repository within a transaction.
	HistoryRepoFactory interface {
		HistoryRepository() ports.HistoryRepository
	}

	// SupplierRepoFactory provides access to the supplier repository within a transaction.
	SupplierRepoFactory interface {
		SupplierRepository() ports.SupplierRepository
	}

	// DriverRepoFactory provides access to the driver repository within a transaction.
	DriverRepoFactory interface {
		DriverRepository() ports.DriverRepository
	}

	// OrderUoW manages transactions for order-only transitions
	// (start ride, mark reached).
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// OrderBidUoW manages transactions that touch orders and their bids
	// (create order, place bid, accept bid).
	OrderBidUoW interface {
		TxManager
		OrderRepoFactory
		BidRepoFactory
	}

	// OrderBidUoWFactory creates new order+bid unit of work instances.
	OrderBidUoWFactory interface {
		Create() OrderBidUoW
	}

	// OfferUoW manages transactions for offer-only transitions (reject).
	OfferUoW interface {
		TxManager
		OfferRepoFactory
	}

	// OfferUoWFactory creates new offer unit of work instances.
	OfferUoWFactory interface {
		Create() OfferUoW
	}

	// AssignmentUoW manages transactions across orders, offers, and drivers
	// (assign driver, confirm order).
	AssignmentUoW interface {
		TxManager
		OrderRepoFactory
		OfferRepoFactory
		DriverRepoFactory
	}

	// AssignmentUoWFactory creates new assignment unit of work instances.
	AssignmentUoWFactory interface {
		Create() AssignmentUoW
	}

	// DeliveryUoW manages transactions across orders, history, and drivers
	// (finish order).
	DeliveryUoW interface {
		TxManager
		OrderRepoFactory
		HistoryRepoFactory
		DriverRepoFactory
	}

	// DeliveryUoWFactory creates new delivery unit of work instances.
	DeliveryUoWFactory interface {
		Create() DeliveryUoW
	}

	// RatingUoW manages transactions across orders, history, and suppliers
	// (submit rating).
	RatingUoW interface {
		TxManager
		OrderRepoFactory
		HistoryRepoFactory
		SupplierRepoFactory
	}

	// RatingUoWFactory creates new rating unit of work instances.
	RatingUoWFactory interface {
		Create() RatingUoW
	}

	// UoW manages transactions across every aggregate the engine owns.
	// Used by cancellation, which may touch all of them.
	UoW interface {
		TxManager
		OrderRepoFactory
		BidRepoFactory
		OfferRepoFactory
		HistoryRepoFactory
		SupplierRepoFactory
		DriverRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}
)
