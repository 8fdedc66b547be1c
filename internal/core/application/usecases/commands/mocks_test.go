package commands_test

import (
	"context"
	"testing"
	"time"

	"tanker/internal/core/application/usecases/commands"
	"tanker/internal/core/domain/model/bid"
	"tanker/internal/core/domain/model/history"
	"tanker/internal/core/domain/model/kernel"
	"tanker/internal/core/domain/model/offer"
	"tanker/internal/core/domain/model/order"
	"tanker/internal/core/domain/model/party"
	"tanker/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetOpenByCustomer(ctx context.Context, customerID kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockOrderRepository) ClaimForDriver(ctx context.Context, orderID, driverID kernel.UUID) (bool, error) {
	args := m.Called(ctx, orderID, driverID)
	return args.Bool(0), args.Error(1)
}

type MockBidRepository struct{ mock.Mock }

func (m *MockBidRepository) Add(ctx context.Context, b *bid.Bid) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockBidRepository) Get(ctx context.Context, id kernel.UUID) (*bid.Bid, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*bid.Bid), args.Error(1)
}

func (m *MockBidRepository) GetAllForOrder(ctx context.Context, orderID kernel.UUID) ([]*bid.Bid, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*bid.Bid), args.Error(1)
}

func (m *MockBidRepository) DeleteAllForOrder(ctx context.Context, orderID kernel.UUID) error {
	args := m.Called(ctx, orderID)
	return args.Error(0)
}

type MockOfferRepository struct{ mock.Mock }

func (m *MockOfferRepository) Put(ctx context.Context, o *offer.DriverOffer) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOfferRepository) Get(ctx context.Context, orderID, driverID kernel.UUID) (*offer.DriverOffer, error) {
	args := m.Called(ctx, orderID, driverID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*offer.DriverOffer), args.Error(1)
}

func (m *MockOfferRepository) Update(ctx context.Context, o *offer.DriverOffer) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOfferRepository) GetAllForOrder(ctx context.Context, orderID kernel.UUID) ([]*offer.DriverOffer, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*offer.DriverOffer), args.Error(1)
}

func (m *MockOfferRepository) DeleteAllForOrder(ctx context.Context, orderID kernel.UUID) error {
	args := m.Called(ctx, orderID)
	return args.Error(0)
}

func (m *MockOfferRepository) DeleteExpiredUnrejected(ctx context.Context, now time.Time) (int64, error) {
	args := m.Called(ctx, now)
	return args.Get(0).(int64), args.Error(1)
}

type MockHistoryRepository struct{ mock.Mock }

func (m *MockHistoryRepository) Add(ctx context.Context, r *history.Record) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockHistoryRepository) GetByOrderID(ctx context.Context, orderID kernel.UUID) (*history.Record, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*history.Record), args.Error(1)
}

func (m *MockHistoryRepository) Update(ctx context.Context, r *history.Record) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

type MockSupplierRepository struct{ mock.Mock }

func (m *MockSupplierRepository) Add(ctx context.Context, s *party.Supplier) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockSupplierRepository) Get(ctx context.Context, id kernel.UUID) (*party.Supplier, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*party.Supplier), args.Error(1)
}

func (m *MockSupplierRepository) Update(ctx context.Context, s *party.Supplier) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

type MockDriverRepository struct{ mock.Mock }

func (m *MockDriverRepository) Add(ctx context.Context, d *party.Driver) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDriverRepository) Get(ctx context.Context, id kernel.UUID) (*party.Driver, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*party.Driver), args.Error(1)
}

func (m *MockDriverRepository) Update(ctx context.Context, d *party.Driver) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDriverRepository) GetAllForSupplier(ctx context.Context, supplierID kernel.UUID) ([]*party.Driver, error) {
	args := m.Called(ctx, supplierID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*party.Driver), args.Error(1)
}

// MockUoW implements every narrow unit-of-work interface the handlers use.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) BidRepository() ports.BidRepository {
	args := m.Called()
	return args.Get(0).(ports.BidRepository)
}

func (m *MockUoW) OfferRepository() ports.OfferRepository {
	args := m.Called()
	return args.Get(0).(ports.OfferRepository)
}

func (m *MockUoW) HistoryRepository() ports.HistoryRepository {
	args := m.Called()
	return args.Get(0).(ports.HistoryRepository)
}

func (m *MockUoW) SupplierRepository() ports.SupplierRepository {
	args := m.Called()
	return args.Get(0).(ports.SupplierRepository)
}

func (m *MockUoW) DriverRepository() ports.DriverRepository {
	args := m.Called()
	return args.Get(0).(ports.DriverRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockOrderBidUoWFactory struct{ mock.Mock }

func (m *MockOrderBidUoWFactory) Create() commands.OrderBidUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderBidUoW)
}

type MockOfferUoWFactory struct{ mock.Mock }

func (m *MockOfferUoWFactory) Create() commands.OfferUoW {
	args := m.Called()
	return args.Get(0).(commands.OfferUoW)
}

type MockAssignmentUoWFactory struct{ mock.Mock }

func (m *MockAssignmentUoWFactory) Create() commands.AssignmentUoW {
	args := m.Called()
	return args.Get(0).(commands.AssignmentUoW)
}

type MockDeliveryUoWFactory struct{ mock.Mock }

func (m *MockDeliveryUoWFactory) Create() commands.DeliveryUoW {
	args := m.Called()
	return args.Get(0).(commands.DeliveryUoW)
}

type MockRatingUoWFactory struct{ mock.Mock }

func (m *MockRatingUoWFactory) Create() commands.RatingUoW {
	args := m.Called()
	return args.Get(0).(commands.RatingUoW)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockChangeNotifier struct{ mock.Mock }

func (m *MockChangeNotifier) OrderChanged(ctx context.Context, orderID kernel.UUID) {
	m.Called(ctx, orderID)
}

func (m *MockChangeNotifier) OffersChanged(ctx context.Context, orderID kernel.UUID) {
	m.Called(ctx, orderID)
}

// quietNotifier accepts any change signal without expectations.
func quietNotifier() *MockChangeNotifier {
	n := new(MockChangeNotifier)
	n.On("OrderChanged", mock.Anything, mock.Anything).Maybe()
	n.On("OffersChanged", mock.Anything, mock.Anything).Maybe()
	return n
}

func fixedClock(at time.Time) commands.Clock {
	return func() time.Time { return at }
}

func testLocation(t *testing.T) kernel.Location {
	t.Helper()
	loc, err := kernel.NewLocation("12 Harbour Rd")
	require.NoError(t, err)
	return loc
}

// openOrder builds an order freshly created by the given customer.
func openOrder(t *testing.T, customerID kernel.UUID, at time.Time) *order.Order {
	t.Helper()
	o, err := order.NewOrder(
		kernel.NewUUID(), customerID, testLocation(t), 2000, kernel.Money(9000), at)
	require.NoError(t, err)
	return o
}

// timedOrder builds an order whose bid was accepted at the given instant,
// leaving it under the supplier confirmation timer.
func timedOrder(t *testing.T, customerID, supplierID kernel.UUID, at time.Time) *order.Order {
	t.Helper()
	o := openOrder(t, customerID, at)
	require.NoError(t, o.AcceptBid(supplierID, kernel.Money(9500), at))
	return o
}

// confirmedOrder builds an order a driver has won at the given instant.
func confirmedOrder(t *testing.T, customerID, supplierID, driverID kernel.UUID, at time.Time) *order.Order {
	t.Helper()
	o := timedOrder(t, customerID, supplierID, at)
	require.NoError(t, o.Confirm(driverID, at))
	return o
}
