// Package services contains application services coordinating use cases with
// in-memory state. OrderService keeps the unpaid working set cached so the
// open orders can be listed without a database round trip, while every
// mutation still goes through the transactional command handlers.
package services

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"time"

	"tavern/internal/core/application/usecases/commands"
	"tavern/internal/core/application/usecases/queries"
	"tavern/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// Event kinds published on order lifecycle transitions.
const (
	OrderCreated = "order.created"
	OrderUpdated = "order.updated"
	OrderPaid    = "order.paid"
	OrderDeleted = "order.deleted"
)

// OrderEvent describes one order lifecycle transition.
type OrderEvent struct {
	ID         string    `json:"id"`
	Kind       string    `json:"kind"`
	OrderID    int64     `json:"order_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

// Notifier publishes order lifecycle events. A failed publish never fails the
// operation that triggered it; the event is logged and dropped.
type Notifier interface {
	Publish(ctx context.Context, event OrderEvent) error
}

// Use case contracts the service drives. Satisfied by the command and query
// handlers.
type (
	OrderCreator interface {
		Handle(ctx context.Context, cmd commands.CreateOrderCommand) (*order.Order, error)
	}
	OrderUpdater interface {
		Handle(ctx context.Context, cmd commands.UpdateOrderCommand) (*order.Order, error)
	}
	OrderDeleter interface {
		Handle(ctx context.Context, cmd commands.DeleteOrderCommand) error
	}
	OrderPayer interface {
		Handle(ctx context.Context, cmd commands.PayOrderCommand) error
	}
	LineItemAdder interface {
		Handle(ctx context.Context, cmd commands.AddLineItemCommand) (*order.LineItem, error)
	}
	LineItemEditor interface {
		Handle(ctx context.Context, cmd commands.EditLineItemCommand) (*order.LineItem, error)
	}
	LineItemRemover interface {
		Handle(ctx context.Context, cmd commands.RemoveLineItemCommand) error
	}
	UnpaidOrdersReader interface {
		Handle(ctx context.Context, query queries.GetUnpaidOrdersQuery) ([]*order.Order, error)
	}
)

// OrderServiceParams bundles the service's collaborators. Notifier may be nil.
type OrderServiceParams struct {
	Creator      OrderCreator
	Updater      OrderUpdater
	Deleter      OrderDeleter
	Payer        OrderPayer
	ItemAdder    LineItemAdder
	ItemEditor   LineItemEditor
	ItemRemover  LineItemRemover
	UnpaidReader UnpaidOrdersReader
	Notifier     Notifier
	Logger       *slog.Logger
}

// OrderService owns the unpaid working set: an in-memory view of every order
// that has not been settled. The cache changes only after the corresponding
// persistence operation has committed, so a failed operation leaves the view
// exactly as it was. Safe for concurrent use.
type OrderService struct {
	params OrderServiceParams

	mu     sync.RWMutex
	unpaid map[int64]*order.Order
}

// NewOrderService creates the service with an empty working set; call Load to
// fill it.
func NewOrderService(params OrderServiceParams) *OrderService {
	if params.Logger == nil {
		params.Logger = slog.Default()
	}
	return &OrderService{
		params: params,
		unpaid: make(map[int64]*order.Order),
	}
}

// Load replaces the working set with the unpaid orders currently stored.
func (s *OrderService) Load(ctx context.Context) error {
	orders, err := s.params.UnpaidReader.Handle(ctx, queries.NewGetUnpaidOrdersQuery())
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.unpaid = make(map[int64]*order.Order, len(orders))
	for _, o := range orders {
		s.unpaid[o.ID()] = o
	}
	return nil
}

// UnpaidOrders returns the working set ordered by id.
func (s *OrderService) UnpaidOrders() []*order.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	orders := make([]*order.Order, 0, len(s.unpaid))
	for _, o := range s.unpaid {
		orders = append(orders, o)
	}
	sort.Slice(orders, func(i, j int) bool { return orders[i].ID() < orders[j].ID() })
	return orders
}

// UnpaidOrder returns one cached order, or nil when the id is not in the
// working set.
func (s *OrderService) UnpaidOrder(orderID int64) *order.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.unpaid[orderID]
}

// CreateOrder opens an order and appends it to the working set once the create
// has committed.
func (s *OrderService) CreateOrder(ctx context.Context, cmd commands.CreateOrderCommand) (*order.Order, error) {
	created, err := s.params.Creator.Handle(ctx, cmd)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.unpaid[created.ID()] = created
	s.mu.Unlock()

	s.notify(ctx, OrderCreated, created.ID())
	return created, nil
}

// UpdateOrder applies a full-replace update and then reloads the working set,
// since the store recomputed totals and re-snapshotted the employee name.
func (s *OrderService) UpdateOrder(ctx context.Context, cmd commands.UpdateOrderCommand) (*order.Order, error) {
	updated, err := s.params.Updater.Handle(ctx, cmd)
	if err != nil {
		return nil, err
	}

	if err = s.Load(ctx); err != nil {
		// The update itself committed; a failed reload only staled the view.
		s.params.Logger.Warn("working set reload failed after update",
			slog.Int64("orderId", updated.ID()), slog.Any("error", err))
	}

	s.notify(ctx, OrderUpdated, updated.ID())
	return updated, nil
}

// DeleteOrder removes an order and drops it from the working set.
func (s *OrderService) DeleteOrder(ctx context.Context, cmd commands.DeleteOrderCommand) error {
	if err := s.params.Deleter.Handle(ctx, cmd); err != nil {
		return err
	}

	s.mu.Lock()
	delete(s.unpaid, cmd.OrderID())
	s.mu.Unlock()

	s.notify(ctx, OrderDeleted, cmd.OrderID())
	return nil
}

// PayOrder settles an order. Settlement is terminal: the order leaves the
// working set and stays in storage for reporting.
func (s *OrderService) PayOrder(ctx context.Context, cmd commands.PayOrderCommand) error {
	if err := s.params.Payer.Handle(ctx, cmd); err != nil {
		return err
	}

	s.mu.Lock()
	if cached, ok := s.unpaid[cmd.OrderID()]; ok {
		_ = cached.MarkPaid()
		delete(s.unpaid, cmd.OrderID())
	}
	s.mu.Unlock()

	s.notify(ctx, OrderPaid, cmd.OrderID())
	return nil
}

// AddLineItem appends a position to an order and patches the cached aggregate.
func (s *OrderService) AddLineItem(ctx context.Context, cmd commands.AddLineItemCommand) (*order.LineItem, error) {
	item, err := s.params.ItemAdder.Handle(ctx, cmd)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	if cached, ok := s.unpaid[cmd.OrderID()]; ok {
		if attachErr := cached.AttachRestoredLineItem(item); attachErr != nil {
			// The add itself committed; a failed attach only staled the view.
			s.params.Logger.Warn("cached order patch failed after item add",
				slog.Int64("orderId", cmd.OrderID()), slog.Any("error", attachErr))
		} else {
			refreshTotals(cached)
		}
	}
	s.mu.Unlock()

	s.notify(ctx, OrderUpdated, cmd.OrderID())
	return item, nil
}

// EditLineItem changes a position's quantity and patches the cached aggregate.
func (s *OrderService) EditLineItem(ctx context.Context, cmd commands.EditLineItemCommand) (*order.LineItem, error) {
	item, err := s.params.ItemEditor.Handle(ctx, cmd)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	if cached, ok := s.unpaid[cmd.OrderID()]; ok {
		for _, cachedItem := range cached.LineItems() {
			if cachedItem.ID() == item.ID() {
				_ = cachedItem.SetQuantity(item.Quantity())
				cachedItem.SetTotals(item.TotalPrice(), item.TotalVat())
				break
			}
		}
		refreshTotals(cached)
	}
	s.mu.Unlock()

	s.notify(ctx, OrderUpdated, cmd.OrderID())
	return item, nil
}

// RemoveLineItem drops a position and patches the cached order that held it.
func (s *OrderService) RemoveLineItem(ctx context.Context, cmd commands.RemoveLineItemCommand) error {
	if err := s.params.ItemRemover.Handle(ctx, cmd); err != nil {
		return err
	}

	s.mu.Lock()
	if cached, ok := s.unpaid[cmd.OrderID()]; ok {
		if err := cached.RemoveLineItem(cmd.LineItemID()); err == nil {
			refreshTotals(cached)
		}
	}
	s.mu.Unlock()

	s.notify(ctx, OrderUpdated, cmd.OrderID())
	return nil
}

// refreshTotals recomputes a cached order's totals from its positions. Caller
// holds the lock.
func refreshTotals(o *order.Order) {
	var totalPrice, totalVat float64
	for _, item := range o.LineItems() {
		totalPrice += item.TotalPrice()
		totalVat += item.TotalVat()
	}
	o.SetTotals(totalPrice, totalVat)
}

func (s *OrderService) notify(ctx context.Context, kind string, orderID int64) {
	if s.params.Notifier == nil {
		return
	}

	event := OrderEvent{
		ID:         uuid.NewString(),
		Kind:       kind,
		OrderID:    orderID,
		OccurredAt: time.Now().UTC(),
	}
	if err := s.params.Notifier.Publish(ctx, event); err != nil {
		s.params.Logger.Warn("order event publish failed",
			slog.String("kind", kind), slog.Int64("orderId", orderID), slog.Any("error", err))
	}
}
