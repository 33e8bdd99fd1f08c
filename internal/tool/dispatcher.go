package tool

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/spec-kit/support-mesh/internal/domain"
	"github.com/spec-kit/support-mesh/internal/events"
	"github.com/spec-kit/support-mesh/internal/worker"
	apperrors "github.com/spec-kit/support-mesh/pkg/util"
)

// DefaultListLimit caps list_customers results when no limit is supplied.
const DefaultListLimit = 20

// InvocationRequest is one request to execute a tool with concrete arguments.
// Arguments are untyped at the boundary and validated per tool.
type InvocationRequest struct {
	Name      string
	Arguments map[string]any
}

// handlerFunc validates the raw arguments, executes the storage operation and
// returns the result payload plus the event announcing it. No event leaves
// the handler on a failure path.
type handlerFunc func(ctx context.Context, args map[string]any) (any, events.Event, error)

// Dispatcher validates invocations against the registry, executes the
// matching storage operation on the worker pool, and publishes exactly one
// event per success before returning the result.
//
// The tool set is a closed table: each name maps to one handler with its own
// typed argument struct, so the full name -> validation -> storage -> event
// behavior is enumerable without tracing execution.
type Dispatcher struct {
	registry    *Registry
	store       Store
	broadcaster *events.Broadcaster
	pool        *worker.Pool
	logger      *zap.Logger
	handlers    map[string]handlerFunc
}

// NewDispatcher wires the dispatcher and its handler table.
func NewDispatcher(registry *Registry, store Store, broadcaster *events.Broadcaster, pool *worker.Pool, logger *zap.Logger) *Dispatcher {
	d := &Dispatcher{
		registry:    registry,
		store:       store,
		broadcaster: broadcaster,
		pool:        pool,
		logger:      logger,
	}
	d.handlers = map[string]handlerFunc{
		NameGetCustomer:        d.handleGetCustomer,
		NameListCustomers:      d.handleListCustomers,
		NameUpdateCustomer:     d.handleUpdateCustomer,
		NameCreateTicket:       d.handleCreateTicket,
		NameGetCustomerHistory: d.handleGetCustomerHistory,
	}
	return d
}

// Registry exposes the registry for the listing endpoint.
func (d *Dispatcher) Registry() *Registry {
	return d.registry
}

// Invoke executes one tool invocation. On success the corresponding event is
// published before the result is returned; on any failure no event is
// published and the error propagates unchanged.
func (d *Dispatcher) Invoke(ctx context.Context, req InvocationRequest) (any, error) {
	if _, ok := d.registry.Lookup(req.Name); !ok {
		return nil, apperrors.NewUnknownTool(req.Name)
	}
	handler := d.handlers[req.Name]

	result, event, err := handler(ctx, req.Arguments)
	if err != nil {
		d.logger.Debug("tool invocation failed", zap.String("tool", req.Name), zap.Error(err))
		return nil, err
	}

	d.broadcaster.Publish(event)
	d.logger.Info("tool invoked", zap.String("tool", req.Name), zap.String("event_type", string(event.Type)))
	return result, nil
}

// fetch runs a storage call on the worker pool so a slow adapter blocks a
// worker slot instead of the caller-facing goroutine budget.
func (d *Dispatcher) fetch(ctx context.Context, fn func(context.Context) error) error {
	if err := d.pool.Do(ctx, fn); err != nil {
		var domainErr *apperrors.DomainError
		if errors.As(err, &domainErr) {
			return err
		}
		return apperrors.NewStorageFailure(err)
	}
	return nil
}

type getCustomerArgs struct {
	customerID int64
}

func decodeGetCustomerArgs(args map[string]any) (getCustomerArgs, error) {
	id, err := requireInt(args, "customer_id")
	if err != nil {
		return getCustomerArgs{}, err
	}
	return getCustomerArgs{customerID: id}, nil
}

func (d *Dispatcher) handleGetCustomer(ctx context.Context, args map[string]any) (any, events.Event, error) {
	in, err := decodeGetCustomerArgs(args)
	if err != nil {
		return nil, events.Event{}, err
	}

	var customer *domain.Customer
	if err := d.fetch(ctx, func(ctx context.Context) error {
		var err error
		customer, err = d.store.GetCustomer(ctx, in.customerID)
		return err
	}); err != nil {
		return nil, events.Event{}, err
	}
	if customer == nil {
		return nil, events.Event{}, apperrors.NewNotFound("customer", map[string]any{"customer_id": in.customerID})
	}

	return customer, events.NewEvent(events.EventAudit, NameGetCustomer).WithCustomer(customer.ID), nil
}

type listCustomersArgs struct {
	status *string
	limit  int64
}

func decodeListCustomersArgs(args map[string]any) (listCustomersArgs, error) {
	status, err := optionalString(args, "status")
	if err != nil {
		return listCustomersArgs{}, err
	}
	limit, err := optionalInt(args, "limit", DefaultListLimit)
	if err != nil {
		return listCustomersArgs{}, err
	}
	return listCustomersArgs{status: status, limit: limit}, nil
}

func (d *Dispatcher) handleListCustomers(ctx context.Context, args map[string]any) (any, events.Event, error) {
	in, err := decodeListCustomersArgs(args)
	if err != nil {
		return nil, events.Event{}, err
	}

	var customers []domain.Customer
	if err := d.fetch(ctx, func(ctx context.Context) error {
		var err error
		customers, err = d.store.ListCustomers(ctx, in.status, int(in.limit))
		return err
	}); err != nil {
		return nil, events.Event{}, err
	}
	if customers == nil {
		customers = []domain.Customer{}
	}

	return customers, events.NewEvent(events.EventAudit, NameListCustomers).WithCount(len(customers)), nil
}

type updateCustomerArgs struct {
	customerID int64
	patch      domain.CustomerPatch
}

func decodeUpdateCustomerArgs(args map[string]any) (updateCustomerArgs, error) {
	id, err := requireInt(args, "customer_id")
	if err != nil {
		return updateCustomerArgs{}, err
	}
	data, err := requireObject(args, "data")
	if err != nil {
		return updateCustomerArgs{}, err
	}
	patch, err := decodeCustomerPatch(data)
	if err != nil {
		return updateCustomerArgs{}, err
	}
	return updateCustomerArgs{customerID: id, patch: patch}, nil
}

// decodeCustomerPatch keeps only the recognized fields; everything else in
// data is silently dropped, not rejected.
func decodeCustomerPatch(data map[string]any) (domain.CustomerPatch, error) {
	var patch domain.CustomerPatch
	for _, field := range []struct {
		name string
		dst  **string
	}{
		{"name", &patch.Name},
		{"email", &patch.Email},
		{"status", &patch.Status},
	} {
		raw, ok := data[field.name]
		if !ok || raw == nil {
			continue
		}
		s, ok := raw.(string)
		if !ok {
			return domain.CustomerPatch{}, apperrors.NewInvalidArgument("data."+field.name, "expected a string")
		}
		*field.dst = &s
	}
	return patch, nil
}

func (d *Dispatcher) handleUpdateCustomer(ctx context.Context, args map[string]any) (any, events.Event, error) {
	in, err := decodeUpdateCustomerArgs(args)
	if err != nil {
		return nil, events.Event{}, err
	}

	var customer *domain.Customer
	if err := d.fetch(ctx, func(ctx context.Context) error {
		var err error
		if in.patch.Empty() {
			// Nothing recognized to change: return the current record.
			customer, err = d.store.GetCustomer(ctx, in.customerID)
		} else {
			customer, err = d.store.UpdateCustomer(ctx, in.customerID, in.patch)
		}
		return err
	}); err != nil {
		return nil, events.Event{}, err
	}
	if customer == nil {
		return nil, events.Event{}, apperrors.NewNotFound("customer", map[string]any{"customer_id": in.customerID})
	}

	return customer, events.NewEvent(events.EventUpdate, NameUpdateCustomer).WithCustomer(customer.ID), nil
}

type createTicketArgs struct {
	customerID int64
	issue      string
	priority   string
}

func decodeCreateTicketArgs(args map[string]any) (createTicketArgs, error) {
	id, err := requireInt(args, "customer_id")
	if err != nil {
		return createTicketArgs{}, err
	}
	issue, err := requireString(args, "issue")
	if err != nil {
		return createTicketArgs{}, err
	}
	priority, err := requireString(args, "priority")
	if err != nil {
		return createTicketArgs{}, err
	}
	return createTicketArgs{customerID: id, issue: issue, priority: priority}, nil
}

func (d *Dispatcher) handleCreateTicket(ctx context.Context, args map[string]any) (any, events.Event, error) {
	in, err := decodeCreateTicketArgs(args)
	if err != nil {
		return nil, events.Event{}, err
	}

	var ticket domain.Ticket
	if err := d.fetch(ctx, func(ctx context.Context) error {
		var err error
		ticket, err = d.store.CreateTicket(ctx, in.customerID, in.issue, in.priority)
		return err
	}); err != nil {
		return nil, events.Event{}, err
	}

	return ticket, events.NewEvent(events.EventTicket, NameCreateTicket).WithTicket(ticket.ID), nil
}

type customerHistoryArgs struct {
	customerID int64
}

func decodeCustomerHistoryArgs(args map[string]any) (customerHistoryArgs, error) {
	id, err := requireInt(args, "customer_id")
	if err != nil {
		return customerHistoryArgs{}, err
	}
	return customerHistoryArgs{customerID: id}, nil
}

func (d *Dispatcher) handleGetCustomerHistory(ctx context.Context, args map[string]any) (any, events.Event, error) {
	in, err := decodeCustomerHistoryArgs(args)
	if err != nil {
		return nil, events.Event{}, err
	}

	var history []domain.Interaction
	if err := d.fetch(ctx, func(ctx context.Context) error {
		var err error
		history, err = d.store.ListInteractions(ctx, in.customerID)
		return err
	}); err != nil {
		return nil, events.Event{}, err
	}
	if history == nil {
		// A customer with no interactions yields an empty list, not an error.
		history = []domain.Interaction{}
	}

	return history, events.NewEvent(events.EventHistory, NameGetCustomerHistory).WithCount(len(history)), nil
}
