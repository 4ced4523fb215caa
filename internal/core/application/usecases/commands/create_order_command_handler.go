package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"laundry/internal/core/domain/model/customer"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/model/session"
	"laundry/internal/core/ports"
)

// CreateOrderCommandHandler handles the business logic for order creation.
//
// Creation is a cross-aggregate transaction: a drafted customer is inserted
// first, deposit payments deduct the amount from the member's balance, and
// the order itself is numbered and persisted. Everything commits or rolls
// back as one unit, so a failed deduction never leaves an order behind.
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// Requires a UoWFactory spanning order and customer repositories.
func NewCreateOrderCommandHandler(uowFactory UoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// orderNumberAttempts bounds the retries when a concurrent creation claims
// the same per-day sequence number first.
const orderNumberAttempts = 3

// Handle processes the order creation command and returns the issued order
// number. Numbers are issued from a per-day count, so two creations racing
// on the same day can pick the same number; the unique index rejects the
// loser and the whole transaction is retried with a fresh count.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (string, error) {
	if err := cmd.Validate(); err != nil {
		return "", err
	}

	var lastErr error
	for attempt := 0; attempt < orderNumberAttempts; attempt++ {
		number, err := h.createInTx(ctx, cmd)
		if err == nil {
			return number, nil
		}
		if !errors.Is(err, ports.ErrDuplicateOrderNumber) {
			return "", err
		}
		lastErr = err
	}

	return "", lastErr
}

func (h *CreateOrderCommandHandler) createInTx(ctx context.Context, cmd CreateOrderCommand) (string, error) {
	sess := cmd.Session()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return "", err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	customerRepo := uow.CustomerRepository()
	orderRepo := uow.OrderRepository()

	cust, err := h.resolveCustomer(ctx, customerRepo, sess)
	if err != nil {
		return "", err
	}

	number, err := nextOrderNumber(ctx, orderRepo, time.Now())
	if err != nil {
		return "", err
	}

	newOrder, err := sess.BuildOrder(cmd.OrderID(), number, cust.ID())
	if err != nil {
		return "", err
	}

	if newOrder.PaymentMethod() == order.Deposit {
		// Deduct against the freshly loaded balance, not the snapshot the
		// operator saw while composing.
		if err = cust.Deduct(newOrder.Total()); err != nil {
			return "", err
		}
		if err = customerRepo.Update(ctx, cust); err != nil {
			return "", err
		}
		if err = newOrder.MarkPaid(); err != nil {
			return "", err
		}
	} else if sess.PaymentConfirmation() == session.PayNow {
		if err = newOrder.AttachPaymentProof(sess.ProofKey()); err != nil {
			return "", err
		}
		if err = newOrder.MarkPaid(); err != nil {
			return "", err
		}
	}

	if err = orderRepo.Add(ctx, newOrder); err != nil {
		return "", err
	}

	if err = uow.Commit(ctx); err != nil {
		return "", err
	}

	return number, nil
}

// resolveCustomer returns the aggregate the order will belong to: the bound
// customer reloaded from storage, or a newly created one when the session
// staged a draft.
func (h *CreateOrderCommandHandler) resolveCustomer(
	ctx context.Context,
	repo ports.CustomerRepository,
	sess session.Session,
) (*customer.Customer, error) {
	if bound := sess.Customer(); bound != nil {
		return repo.Get(ctx, bound.ID())
	}

	draft := sess.Draft()
	cust, err := customer.NewCustomer(
		kernel.NewUUID(),
		draft.Name,
		draft.Phone,
		draft.Address,
		draft.Tier,
	)
	if err != nil {
		return nil, err
	}

	if err = repo.Add(ctx, cust); err != nil {
		return nil, err
	}

	return cust, nil
}

// nextOrderNumber issues the next sequential number for the given day in the
// form ORD-YYYYMMDD-XXXXXX.
func nextOrderNumber(ctx context.Context, repo ports.OrderRepository, now time.Time) (string, error) {
	count, err := repo.CountCreatedOn(ctx, now.Year(), int(now.Month()), now.Day())
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("ORD-%s-%06d", now.Format("20060102"), count+1), nil
}
