package commands_test

import (
	"testing"
	"time"

	"laundry/internal/core/domain/model/catalog"
	"laundry/internal/core/domain/model/customer"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/model/session"

	"github.com/stretchr/testify/require"
)

func money(t *testing.T, amount int64) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoney(amount)
	require.NoError(t, err)
	return m
}

func washService(t *testing.T) *catalog.Service {
	t.Helper()
	mp := money(t, 6000)
	svc, err := catalog.NewService(kernel.NewUUID(), "Cuci Kering", "Cuci",
		money(t, 7000), &mp, true, 0, 0, 48)
	require.NoError(t, err)
	return svc
}

func memberWithBalance(t *testing.T, balance int64) *customer.Customer {
	t.Helper()
	c, err := customer.NewCustomer(kernel.NewUUID(), "Siti Rahayu", "081298765432",
		"Jl. Mawar 5", customer.Member)
	require.NoError(t, err)
	if balance > 0 {
		require.NoError(t, c.TopUp(money(t, balance)))
	}
	return c
}

// submittableSession returns a session with the given customer, one selected
// weight-based service at 2kg, an attached proof, and a future estimate.
func submittableSession(t *testing.T, cust *customer.Customer) session.Session {
	t.Helper()

	svc := washService(t)
	s, err := session.NewSession().SelectCustomer(cust)
	require.NoError(t, err)
	s, err = s.ToggleService(svc)
	require.NoError(t, err)
	s, err = s.UpdateWeight(svc.ID(), 2.0)
	require.NoError(t, err)
	s = s.AttachProof("proofs/test.jpg")
	s = s.SetEstimatedCompletion(time.Now().Add(48 * time.Hour))
	return s
}

func activeTestOrder(t *testing.T, status order.Status, paid bool) *order.Order {
	t.Helper()

	line, err := order.NewLine(kernel.NewUUID(), "Cuci Kering", true, 1, 2.0,
		money(t, 7000), "", nil)
	require.NoError(t, err)

	paymentStatus := order.PaymentPending
	if paid {
		paymentStatus = order.PaymentPaid
	}

	o, err := order.RestoreOrder(kernel.NewUUID(), "ORD-20260901-000001", kernel.NewUUID(),
		[]order.Line{line}, order.Cash, paymentStatus, "",
		status, time.Now().Add(24*time.Hour), "", time.Now().Add(-time.Hour))
	require.NoError(t, err)
	return o
}
