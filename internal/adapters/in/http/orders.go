package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/application/usecases/queries"
	"laundry/internal/core/domain/model/customer"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/model/session"
	"laundry/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// proofURLExpiry bounds how long a presigned proof download link stays
// valid after the detail view is served.
const proofURLExpiry = 15 * time.Minute

// CreateOrderRequest is the payload for composing a new order. Exactly one
// of customerId and newCustomer must be set. When a proof of payment is
// attached the request is multipart: this payload goes into the "order"
// form field and the image into the "proof" file field.
type CreateOrderRequest struct {
	CustomerID          string             `json:"customerId,omitempty"`
	NewCustomer         *NewCustomer       `json:"newCustomer,omitempty"`
	Lines               []OrderLineRequest `json:"lines"`
	PaymentMethod       string             `json:"paymentMethod"`
	Confirmation        string             `json:"confirmation,omitempty"`
	EstimatedCompletion time.Time          `json:"estimatedCompletion"`
	Notes               string             `json:"notes,omitempty"`
}

// NewCustomer is a customer created together with the order.
type NewCustomer struct {
	Name    string `json:"name"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
	Tier    string `json:"tier"`
}

// OrderLineRequest selects one service. Weight applies to weight-based
// services, quantity to per-item ones.
type OrderLineRequest struct {
	ServiceID   string              `json:"serviceId"`
	Weight      float64             `json:"weight,omitempty"`
	Quantity    int                 `json:"quantity,omitempty"`
	Notes       string              `json:"notes,omitempty"`
	CustomItems []CustomItemRequest `json:"customItems,omitempty"`
}

// CustomItemRequest is one itemized garment on a line.
type CustomItemRequest struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// CreateOrderResponse carries the identity of the order just registered.
type CreateOrderResponse struct {
	ID     string `json:"id"`
	Number string `json:"number"`
}

// ActiveOrder is one row of the active orders board.
type ActiveOrder struct {
	ID                  string    `json:"id"`
	Number              string    `json:"number"`
	CustomerName        string    `json:"customerName"`
	Status              string    `json:"status"`
	PaymentStatus       string    `json:"paymentStatus"`
	Total               int64     `json:"total"`
	TotalWeight         float64   `json:"totalWeight"`
	EstimatedCompletion time.Time `json:"estimatedCompletion"`
	CreatedAt           time.Time `json:"createdAt"`
}

// OrderDetail is the full view of a single order.
type OrderDetail struct {
	ID                  string      `json:"id"`
	Number              string      `json:"number"`
	CustomerID          string      `json:"customerId"`
	CustomerName        string      `json:"customerName"`
	CustomerPhone       string      `json:"customerPhone,omitempty"`
	PaymentMethod       string      `json:"paymentMethod"`
	PaymentStatus       string      `json:"paymentStatus"`
	PaymentProofURL     string      `json:"paymentProofUrl,omitempty"`
	Total               int64       `json:"total"`
	TotalWeight         float64     `json:"totalWeight"`
	Status              string      `json:"status"`
	EstimatedCompletion time.Time   `json:"estimatedCompletion"`
	Notes               string      `json:"notes,omitempty"`
	CreatedAt           time.Time   `json:"createdAt"`
	Lines               []OrderLine `json:"lines"`
}

// OrderLine is one billed service within the order detail.
type OrderLine struct {
	ServiceID   string       `json:"serviceId"`
	ServiceName string       `json:"serviceName"`
	WeightBased bool         `json:"weightBased"`
	Quantity    int          `json:"quantity"`
	Weight      float64      `json:"weight"`
	UnitPrice   int64        `json:"unitPrice"`
	Subtotal    int64        `json:"subtotal"`
	Notes       string       `json:"notes,omitempty"`
	CustomItems []CustomItem `json:"customItems,omitempty"`
}

// CustomItem is one itemized garment on a billed line.
type CustomItem struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// AdvanceStatusRequest names the processing stage the order moves into.
type AdvanceStatusRequest struct {
	Status string `json:"status"`
}

// CreateOrder handles POST /api/v1/orders - composes and registers an order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	orderID := kernel.NewUUID()

	var req CreateOrderRequest
	contentType := ctx.Request().Header.Get(echo.HeaderContentType)
	if strings.HasPrefix(contentType, echo.MIMEMultipartForm) {
		if err := json.Unmarshal([]byte(ctx.FormValue("order")), &req); err != nil {
			return badRequest(ctx, "Invalid order payload")
		}
	} else if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	sess, err := s.assembleSession(ctx.Request().Context(), req)
	if err != nil {
		var notFound *errs.ObjectNotFoundError
		if errors.As(err, &notFound) {
			return ctx.JSON(http.StatusNotFound, Error{
				Code:    http.StatusNotFound,
				Message: notFound.Error(),
			})
		}
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	proofKey := ""
	if file, ferr := ctx.FormFile("proof"); ferr == nil {
		src, oerr := file.Open()
		if oerr != nil {
			return badRequest(ctx, "Unreadable proof attachment")
		}
		defer src.Close()

		key, perr := s.proofs.Put(
			ctx.Request().Context(),
			orderID.String(),
			file.Header.Get(echo.HeaderContentType),
			src,
		)
		if perr != nil {
			return internalError(ctx, "Failed to store payment proof")
		}
		proofKey = key
		sess = sess.AttachProof(key)
	}

	cmd, err := commands.NewCreateOrderCommand(orderID, sess)
	if err != nil {
		s.discardProof(ctx.Request().Context(), proofKey)
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	number, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		s.discardProof(ctx.Request().Context(), proofKey)
		return orderActionError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreateOrderResponse{
		ID:     orderID.String(),
		Number: number,
	})
}

// discardProof removes a proof uploaded for an order that was never created.
// Best effort: the creation failure is the error the client gets.
func (s *Server) discardProof(ctx context.Context, key string) {
	if key == "" {
		return
	}
	_ = s.proofs.Delete(ctx, key)
}

// assembleSession drives the composition wizard from a decoded request:
// bind or stage the customer, pick services with their attributes, then the
// payment and scheduling details. Submission preconditions are checked by
// the command, not here.
func (s *Server) assembleSession(ctx context.Context, req CreateOrderRequest) (session.Session, error) {
	sess := session.NewSession()
	var err error

	switch {
	case req.CustomerID != "":
		var customerID kernel.UUID
		if customerID, err = kernel.UUIDFromString(req.CustomerID); err != nil {
			return session.Session{}, err
		}
		cust, gerr := s.customers.Get(ctx, customerID)
		if gerr != nil {
			return session.Session{}, gerr
		}
		if sess, err = sess.SelectCustomer(cust); err != nil {
			return session.Session{}, err
		}

	case req.NewCustomer != nil:
		tier, terr := customer.TypeFromString(req.NewCustomer.Tier)
		if terr != nil {
			return session.Session{}, terr
		}
		sess = sess.StageNewCustomer(session.CustomerDraft{
			Name:    req.NewCustomer.Name,
			Phone:   req.NewCustomer.Phone,
			Address: req.NewCustomer.Address,
			Tier:    tier,
		})

	default:
		return session.Session{}, errs.NewValueIsRequiredError("customer")
	}

	for _, line := range req.Lines {
		serviceID, perr := kernel.UUIDFromString(line.ServiceID)
		if perr != nil {
			return session.Session{}, perr
		}
		svc, gerr := s.services.Get(ctx, serviceID)
		if gerr != nil {
			return session.Session{}, gerr
		}

		if sess, err = sess.ToggleService(svc); err != nil {
			return session.Session{}, err
		}

		if svc.IsWeightBased() {
			if sess, err = sess.UpdateWeight(serviceID, line.Weight); err != nil {
				return session.Session{}, err
			}
		} else if line.Quantity > 0 {
			if sess, err = sess.UpdateQuantity(serviceID, line.Quantity); err != nil {
				return session.Session{}, err
			}
		}

		if line.Notes != "" {
			if sess, err = sess.UpdateServiceNotes(serviceID, line.Notes); err != nil {
				return session.Session{}, err
			}
		}

		for _, item := range line.CustomItems {
			var itemID string
			if sess, itemID, err = sess.AddCustomItem(serviceID); err != nil {
				return session.Session{}, err
			}
			if sess, err = sess.UpdateCustomItem(serviceID, itemID, item.Name, item.Quantity); err != nil {
				return session.Session{}, err
			}
		}
	}

	method, err := order.PaymentMethodFromString(req.PaymentMethod)
	if err != nil {
		return session.Session{}, err
	}
	if sess, err = sess.SetPaymentMethod(method); err != nil {
		return session.Session{}, err
	}
	// An ineligible deposit selection is reported through the session error
	// rather than the return value, so the wizard can keep the operator on
	// the payment step. Over the API there is no operator to correct it.
	if msg := sess.Error(); msg != "" {
		return session.Session{}, errs.NewValueIsInvalidErrorWithCause("paymentMethod", errors.New(msg))
	}

	confirmation, err := confirmationFromString(req.Confirmation)
	if err != nil {
		return session.Session{}, err
	}
	sess = sess.SetPaymentConfirmation(confirmation)

	sess = sess.SetEstimatedCompletion(req.EstimatedCompletion)
	if req.Notes != "" {
		sess = sess.SetOrderNotes(req.Notes)
	}

	return sess, nil
}

// confirmationFromString parses the wire form of a payment confirmation.
// An empty value defaults to settling now, matching a fresh session.
func confirmationFromString(v string) (session.Confirmation, error) {
	switch v {
	case "", session.PayNow.String():
		return session.PayNow, nil
	case session.PayLater.String():
		return session.PayLater, nil
	default:
		return 0, errs.NewValueIsInvalidError("confirmation")
	}
}

// GetActiveOrders handles GET /api/v1/orders/active - lists orders still in
// the shop.
func (s *Server) GetActiveOrders(ctx echo.Context) error {
	query := queries.NewGetActiveOrdersQuery()

	rows, err := s.getActiveOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to retrieve orders")
	}

	response := make([]ActiveOrder, len(rows))
	for i, row := range rows {
		response[i] = ActiveOrder{
			ID:                  row.ID.String(),
			Number:              row.Number,
			CustomerName:        row.CustomerName,
			Status:              row.Status,
			PaymentStatus:       row.PaymentStatus,
			Total:               row.Total,
			TotalWeight:         row.TotalWeight,
			EstimatedCompletion: row.EstimatedCompletion,
			CreatedAt:           row.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrder handles GET /api/v1/orders/:id - retrieves one order with its
// lines. When a proof of payment is stored the response carries a
// time-limited download link for it.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	detail, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		var notFound *errs.ObjectNotFoundError
		if errors.As(err, &notFound) {
			return ctx.JSON(http.StatusNotFound, Error{
				Code:    http.StatusNotFound,
				Message: notFound.Error(),
			})
		}
		return internalError(ctx, "Failed to retrieve order")
	}

	response := OrderDetail{
		ID:                  detail.ID.String(),
		Number:              detail.Number,
		CustomerID:          detail.CustomerID.String(),
		CustomerName:        detail.CustomerName,
		CustomerPhone:       detail.CustomerPhone,
		PaymentMethod:       detail.PaymentMethod,
		PaymentStatus:       detail.PaymentStatus,
		Total:               detail.Total,
		TotalWeight:         detail.TotalWeight,
		Status:              detail.Status,
		EstimatedCompletion: detail.EstimatedCompletion,
		Notes:               detail.Notes,
		CreatedAt:           detail.CreatedAt,
		Lines:               make([]OrderLine, len(detail.Lines)),
	}

	if detail.PaymentProofKey != "" {
		// Best effort: a broken storage link must not hide the order.
		if url, perr := s.proofs.PresignGet(ctx.Request().Context(), detail.PaymentProofKey, proofURLExpiry); perr == nil {
			response.PaymentProofURL = url
		}
	}

	for i, line := range detail.Lines {
		items := make([]CustomItem, len(line.CustomItems))
		for j, item := range line.CustomItems {
			items[j] = CustomItem{ID: item.ID, Name: item.Name, Quantity: item.Quantity}
		}

		response.Lines[i] = OrderLine{
			ServiceID:   line.ServiceID.String(),
			ServiceName: line.ServiceName,
			WeightBased: line.WeightBased,
			Quantity:    line.Quantity,
			Weight:      line.Weight,
			UnitPrice:   line.UnitPrice,
			Subtotal:    line.Subtotal,
			Notes:       line.Notes,
			CustomItems: items,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// AdvanceOrderStatus handles PATCH /api/v1/orders/:id/status - moves the
// order one stage forward through its processing pipeline.
func (s *Server) AdvanceOrderStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var req AdvanceStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	target, err := order.StatusFromString(req.Status)
	if err != nil {
		return badRequest(ctx, "Invalid status: "+err.Error())
	}

	cmd, err := commands.NewAdvanceOrderStatusCommand(orderID, target)
	if err != nil {
		return badRequest(ctx, "Invalid status change: "+err.Error())
	}

	if err = s.advanceOrderStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return orderActionError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// MarkOrderReady handles POST /api/v1/orders/:id/ready - moves a paid order
// from ironing to ready for pickup.
func (s *Server) MarkOrderReady(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewMarkOrderReadyCommand(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	if err = s.markOrderReadyHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return orderActionError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// MarkOrderPaid handles POST /api/v1/orders/:id/payment - settles a
// deferred payment. A proof image may come along as the multipart "proof"
// file field.
func (s *Server) MarkOrderPaid(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var proofKey string
	if file, ferr := ctx.FormFile("proof"); ferr == nil {
		src, oerr := file.Open()
		if oerr != nil {
			return badRequest(ctx, "Unreadable proof attachment")
		}
		defer src.Close()

		proofKey, err = s.proofs.Put(
			ctx.Request().Context(),
			orderID.String(),
			file.Header.Get(echo.HeaderContentType),
			src,
		)
		if err != nil {
			return internalError(ctx, "Failed to store payment proof")
		}
	}

	cmd, err := commands.NewMarkOrderPaidCommand(orderID, proofKey)
	if err != nil {
		return badRequest(ctx, "Invalid payment data: "+err.Error())
	}

	if err = s.markOrderPaidHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return orderActionError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelOrder handles POST /api/v1/orders/:id/cancel - cancels an order
// that has not finished yet.
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewCancelOrderCommand(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	if err = s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return orderActionError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
