package orders

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"dropship-sync/core/storefront"
	"dropship-sync/core/supplier"
	"dropship-sync/feature/orders/models"

	"go.uber.org/zap"
)

// Push outcome strings as reported by the supplier.
const (
	responseAlreadyExists = "ALREADY_EXISTS"
	responseFail          = "FAIL"
)

const storefrontPageSize = 250

// Filter narrows a supplier order or refund export.
type Filter struct {
	From string   `json:"from,omitempty"`
	To   string   `json:"to,omitempty"`
	IDs  []string `json:"ids,omitempty"`
}

// PushResult records the supplier's verdict for one pushed order.
type PushResult struct {
	ID     string `json:"id"`
	Status string `json:"status"`
	Reason string `json:"reason,omitempty"`
}

// Service implements the order flows: supplier exports, storefront exports,
// and the storefront-to-supplier push.
type Service struct {
	dialer supplier.Dialer
	store  storefront.Client
	log    *zap.Logger
	now    func() time.Time
}

// NewService creates an order service.
func NewService(dialer supplier.Dialer, store storefront.Client, log *zap.Logger) *Service {
	return &Service{dialer: dialer, store: store, log: log, now: time.Now}
}

// FetchOrders pulls supplier orders matching the filter and normalizes them.
func (s *Service) FetchOrders(ctx context.Context, f Filter) ([]models.OrderRecord, error) {
	sess, err := s.dialer.Login(ctx)
	if err != nil {
		return nil, err
	}
	defer sess.Close(ctx)

	raw, err := sess.Call(ctx, supplier.ProcGetOrders, f)
	if err != nil {
		return nil, fmt.Errorf("fetch orders: %w", err)
	}

	parsed := supplier.Decode[[]map[string]any](raw)
	s.log.Info("Fetched supplier orders", zap.Int("count", len(parsed)))

	records := make([]models.OrderRecord, 0, len(parsed))
	for _, o := range parsed {
		records = append(records, OrderFromSupplier(o))
	}
	return records, nil
}

// FetchRefunds pulls supplier refunds matching the filter and normalizes them.
func (s *Service) FetchRefunds(ctx context.Context, f Filter) ([]models.RefundRecord, error) {
	sess, err := s.dialer.Login(ctx)
	if err != nil {
		return nil, err
	}
	defer sess.Close(ctx)

	raw, err := sess.Call(ctx, supplier.ProcGetRefundOrders, f)
	if err != nil {
		return nil, fmt.Errorf("fetch refunds: %w", err)
	}

	parsed := supplier.Decode[[]map[string]any](raw)
	s.log.Info("Fetched supplier refunds", zap.Int("count", len(parsed)))

	records := make([]models.RefundRecord, 0, len(parsed))
	for _, r := range parsed {
		records = append(records, RefundFromSupplier(r))
	}
	return records, nil
}

// PushAll pushes a batch of payloads over a single supplier session and
// reports the per-order verdict. A transport failure on one order does not
// abort the rest of the batch.
func (s *Service) PushAll(ctx context.Context, payloads []models.OrderPayload) ([]PushResult, error) {
	sess, err := s.dialer.Login(ctx)
	if err != nil {
		return nil, err
	}
	defer sess.Close(ctx)

	results := make([]PushResult, 0, len(payloads))
	for _, p := range payloads {
		status, err := s.push(ctx, sess, p)
		res := PushResult{ID: p.ID, Status: status}
		if err != nil {
			res.Status = responseFail
			res.Reason = err.Error()
			s.log.Error("Order push failed", zap.String("order", p.ID), zap.Error(err))
		} else {
			s.log.Info("Order pushed", zap.String("order", p.ID), zap.String("status", status))
		}
		results = append(results, res)
	}
	return results, nil
}

// push creates the order and falls back to an update when the supplier
// already knows it. A response without a verdict counts as FAIL.
func (s *Service) push(ctx context.Context, sess supplier.Session, p models.OrderPayload) (string, error) {
	status, err := s.submit(ctx, sess, supplier.ProcCreateOrder, p)
	if err != nil {
		return "", err
	}
	if status != responseAlreadyExists {
		return status, nil
	}

	s.log.Info("Order already exists, updating instead", zap.String("order", p.ID))
	return s.submit(ctx, sess, supplier.ProcUpdateOrder, p)
}

func (s *Service) submit(ctx context.Context, sess supplier.Session, procedure string, p models.OrderPayload) (string, error) {
	raw, err := sess.Call(ctx, procedure, p)
	if err != nil {
		return "", err
	}
	resp := supplier.Decode[map[string]any](raw)
	status, ok := resp["api_response"].(string)
	if !ok || status == "" {
		return responseFail, nil
	}
	return status, nil
}

// FetchStorefrontOrders pulls storefront orders created in the given window,
// following pagination cursors until the last page. Dates are YYYY-MM-DD in
// UTC; either bound may be empty. Status is the storefront's order status
// filter ("open", "closed", "cancelled", or "any").
func (s *Service) FetchStorefrontOrders(ctx context.Context, from, to, status string) ([]models.StorefrontOrder, error) {
	if status == "" {
		status = "any"
	}

	query := url.Values{}
	query.Set("status", status)
	query.Set("limit", fmt.Sprint(storefrontPageSize))
	query.Set("order", "created_at asc")
	if from != "" {
		query.Set("created_at_min", from+"T00:00:00Z")
	}
	if to != "" {
		query.Set("created_at_max", to+"T23:59:59Z")
	}

	var out []models.StorefrontOrder
	for {
		var page struct {
			Orders []models.StorefrontOrder `json:"orders"`
		}
		headers, err := s.store.Rest(ctx, http.MethodGet, "/orders.json", query, nil, &page)
		if err != nil {
			return nil, fmt.Errorf("fetch storefront orders: %w", err)
		}
		out = append(out, page.Orders...)

		pageInfo := storefront.NextPageInfo(headers)
		if pageInfo == "" {
			break
		}
		query.Set("page_info", pageInfo)
	}

	s.log.Info("Fetched storefront orders", zap.Int("count", len(out)))
	return out, nil
}

// SyncStorefront pushes open storefront orders from the window to the
// supplier and reports the per-order verdicts.
func (s *Service) SyncStorefront(ctx context.Context, from, to string) ([]PushResult, error) {
	sorders, err := s.FetchStorefrontOrders(ctx, from, to, "open")
	if err != nil {
		return nil, err
	}

	payloads := make([]models.OrderPayload, 0, len(sorders))
	for _, o := range sorders {
		payloads = append(payloads, OrderToSupplier(o))
	}

	s.log.Info("Syncing storefront orders to supplier", zap.Int("count", len(payloads)))
	return s.PushAll(ctx, payloads)
}

// InsertComment attaches a comment to a supplier order, stamped with the
// current UTC time.
func (s *Service) InsertComment(ctx context.Context, orderID int, author, comment string) error {
	payload := models.CommentPayload{
		ID: orderID,
		Comments: []models.Comment{{
			AuthorName: author,
			Comments:   comment,
			CreatedAt:  s.now().UTC().Format("2006-01-02 15:04:05"),
		}},
	}

	sess, err := s.dialer.Login(ctx)
	if err != nil {
		return err
	}
	defer sess.Close(ctx)

	if _, err := sess.Call(ctx, supplier.ProcInsertComment, payload); err != nil {
		return fmt.Errorf("insert comment on order %d: %w", orderID, err)
	}
	return nil
}

// Comments pulls the supplier's recent order comments.
func (s *Service) Comments(ctx context.Context) ([]map[string]any, error) {
	sess, err := s.dialer.Login(ctx)
	if err != nil {
		return nil, err
	}
	defer sess.Close(ctx)

	raw, err := sess.Call(ctx, supplier.ProcGetComments)
	if err != nil {
		return nil, fmt.Errorf("fetch comments: %w", err)
	}
	return supplier.Decode[[]map[string]any](raw), nil
}
