package supplier

import "context"

// Session is an authenticated supplier API session.
// All dropshipping procedures go through the generic Call entry point.
type Session interface {
	// Call executes a named remote procedure with positional parameters
	// and returns the raw response payload. Payloads frequently arrive as
	// JSON encoded inside a string; use Decode to unpack them.
	Call(ctx context.Context, procedure string, params ...any) (string, error)
	// Close ends the remote session. Errors are best-effort and ignored
	// by callers; a session that fails to close expires server-side.
	Close(ctx context.Context) error
}

// Dialer opens supplier sessions.
type Dialer interface {
	// Login authenticates against the supplier API and returns a live session.
	Login(ctx context.Context) (Session, error)
}

// Procedure names exposed by the dropshipping API.
const (
	ProcGetProductList  = "dropshipping.getProductList"
	ProcGetProductInfo  = "dropshipping.getProductInfo"
	ProcGetOrders       = "dropshipping.getOrders"
	ProcGetRefundOrders = "dropshipping.getRefundOrders"
	ProcCreateOrder     = "dropshipping.createOrder"
	ProcUpdateOrder     = "dropshipping.updateOrder"
	ProcInsertComment   = "dropshipping.insertComment"
	ProcGetComments     = "dropshipping.getComments"
)
