// Package supplier provides the client for the dropshipping supplier API.
//
// The supplier exposes a stateful SOAP surface: a login call yields a session
// token, named procedures are executed through a generic call entry point,
// and endSession releases the token. This package wraps that lifecycle behind
// the Dialer and Session interfaces so feature code never touches transport
// details.
//
// # Payload Encoding
//
// Most procedures return their payload as JSON encoded inside the SOAP
// string result. Decode unpacks those payloads; a payload that fails to
// decode yields an empty collection by contract.
//
// # Usage
//
//	dialer := supplier.NewDialer(cfg, log)
//	sess, err := dialer.Login(ctx)
//	if err != nil { ... }
//	defer sess.Close(ctx)
//
//	raw, err := sess.Call(ctx, supplier.ProcGetProductList)
//	products := supplier.Decode[[]map[string]any](raw)
package supplier
