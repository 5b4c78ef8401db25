// Package obs carries the request id and times store operations. Both the
// ledger and the graph adapters defer Time around every call, so each store
// operation emits one log line tying latency and outcome back to the request.
package obs

import (
	"context"
	"log"
	"time"
)

type ctxKey string

// RequestIDKey is the context key the HTTP middleware stores the request id
// under. Store operations read it back so their log lines correlate.
const RequestIDKey ctxKey = "req_id"

// Time returns a deferred closure that logs the operation's duration and, if
// the pointed-to error is non-nil by then, the failure.
func Time(ctx context.Context, op string) func(errp *error) {
	start := time.Now()
	reqID, _ := ctx.Value(RequestIDKey).(string)

	return func(errp *error) {
		elapsed := time.Since(start).Milliseconds()

		if errp != nil && *errp != nil {
			log.Printf("req_id=%s op=%s dur=%dms err=%v", reqID, op, elapsed, *errp)
			return
		}
		log.Printf("req_id=%s op=%s dur=%dms", reqID, op, elapsed)
	}
}
