// Package signalrgb is a Go client for the SignalRGB REST API, the local
// HTTP service that controls RGB lighting effects, presets, layouts, and
// canvas state (brightness, enabled flag).
//
// Two façades expose the same operation set with identical semantics and
// error types:
//
//   - Client: context-aware methods, cancellable at every network call.
//   - SyncClient: blocking methods, each driven to completion under its
//     own timeout context.
//
// # Quick start
//
//	client, err := signalrgb.NewSyncClient(nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
//	effects, err := client.ListEffects()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, e := range effects {
//	    fmt.Println(e.ID, e.Name())
//	}
//
//	if _, err := client.ApplyEffectByName("Rainbow Wave"); err != nil {
//	    if signalrgb.IsNotFound(err) {
//	        log.Println("no such effect")
//	    } else {
//	        log.Fatal(err)
//	    }
//	}
//
// # Errors
//
// Every failure falls into one of four kinds: ConnectionError for
// network-level problems, NotFoundError for unresolvable resources,
// APIError for server-reported or malformed responses, and ValidationError
// for client-side precondition violations. Use the IsNotFound,
// IsConnectionError, IsAPIError, and IsValidation helpers, or errors.As
// with the concrete types.
//
// # Caching
//
// The effect list is cached per client instance and refreshed only through
// RefreshEffects; there is no TTL. Applying effects does not invalidate
// the cache.
package signalrgb

// Version is the client library version, reported in the User-Agent
// header.
const Version = "1.0.0"
