// Package header provides a validated collection of HTTP message headers,
// including WebSocket handshake headers (RFC 7230, RFC 6455).
//
// # Overview
//
// [Collection] is an ordered, case-insensitive name/value collection. Unlike a plain map
// it guarantees that:
//
//   - header names are tokens and header values are field-value text;
//   - restricted headers (Host, Content-Length, Sec-WebSocket-Key, ...) are mutated only
//     by trusted collections, i.e. collections created by the message layer;
//   - a single collection holds either request headers or response headers, never both.
//
// # Registry
//
// Semantics of well-known headers are kept in a static registry, see [Lookup] and [Known].
// Each [Info] entry tells in which directions the header may appear, whether it is restricted
// and whether repeated values accumulate ([MultiValue]). Headers missing in the registry
// are custom headers: they may appear in both directions, are unrestricted and accumulate
// values on [Collection.Add].
//
// # Direction lock
//
// A new collection is [Unspecified]. The first header that may appear only in requests
// (e.g. Host) locks it to [LockedRequest], the first response-only header (e.g. Server)
// locks it to [LockedResponse]. After that, headers of the other direction fail with
// [ErrDirectionConflict]. Headers allowed in both directions never change the lock.
// Only [Collection.Clear] resets it.
//
//	hdrs := header.New(false)
//	hdrs.Add("Upgrade", "websocket")        // ok, both directions
//	hdrs.Add("Sec-WebSocket-Version", "13") // ErrRestrictedHeader, untrusted
//	hdrs.Add("If-Match", `"abc"`)           // locks to request
//	hdrs.Add("Location", "/")               // ErrDirectionConflict
//
// # Ingestion
//
// The message layer builds trusted collections from wire lines with [Collection.InternalSet]
// or reads a whole header block with [Read]. Ingestion skips character validation,
// the restricted guard and the direction lock: the wire is authoritative.
//
// # Errors
//
// All errors are sentinel values matched with [errors.Is]: [ErrInvalidName],
// [ErrInvalidValue] (and [ErrValueTooLong]), [ErrRestrictedHeader],
// [ErrDirectionConflict], [ErrMissingColon] and [ErrInvalidSnapshot].
// A failed mutation leaves the collection unchanged.
//
// # Snapshots
//
// [Collection.Export] and [Import] convert a collection to a [Snapshot] and back.
// Snapshots are encoded to JSON with encoding/json or to msgpack with
// [Snapshot.MarshalBinary].
package header
