// Package api implements the HTTP request gateway for the archive service.
//
// Every outbound call in the SDK funnels through [Client.Do]: it is the only
// place where the effective endpoint URL, authentication headers, query and
// body serialization, and response interpretation are applied. The public
// package maps operation parameters onto Do and re-wraps the errors defined
// here.
//
// The effective endpoint URL is derived exactly once, at construction:
//
//   - if the configured base URL already carries a port, only the fixed
//     /api/v2 prefix is appended;
//   - otherwise, if a proxy or an explicit port is configured, the port
//     (default 8081) is appended, then the prefix;
//   - otherwise the prefix is appended directly.
//
// Requests are sent exactly once. There is no retry policy; retrying is the
// caller's responsibility.
package api
