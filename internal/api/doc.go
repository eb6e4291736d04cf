// Package api provides the HTTP REST API server for FitTrack Core.
//
// It exposes registration, login, the ownership-scoped workout log, and
// the admin surface (user listing, role changes, cross-user workout
// listing and deletion) over JSON.
//
// Every protected request passes two checkpoints: the authentication
// gate extracts and verifies the bearer token, attaching claims to the
// request context; the optional role gate then requires the admin role.
// Requests are independently verified; no session state is carried
// between them besides the token itself.
//
// The server follows the standard lifecycle pattern:
//
//	server, err := api.New(deps)
//	server.Start(ctx)
//	defer server.Close()
package api
