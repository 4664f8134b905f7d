// Package navidrome provides a client for the parts of the Navidrome HTTP API
// needed to refresh artist metadata.
//
// # Overview
//
// Navidrome exposes two APIs side by side: its native REST API under /api,
// authenticated with a bearer token, and a Subsonic-compatible API under
// /rest, authenticated with query parameters. A single login against
// /auth/login yields credentials for both.
//
// # Quick Start
//
//	client, err := navidrome.NewClient(navidrome.Config{
//	    BaseURL: "https://music.example.com",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	login, err := client.Auth().Login(ctx, "admin", "secret")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	client.SetSession(login.Session())
//
// # Artists
//
// Once a session is set, artists can be listed and their external info
// requested. Requesting artist info causes Navidrome to refresh biography
// and images from its configured agents when they are stale:
//
//	artists, err := client.Artists().List(ctx)
//	for _, a := range artists {
//	    info, err := client.Artists().GetInfo(ctx, a.ID.String())
//	    ...
//	}
//
// # Error Handling
//
// Non-2xx responses are reported as *navidrome.Error. Methods that decode a
// body still try to decode it after a non-2xx status, and return the decoded
// value together with the *Error so callers can report and carry on:
//
//	artists, err := client.Artists().List(ctx)
//	var apiErr *navidrome.Error
//	if errors.As(err, &apiErr) {
//	    log.Printf("server said %d: %s", apiErr.StatusCode, apiErr.Body)
//	}
//	if errors.Is(err, navidrome.ErrDecode) {
//	    // the body was not usable
//	}
//
// # Context Support
//
// All API methods accept a context.Context for cancellation and timeouts.
package navidrome
