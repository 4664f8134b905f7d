package navidrome

import (
	"context"
	"errors"
	"net/http"
)

// ArtistService provides artist operations across both Navidrome APIs.
type ArtistService struct {
	client *Client
}

// List returns every artist known to the server.
//
// Requires a session with a bearer token. If the server answers with a
// non-2xx status the body is still decoded; when that succeeds the artists
// are returned together with the *Error. A body that cannot be decoded
// yields an error wrapping ErrDecode.
func (s *ArtistService) List(ctx context.Context) ([]Artist, error) {
	sess := s.client.session
	if sess == nil || sess.Token == "" {
		return nil, ErrNoToken
	}

	header := http.Header{}
	header.Set(headerAuthorization, "Bearer "+sess.Token)

	data, err := s.client.call(ctx, http.MethodGet, pathArtists, nil, header, nil)
	if err != nil && !isAPIError(err) {
		return nil, err
	}

	var artists []Artist
	err = decode(data, &artists, "artist list", err)
	if errors.Is(err, ErrDecode) {
		return nil, err
	}

	s.client.logDebugf("navidrome: listed %d artists", len(artists))
	return artists, err
}

// GetInfo requests external info for one artist through the Subsonic API.
//
// Navidrome refreshes an artist's biography and images from its agents as a
// side effect of this call when they are out of date. Requires a session
// with Subsonic credentials.
//
// Like List, a non-2xx response is still decoded and returned alongside
// the *Error when possible.
func (s *ArtistService) GetInfo(ctx context.Context, id string) (*ArtistInfo, error) {
	sess := s.client.session
	if sess == nil || sess.Subsonic.Username == "" || sess.Subsonic.Token == "" {
		return nil, ErrNoSubsonicCredentials
	}

	query := sess.Subsonic.Values()
	query.Set("id", id)

	data, err := s.client.call(ctx, http.MethodGet, pathGetArtistInfo, query, nil, nil)
	if err != nil && !isAPIError(err) {
		return nil, err
	}

	var info ArtistInfo
	err = decode(data, &info, "artist info", err)
	if errors.Is(err, ErrDecode) {
		return nil, err
	}

	return &info, err
}
