package navidrome

import (
	"encoding/json"
	"fmt"
	"net/url"
)

// NeverUpdated is the timestamp assumed for artists whose external info has
// never been fetched.
const NeverUpdated = "0001-01-01T00:00:00+00:00"

// Fixed Subsonic client parameters sent with every /rest request.
const (
	SubsonicFormat     = "json"
	SubsonicClientName = "Navidrome Artist Fetcher"
	SubsonicAPIVersion = "1.8.0"
)

// ID is an opaque artist identifier. Navidrome uses strings, but numeric
// identifiers are accepted as well and kept in their textual form.
type ID string

// UnmarshalJSON accepts a JSON string, number or null.
func (id *ID) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*id = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("navidrome: invalid id %s", b)
	}
	*id = ID(n.String())
	return nil
}

// String returns the identifier text.
func (id ID) String() string {
	return string(id)
}

// Artist is an entry of the native /api/artist listing.
type Artist struct {
	ID                    ID      `json:"id"`
	Name                  string  `json:"name"`
	ExternalInfoUpdatedAt *string `json:"externalInfoUpdatedAt,omitempty"`
}

// LastUpdated returns the external info timestamp, or NeverUpdated when the
// server did not report one.
func (a Artist) LastUpdated() string {
	if a.ExternalInfoUpdatedAt == nil {
		return NeverUpdated
	}
	return *a.ExternalInfoUpdatedAt
}

// ArtistInfo is the response of /rest/getArtistInfo.
type ArtistInfo struct {
	ExternalInfoUpdatedAt *string           `json:"externalInfoUpdatedAt,omitempty"`
	Response              *SubsonicResponse `json:"subsonic-response,omitempty"`
}

// UpdatedAt returns the reported external info timestamp, or previous when
// the response does not carry one.
func (i *ArtistInfo) UpdatedAt(previous string) string {
	if i == nil || i.ExternalInfoUpdatedAt == nil {
		return previous
	}
	return *i.ExternalInfoUpdatedAt
}

// Err returns the envelope error of a failed Subsonic response, if any.
func (i *ArtistInfo) Err() error {
	if i == nil || i.Response == nil || i.Response.Status != "failed" {
		return nil
	}
	if i.Response.Error != nil {
		return i.Response.Error
	}
	return &SubsonicError{Message: "request failed"}
}

// SubsonicResponse is the standard Subsonic JSON envelope.
//
// Only the fields needed to detect a failed request are decoded.
type SubsonicResponse struct {
	Status string         `json:"status"`
	Error  *SubsonicError `json:"error,omitempty"`
}

// SubsonicCredentials authenticate requests to the Subsonic-compatible API.
type SubsonicCredentials struct {
	Username string // Subsonic "u"
	Token    string // Subsonic "t", time limited
	Salt     string // Subsonic "s"
}

// Values encodes the credentials and fixed client parameters as a query.
func (s SubsonicCredentials) Values() url.Values {
	return url.Values{
		"u": {s.Username},
		"t": {s.Token},
		"s": {s.Salt},
		"f": {SubsonicFormat},
		"c": {SubsonicClientName},
		"v": {SubsonicAPIVersion},
	}
}

// Session is the pair of credentials obtained from a single login.
type Session struct {
	Token    string              // Bearer token for the native API
	Subsonic SubsonicCredentials // Query credentials for the Subsonic API
}
