package tmdb

import (
	"net/url"
	"strconv"
	"strings"
)

// Query parameter names
const (
	paramAPIKey             = "api_key"
	paramLanguage           = "language"
	paramPage               = "page"
	paramQuery              = "query"
	paramYear               = "year"
	paramPrimaryReleaseYear = "primary_release_year"
	paramFirstAirDateYear   = "first_air_date_year"
	paramExternalSource     = "external_source"
	paramAppendToResponse   = "append_to_response"
)

// Sub-resources that can be folded into a details response
const (
	appendImages      = "images"
	appendExternalIDs = "external_ids"
)

// request describes one API call relative to the base URL
type request struct {
	segments []string
	params   url.Values
	appended []string
}

func newRequest(segments ...string) *request {
	return &request{
		segments: segments,
		params:   url.Values{},
	}
}

func (r *request) with(name, value string) *request {
	r.params.Set(name, value)
	return r
}

func (r *request) withInt(name string, value int) *request {
	return r.with(name, strconv.Itoa(value))
}

// withOptionalInt skips zero values
func (r *request) withOptionalInt(name string, value int) *request {
	if value == 0 {
		return r
	}
	return r.withInt(name, value)
}

func (r *request) appending(parts ...string) *request {
	r.appended = append(r.appended, parts...)
	return r
}

// url renders the request against baseURL. The caller supplies the
// credential so it never lives on the request itself.
func (r *request) url(baseURL, apiKey, language string) string {
	params := url.Values{}
	for k, v := range r.params {
		params[k] = v
	}
	params.Set(paramAPIKey, apiKey)
	if language != "" {
		params.Set(paramLanguage, language)
	}
	if len(r.appended) > 0 {
		params.Set(paramAppendToResponse, strings.Join(r.appended, ","))
	}

	escaped := make([]string, len(r.segments))
	for i, s := range r.segments {
		escaped[i] = url.PathEscape(s)
	}

	return baseURL + "/" + strings.Join(escaped, "/") + "?" + params.Encode()
}

func searchMovieRequest(query string, opts MovieSearchOptions, page int) *request {
	return newRequest("search", "movie").
		with(paramQuery, query).
		withOptionalInt(paramYear, opts.Year).
		withOptionalInt(paramPrimaryReleaseYear, opts.PrimaryReleaseYear).
		withInt(paramPage, page)
}

func searchTVRequest(query string, opts TVSearchOptions, page int) *request {
	return newRequest("search", "tv").
		with(paramQuery, query).
		withOptionalInt(paramFirstAirDateYear, opts.FirstAirYear).
		withInt(paramPage, page)
}

func movieRequest(id int) *request {
	return newRequest("movie", strconv.Itoa(id)).
		appending(appendImages, appendExternalIDs)
}

func tvSeriesRequest(id int) *request {
	return newRequest("tv", strconv.Itoa(id)).
		appending(appendImages, appendExternalIDs)
}

func seasonRequest(seriesID, season int) *request {
	return newRequest("tv", strconv.Itoa(seriesID), "season", strconv.Itoa(season))
}

func findRequest(externalID string, source ExternalSource) *request {
	return newRequest("find", externalID).
		with(paramExternalSource, string(source))
}

func configurationRequest() *request {
	return newRequest("configuration")
}

// redact strips the API key from a request URL before it is logged or
// attached to an error
func redact(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	q := u.Query()
	if q.Has(paramAPIKey) {
		q.Set(paramAPIKey, "REDACTED")
		u.RawQuery = q.Encode()
	}
	return u.String()
}
