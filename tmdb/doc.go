// Package tmdb provides a client for The Movie Database (TMDB) v3 API.
//
// Search results are paginated server-side. The client fetches the first
// page, learns the page count from it and then retrieves the remaining
// pages concurrently. Series details fan out over every season the same way.
// Both report progress through a progress.Tracker when one is given.
//
// # Usage
//
//	logger := zerolog.New(os.Stdout)
//	client, err := tmdb.NewClient(
//		os.Getenv("TMDB_API_KEY"),
//		logger,
//		tmdb.WithTimeout(30*time.Second),
//		tmdb.WithConcurrency(8),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	root := progress.New()
//	movies, err := client.SearchMovies(ctx, "star", tmdb.MovieSearchOptions{}, root)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	series, err := client.SeriesDetails(ctx, 1399, nil)
//
// # Error Handling
//
// The package defines several error types:
//
//   - ErrMissingAuthorization: No API key configured; no request is sent
//   - ErrInvalidConfig: Invalid client configuration
//   - ErrInvalidBaseURL: The image base URL from the configuration endpoint is unusable
//   - APIError: Any non-2xx response, with its status code and message
//   - TransportError: Connectivity failure or timeout
//   - DecodeError: Malformed response payload
//
// API errors include helper methods for classification:
//
//	var apiErr *tmdb.APIError
//	if errors.As(err, &apiErr) && apiErr.IsUnauthorized() {
//		// Handle auth failure
//	}
//
// A failure on any page of a search or on any season other than a 404 fails
// the whole call. Partial results are never returned.
package tmdb
