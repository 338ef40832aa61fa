package tmdb

import (
	"strconv"
	"strings"
)

// MovieStatus is the release status of a movie
type MovieStatus string

const (
	MovieStatusRumored        MovieStatus = "Rumored"
	MovieStatusPlanned        MovieStatus = "Planned"
	MovieStatusInProduction   MovieStatus = "In Production"
	MovieStatusPostProduction MovieStatus = "Post Production"
	MovieStatusReleased       MovieStatus = "Released"
	MovieStatusCanceled       MovieStatus = "Canceled"
)

// IsReleased checks if the movie has been released
func (s MovieStatus) IsReleased() bool {
	return s == MovieStatusReleased
}

// ExternalSource names an external id namespace accepted by the find endpoint
type ExternalSource string

const (
	// ExternalSourceIMDB looks up by IMDb id (tt...)
	ExternalSourceIMDB ExternalSource = "imdb_id"
	// ExternalSourceTVDB looks up by TheTVDB id
	ExternalSourceTVDB ExternalSource = "tvdb_id"
)

// Genre is a movie or TV genre
type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// MovieSummary is a movie as returned by search and find
type MovieSummary struct {
	ID               int     `json:"id"`
	Title            string  `json:"title"`
	OriginalTitle    string  `json:"original_title"`
	OriginalLanguage string  `json:"original_language"`
	Overview         string  `json:"overview"`
	ReleaseDate      string  `json:"release_date"`
	PosterPath       string  `json:"poster_path"`
	BackdropPath     string  `json:"backdrop_path"`
	GenreIDs         []int   `json:"genre_ids"`
	Adult            bool    `json:"adult"`
	Video            bool    `json:"video"`
	Popularity       float64 `json:"popularity"`
	VoteAverage      float64 `json:"vote_average"`
	VoteCount        int     `json:"vote_count"`
}

// Year returns the release year, or 0 when unknown
func (m *MovieSummary) Year() int {
	return yearOf(m.ReleaseDate)
}

// TVSeriesSummary is a series as returned by search and find
type TVSeriesSummary struct {
	ID               int      `json:"id"`
	Name             string   `json:"name"`
	OriginalName     string   `json:"original_name"`
	OriginalLanguage string   `json:"original_language"`
	OriginCountry    []string `json:"origin_country"`
	Overview         string   `json:"overview"`
	FirstAirDate     string   `json:"first_air_date"`
	PosterPath       string   `json:"poster_path"`
	BackdropPath     string   `json:"backdrop_path"`
	GenreIDs         []int    `json:"genre_ids"`
	Popularity       float64  `json:"popularity"`
	VoteAverage      float64  `json:"vote_average"`
	VoteCount        int      `json:"vote_count"`
}

// Year returns the first air year, or 0 when unknown
func (s *TVSeriesSummary) Year() int {
	return yearOf(s.FirstAirDate)
}

// Image is one image entry of a media item
type Image struct {
	FilePath    string  `json:"file_path"`
	AspectRatio float64 `json:"aspect_ratio"`
	Width       int     `json:"width"`
	Height      int     `json:"height"`
	Language    string  `json:"iso_639_1"`
	VoteAverage float64 `json:"vote_average"`
	VoteCount   int     `json:"vote_count"`
}

// ImageGroup holds the images appended to a details response
type ImageGroup struct {
	Backdrops []Image `json:"backdrops"`
	Logos     []Image `json:"logos"`
	Posters   []Image `json:"posters"`
}

// MovieExternalIDs are the external ids of a movie
type MovieExternalIDs struct {
	IMDBID      string `json:"imdb_id"`
	FacebookID  string `json:"facebook_id"`
	InstagramID string `json:"instagram_id"`
	TwitterID   string `json:"twitter_id"`
}

// Movie is the full movie record
type Movie struct {
	MovieSummary
	Budget      int64            `json:"budget"`
	Revenue     int64            `json:"revenue"`
	Runtime     int              `json:"runtime"`
	Homepage    string           `json:"homepage"`
	IMDBID      string           `json:"imdb_id"`
	Status      MovieStatus      `json:"status"`
	Tagline     string           `json:"tagline"`
	Genres      []Genre          `json:"genres"`
	Images      ImageGroup       `json:"images"`
	ExternalIDs MovieExternalIDs `json:"external_ids"`
}

// TVSeriesExternalIDs are the external ids of a series
type TVSeriesExternalIDs struct {
	IMDBID string `json:"imdb_id"`
	TVDBID int    `json:"tvdb_id"`
}

// TVSeries is the full series record
type TVSeries struct {
	TVSeriesSummary
	Homepage         string              `json:"homepage"`
	InProduction     bool                `json:"in_production"`
	LastAirDate      string              `json:"last_air_date"`
	NumberOfEpisodes int                 `json:"number_of_episodes"`
	NumberOfSeasons  int                 `json:"number_of_seasons"`
	Status           string              `json:"status"`
	Tagline          string              `json:"tagline"`
	Type             string              `json:"type"`
	Genres           []Genre             `json:"genres"`
	Images           ImageGroup          `json:"images"`
	ExternalIDs      TVSeriesExternalIDs `json:"external_ids"`
}

// Episode is one episode of a season
type Episode struct {
	ID            int     `json:"id"`
	Name          string  `json:"name"`
	Overview      string  `json:"overview"`
	AirDate       string  `json:"air_date"`
	EpisodeNumber int     `json:"episode_number"`
	SeasonNumber  int     `json:"season_number"`
	StillPath     string  `json:"still_path"`
	VoteAverage   float64 `json:"vote_average"`
	VoteCount     int     `json:"vote_count"`
}

// Season is one season of a series, with its episodes
type Season struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	Overview     string    `json:"overview"`
	AirDate      string    `json:"air_date"`
	PosterPath   string    `json:"poster_path"`
	SeasonNumber int       `json:"season_number"`
	Episodes     []Episode `json:"episodes"`
}

// IsSpecials reports whether this is the specials season
func (s *Season) IsSpecials() bool {
	return s.SeasonNumber == 0
}

// SeriesDetails is a series together with the seasons the catalog actually
// serves. Seasons holds at most NumberOfSeasons+1 entries in season order.
type SeriesDetails struct {
	TVSeries
	Seasons []Season
}

// Episodes flattens the episodes of all present seasons
func (d *SeriesDetails) Episodes() []Episode {
	var total int
	for i := range d.Seasons {
		total += len(d.Seasons[i].Episodes)
	}
	episodes := make([]Episode, 0, total)
	for i := range d.Seasons {
		episodes = append(episodes, d.Seasons[i].Episodes...)
	}
	return episodes
}

// Season returns the season with the given number, if present
func (d *SeriesDetails) Season(number int) (*Season, bool) {
	for i := range d.Seasons {
		if d.Seasons[i].SeasonNumber == number {
			return &d.Seasons[i], true
		}
	}
	return nil, false
}

// FindResult holds the media matching an external id
type FindResult struct {
	Movies   []MovieSummary    `json:"movie_results"`
	TVSeries []TVSeriesSummary `json:"tv_results"`
}

// ImageConfiguration describes where and at which sizes images are served
type ImageConfiguration struct {
	BaseURL       string   `json:"base_url"`
	SecureBaseURL string   `json:"secure_base_url"`
	BackdropSizes []string `json:"backdrop_sizes"`
	LogoSizes     []string `json:"logo_sizes"`
	PosterSizes   []string `json:"poster_sizes"`
	ProfileSizes  []string `json:"profile_sizes"`
	StillSizes    []string `json:"still_sizes"`
}

// Configuration is the API configuration record
type Configuration struct {
	Images     ImageConfiguration `json:"images"`
	ChangeKeys []string           `json:"change_keys"`
}

// Sizes returns the available size tokens per image category
func (c *Configuration) Sizes() map[string][]string {
	return map[string][]string{
		"backdrop": c.Images.BackdropSizes,
		"logo":     c.Images.LogoSizes,
		"poster":   c.Images.PosterSizes,
		"profile":  c.Images.ProfileSizes,
		"still":    c.Images.StillSizes,
	}
}

// searchResponse is the paginated envelope of the search endpoints
type searchResponse[T any] struct {
	Page         int `json:"page"`
	TotalPages   int `json:"total_pages"`
	TotalResults int `json:"total_results"`
	Results      []T `json:"results"`
}

// yearOf extracts the year from a YYYY-MM-DD date
func yearOf(date string) int {
	if len(date) < 4 {
		return 0
	}
	year, err := strconv.Atoi(strings.TrimSpace(date[:4]))
	if err != nil {
		return 0
	}
	return year
}
