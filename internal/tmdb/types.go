package tmdb

// MovieSummary is one entry in a trending or search result page. Optional
// fields keep their zero value when the catalog omits them; PosterPath and
// ReleaseDate are opaque strings passed through to the renderer.
type MovieSummary struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	PosterPath  string  `json:"poster_path,omitempty"`
	ReleaseDate string  `json:"release_date,omitempty"`
	VoteAverage float64 `json:"vote_average,omitempty"`
	VoteCount   int     `json:"vote_count,omitempty"`
	Overview    string  `json:"overview,omitempty"`
}

// Genre is a catalog genre tag. Order within a detail record is preserved.
type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// MovieDetail is the full record for a single title. It embeds the summary
// fields so a detail record can stand in wherever a summary is needed
// (favoriting from the detail view).
type MovieDetail struct {
	MovieSummary
	Tagline      string  `json:"tagline,omitempty"`
	Runtime      int     `json:"runtime,omitempty"`
	Genres       []Genre `json:"genres,omitempty"`
	Budget       int64   `json:"budget,omitempty"`
	Revenue      int64   `json:"revenue,omitempty"`
	BackdropPath string  `json:"backdrop_path,omitempty"`
	Homepage     string  `json:"homepage,omitempty"`
	IMDbID       string  `json:"imdb_id,omitempty"`
}

// page is the envelope the catalog wraps list results in.
type page struct {
	Page         int            `json:"page"`
	Results      []MovieSummary `json:"results"`
	TotalPages   int            `json:"total_pages"`
	TotalResults int            `json:"total_results"`
}

// apiError is the upstream error payload shape.
type apiError struct {
	StatusMessage string `json:"status_message"`
	StatusCode    int    `json:"status_code"`
}

// Year returns the four-digit release year, or empty string when the release
// date is absent or malformed.
func (m MovieSummary) Year() string {
	if len(m.ReleaseDate) < 4 {
		return ""
	}
	return m.ReleaseDate[:4]
}
