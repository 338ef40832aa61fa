package filter

import (
	"maps"
	"slices"
	"strings"
	"time"

	"github.com/expr-lang/expr"

	"github.com/s0up4200/tmdbkit/tmdb"
)

// DefaultCacheSize is the number of compiled filters a Compiler keeps
const DefaultCacheSize = 100

// CompilerOption configures a Compiler
type CompilerOption func(*Compiler)

// WithCacheSize bounds the compiled filter cache. Zero disables caching.
func WithCacheSize(size int) CompilerOption {
	return func(c *Compiler) {
		if size <= 0 {
			c.cache = nil
			return
		}
		c.cache = newLRUCache(size)
	}
}

// WithFunctions adds helper functions available to every expression
func WithFunctions(funcs map[string]any) CompilerOption {
	return func(c *Compiler) {
		maps.Copy(c.helpers, funcs)
	}
}

// Compiler compiles expressions into filters and caches the result
type Compiler struct {
	helpers map[string]any
	cache   *lruCache
}

// NewCompiler creates a new expr-based filter compiler
func NewCompiler(opts ...CompilerOption) *Compiler {
	c := &Compiler{
		helpers: helperFunctions(),
		cache:   newLRUCache(DefaultCacheSize),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

var defaultCompiler = NewCompiler()

// Compile compiles expression with the shared default compiler
func Compile(expression string) (*Filter, error) {
	return defaultCompiler.Compile(expression)
}

// Compile compiles an expression into an executable filter
func (c *Compiler) Compile(expression string) (*Filter, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "empty expression",
		}
	}

	if c.cache != nil {
		if cached, ok := c.cache.get(expression); ok {
			return cached, nil
		}
	}

	// Type-check against a zero record so field and helper misuse fails here
	// rather than on every evaluation
	compileEnv := recordEnv(record{}, c.helpers)

	program, err := expr.Compile(expression,
		expr.Env(compileEnv),
		expr.AllowUndefinedVariables(),
		expr.AsBool(),
	)
	if err != nil {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "failed to compile expression",
			Err:        err,
		}
	}

	f := &Filter{
		expression: expression,
		program:    program,
		helpers:    c.helpers,
	}

	if c.cache != nil {
		c.cache.put(expression, f)
	}

	return f, nil
}

// Clear removes all cached filters
func (c *Compiler) Clear() {
	if c.cache != nil {
		c.cache.clear()
	}
}

// Size returns the number of cached filters
func (c *Compiler) Size() int {
	if c.cache != nil {
		return c.cache.len()
	}
	return 0
}

// record is the shape shared by movies and series during evaluation, so one
// expression can be applied to either
type record struct {
	ID               int
	Title            string
	OriginalTitle    string
	OriginalLanguage string
	Overview         string
	Date             time.Time
	Popularity       float64
	VoteAverage      float64
	VoteCount        int
	Adult            bool
	GenreIDs         []int
}

func movieRecord(m tmdb.MovieSummary) record {
	return record{
		ID:               m.ID,
		Title:            m.Title,
		OriginalTitle:    m.OriginalTitle,
		OriginalLanguage: m.OriginalLanguage,
		Overview:         m.Overview,
		Date:             parseDate(m.ReleaseDate),
		Popularity:       m.Popularity,
		VoteAverage:      m.VoteAverage,
		VoteCount:        m.VoteCount,
		Adult:            m.Adult,
		GenreIDs:         m.GenreIDs,
	}
}

func seriesRecord(s tmdb.TVSeriesSummary) record {
	return record{
		ID:               s.ID,
		Title:            s.Name,
		OriginalTitle:    s.OriginalName,
		OriginalLanguage: s.OriginalLanguage,
		Overview:         s.Overview,
		Date:             parseDate(s.FirstAirDate),
		Popularity:       s.Popularity,
		VoteAverage:      s.VoteAverage,
		VoteCount:        s.VoteCount,
		GenreIDs:         s.GenreIDs,
	}
}

// recordEnv builds the evaluation environment for one record
func recordEnv(r record, helpers map[string]any) map[string]any {
	env := make(map[string]any, len(helpers)+16)
	maps.Copy(env, helpers)

	year := 0
	if !r.Date.IsZero() {
		year = r.Date.Year()
	}

	env["ID"] = r.ID
	env["Title"] = r.Title
	env["Name"] = r.Title
	env["OriginalTitle"] = r.OriginalTitle
	env["OriginalLanguage"] = r.OriginalLanguage
	env["Overview"] = r.Overview
	env["Year"] = year
	env["ReleaseDate"] = r.Date
	env["FirstAirDate"] = r.Date
	env["Popularity"] = r.Popularity
	env["VoteAverage"] = r.VoteAverage
	env["VoteCount"] = r.VoteCount
	env["Adult"] = r.Adult
	env["GenreIDs"] = r.GenreIDs

	genres := r.GenreIDs
	env["hasGenre"] = func(id int) bool {
		return slices.Contains(genres, id)
	}

	return env
}

// helperFunctions returns the record-independent helpers
func helperFunctions() map[string]any {
	return map[string]any{
		// Date helpers
		"daysSince": func(t time.Time) int {
			return int(time.Since(t).Hours() / 24)
		},
		"daysAgo": func(days int) time.Time {
			return time.Now().AddDate(0, 0, -days)
		},
		"monthsAgo": func(months int) time.Time {
			return time.Now().AddDate(0, -months, 0)
		},
		"yearsAgo": func(years int) time.Time {
			return time.Now().AddDate(-years, 0, 0)
		},
		"parseDate": parseDate,
		// String helpers
		"contains": func(str, substr string) bool {
			return strings.Contains(strings.ToLower(str), strings.ToLower(substr))
		},
		"startsWith": func(str, prefix string) bool {
			return strings.HasPrefix(strings.ToLower(str), strings.ToLower(prefix))
		},
		"endsWith": func(str, suffix string) bool {
			return strings.HasSuffix(strings.ToLower(str), strings.ToLower(suffix))
		},
		"lower": strings.ToLower,
		"upper": strings.ToUpper,
		"now":   time.Now,
	}
}

// parseDate parses a catalog date; unknown dates are the zero time
func parseDate(s string) time.Time {
	t, _ := time.Parse(time.DateOnly, s)
	return t
}
