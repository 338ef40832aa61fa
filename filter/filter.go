package filter

import (
	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/s0up4200/tmdbkit/tmdb"
)

// Filter is a compiled expression. It is safe for concurrent use.
type Filter struct {
	expression string
	program    *vm.Program
	helpers    map[string]any
}

// Expression returns the original expression
func (f *Filter) Expression() string {
	return f.expression
}

// EvaluateMovie evaluates the filter against a movie
func (f *Filter) EvaluateMovie(m tmdb.MovieSummary) (bool, error) {
	return f.evaluate(movieRecord(m), m.Title)
}

// EvaluateSeries evaluates the filter against a series
func (f *Filter) EvaluateSeries(s tmdb.TVSeriesSummary) (bool, error) {
	return f.evaluate(seriesRecord(s), s.Name)
}

func (f *Filter) evaluate(r record, subject string) (bool, error) {
	result, err := expr.Run(f.program, recordEnv(r, f.helpers))
	if err != nil {
		return false, &EvaluationError{
			Expression: f.expression,
			Subject:    subject,
			Err:        err,
		}
	}

	// AsBool at compile time guarantees the type
	return result.(bool), nil
}

// Movies returns the movies matching f in their original order. A movie the
// filter fails to evaluate against does not match.
func Movies(f *Filter, movies []tmdb.MovieSummary) []tmdb.MovieSummary {
	var matches []tmdb.MovieSummary
	for _, m := range movies {
		if ok, err := f.EvaluateMovie(m); err == nil && ok {
			matches = append(matches, m)
		}
	}
	return matches
}

// Series returns the series matching f in their original order
func Series(f *Filter, series []tmdb.TVSeriesSummary) []tmdb.TVSeriesSummary {
	var matches []tmdb.TVSeriesSummary
	for _, s := range series {
		if ok, err := f.EvaluateSeries(s); err == nil && ok {
			matches = append(matches, s)
		}
	}
	return matches
}
