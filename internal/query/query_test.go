package query

import (
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"parttimejobs/internal/apperr"
)

func TestParseFilterComparison(t *testing.T) {
	opts, err := Parse(url.Values{"filter": {"status eq 'Open'"}}, DefaultMaxTop)
	require.NoError(t, err)
	require.NotNil(t, opts.Filter)
	assert.Equal(t, "status", opts.Filter.Field)
	assert.Equal(t, OpEq, opts.Filter.Op)
	assert.Equal(t, "Open", opts.Filter.Value)
}

func TestParseFilterUnquotedLiteral(t *testing.T) {
	opts, err := Parse(url.Values{"filter": {"salary ge 12.5"}}, DefaultMaxTop)
	require.NoError(t, err)
	assert.Equal(t, OpGe, opts.Filter.Op)
	assert.Equal(t, "12.5", opts.Filter.Value)
}

func TestParseFilterContains(t *testing.T) {
	opts, err := Parse(url.Values{"filter": {"contains(title, 'cash')"}}, DefaultMaxTop)
	require.NoError(t, err)
	require.NotNil(t, opts.Filter)
	assert.Equal(t, "title", opts.Filter.Field)
	assert.Equal(t, OpContains, opts.Filter.Op)
	assert.Equal(t, "cash", opts.Filter.Value)
}

func TestParseFilterMalformed(t *testing.T) {
	for _, raw := range []string{"status", "status eq", "status like 'x'"} {
		_, err := Parse(url.Values{"filter": {raw}}, DefaultMaxTop)
		require.Error(t, err, raw)
		assert.True(t, apperr.Is(err, apperr.CodeValidation), raw)
	}
}

func TestParseOrderBy(t *testing.T) {
	opts, err := Parse(url.Values{"orderby": {"postedDate desc"}}, DefaultMaxTop)
	require.NoError(t, err)
	require.NotNil(t, opts.OrderBy)
	assert.Equal(t, "postedDate", opts.OrderBy.Field)
	assert.True(t, opts.OrderBy.Desc)

	opts, err = Parse(url.Values{"orderby": {"title asc"}}, DefaultMaxTop)
	require.NoError(t, err)
	assert.False(t, opts.OrderBy.Desc)

	_, err = Parse(url.Values{"orderby": {"a b c"}}, DefaultMaxTop)
	require.Error(t, err)
}

func TestParseTopClampedNotRejected(t *testing.T) {
	opts, err := Parse(url.Values{"top": {"500"}}, DefaultMaxTop)
	require.NoError(t, err)
	assert.Equal(t, DefaultMaxTop, opts.Top)
}

func TestParseTopAndSkipInvalid(t *testing.T) {
	_, err := Parse(url.Values{"top": {"-1"}}, DefaultMaxTop)
	require.Error(t, err)
	_, err = Parse(url.Values{"skip": {"abc"}}, DefaultMaxTop)
	require.Error(t, err)
}

type row struct {
	ID       uint       `json:"id"`
	Title    string     `json:"title"`
	Salary   *float64   `json:"salary,omitempty"`
	Posted   time.Time  `json:"posted"`
	Expires  *time.Time `json:"expires,omitempty"`
	IsActive bool       `json:"isActive"`
}

func floatPtr(v float64) *float64 { return &v }

func sampleRows() []row {
	return []row{
		{ID: 1, Title: "Cashier", Salary: floatPtr(10), Posted: time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC), IsActive: true},
		{ID: 2, Title: "Barista", Salary: floatPtr(14), Posted: time.Date(2026, 2, 5, 0, 0, 0, 0, time.UTC), IsActive: true},
		{ID: 3, Title: "Cleaner", Salary: nil, Posted: time.Date(2026, 1, 20, 0, 0, 0, 0, time.UTC), IsActive: false},
	}
}

func TestApplyFilterEq(t *testing.T) {
	out, err := Apply(sampleRows(), &Options{Filter: &Filter{Field: "title", Op: OpEq, Value: "Barista"}})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, uint(2), out[0].ID)
}

func TestApplyFilterContainsCaseInsensitive(t *testing.T) {
	out, err := Apply(sampleRows(), &Options{Filter: &Filter{Field: "title", Op: OpContains, Value: "CA"}})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Cashier", out[0].Title)
}

func TestApplyFilterNumericComparison(t *testing.T) {
	// Nil salaries match ne only, so they drop out of a ge comparison.
	out, err := Apply(sampleRows(), &Options{Filter: &Filter{Field: "salary", Op: OpGe, Value: "12"}})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Barista", out[0].Title)
}

func TestApplyFilterDateLiteral(t *testing.T) {
	out, err := Apply(sampleRows(), &Options{Filter: &Filter{Field: "posted", Op: OpGt, Value: "2026-01-15"}})
	require.NoError(t, err)
	require.Len(t, out, 2)
}

func TestApplyFilterBool(t *testing.T) {
	out, err := Apply(sampleRows(), &Options{Filter: &Filter{Field: "isActive", Op: OpEq, Value: "false"}})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Cleaner", out[0].Title)
}

func TestApplyFilterUnknownField(t *testing.T) {
	_, err := Apply(sampleRows(), &Options{Filter: &Filter{Field: "nope", Op: OpEq, Value: "x"}})
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.CodeValidation))
}

func TestApplyFilterMatchesGoFieldName(t *testing.T) {
	out, err := Apply(sampleRows(), &Options{Filter: &Filter{Field: "Title", Op: OpEq, Value: "Cleaner"}})
	require.NoError(t, err)
	require.Len(t, out, 1)
}

func TestApplyOrderByDesc(t *testing.T) {
	out, err := Apply(sampleRows(), &Options{OrderBy: &OrderBy{Field: "posted", Desc: true}})
	require.NoError(t, err)
	require.Len(t, out, 3)
	assert.Equal(t, "Barista", out[0].Title)
	assert.Equal(t, "Cashier", out[2].Title)
}

func TestApplyOrderByNilPointersFirst(t *testing.T) {
	out, err := Apply(sampleRows(), &Options{OrderBy: &OrderBy{Field: "salary"}})
	require.NoError(t, err)
	require.Len(t, out, 3)
	assert.Equal(t, "Cleaner", out[0].Title)
}

func TestApplyTopAndSkip(t *testing.T) {
	out, err := Apply(sampleRows(), &Options{OrderBy: &OrderBy{Field: "id"}, Top: 1, Skip: 1})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, uint(2), out[0].ID)
}

func TestApplySkipBeyondEnd(t *testing.T) {
	out, err := Apply(sampleRows(), &Options{Skip: 10})
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestApplyNilOptions(t *testing.T) {
	rows := sampleRows()
	out, err := Apply(rows, nil)
	require.NoError(t, err)
	assert.Len(t, out, len(rows))
}
