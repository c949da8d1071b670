// Package query implements the list query options accepted by collection
// endpoints: filter, orderby, top and skip. Options are applied in memory
// over the response slice after the service has produced it, so every
// filterable field is exactly a field of the response type.
package query

import (
	"fmt"
	"net/url"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"parttimejobs/internal/apperr"
)

// DefaultMaxTop caps page sizes on most collections.
const DefaultMaxTop = 100

type Op string

const (
	OpEq       Op = "eq"
	OpNe       Op = "ne"
	OpGt       Op = "gt"
	OpGe       Op = "ge"
	OpLt       Op = "lt"
	OpLe       Op = "le"
	OpContains Op = "contains"
)

type Filter struct {
	Field string
	Op    Op
	Value string
}

type OrderBy struct {
	Field string
	Desc  bool
}

// Options holds the parsed query parameters. Zero Top means "no limit".
type Options struct {
	Filter  *Filter
	OrderBy *OrderBy
	Top     int
	Skip    int
}

var containsRe = regexp.MustCompile(`^contains\(\s*(\w+)\s*,\s*'(.*)'\s*\)$`)

var comparisonOps = map[string]Op{
	"eq": OpEq, "ne": OpNe,
	"gt": OpGt, "ge": OpGe,
	"lt": OpLt, "le": OpLe,
}

// Parse reads filter/orderby/top/skip from the request query. maxTop caps
// the requested page size; a request above the cap is clamped, not
// rejected. Malformed expressions return a validation error.
func Parse(values url.Values, maxTop int) (*Options, error) {
	opts := &Options{}

	if raw := strings.TrimSpace(values.Get("filter")); raw != "" {
		f, err := parseFilter(raw)
		if err != nil {
			return nil, err
		}
		opts.Filter = f
	}

	if raw := strings.TrimSpace(values.Get("orderby")); raw != "" {
		parts := strings.Fields(raw)
		switch {
		case len(parts) == 1:
			opts.OrderBy = &OrderBy{Field: parts[0]}
		case len(parts) == 2 && strings.EqualFold(parts[1], "desc"):
			opts.OrderBy = &OrderBy{Field: parts[0], Desc: true}
		case len(parts) == 2 && strings.EqualFold(parts[1], "asc"):
			opts.OrderBy = &OrderBy{Field: parts[0]}
		default:
			return nil, apperr.Validation(fmt.Sprintf("invalid orderby expression: %q", raw))
		}
	}

	if raw := values.Get("top"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return nil, apperr.Validation(fmt.Sprintf("invalid top value: %q", raw))
		}
		if n > maxTop {
			n = maxTop
		}
		opts.Top = n
	}

	if raw := values.Get("skip"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return nil, apperr.Validation(fmt.Sprintf("invalid skip value: %q", raw))
		}
		opts.Skip = n
	}

	return opts, nil
}

func parseFilter(raw string) (*Filter, error) {
	if m := containsRe.FindStringSubmatch(raw); m != nil {
		return &Filter{Field: m[1], Op: OpContains, Value: m[2]}, nil
	}

	parts := strings.SplitN(raw, " ", 3)
	if len(parts) != 3 {
		return nil, apperr.Validation(fmt.Sprintf("invalid filter expression: %q", raw))
	}
	op, ok := comparisonOps[strings.ToLower(parts[1])]
	if !ok {
		return nil, apperr.Validation(fmt.Sprintf("unsupported filter operator: %q", parts[1]))
	}
	value := strings.TrimSpace(parts[2])
	if len(value) >= 2 && strings.HasPrefix(value, "'") && strings.HasSuffix(value, "'") {
		value = value[1 : len(value)-1]
	}
	return &Filter{Field: parts[0], Op: op, Value: value}, nil
}

// Page applies skip/top to an already filtered, ordered slice.
func Page[T any](items []T, opts *Options) []T {
	if opts.Skip > 0 {
		if opts.Skip >= len(items) {
			return []T{}
		}
		items = items[opts.Skip:]
	}
	if opts.Top > 0 && opts.Top < len(items) {
		items = items[:opts.Top]
	}
	return items
}

// sortSlice orders items by the comparator, stably so equal elements keep
// their service-defined order.
func sortSlice[T any](items []T, less func(a, b T) bool) {
	sort.SliceStable(items, func(i, j int) bool { return less(items[i], items[j]) })
}
