package domain

// Filter selects which tasks a view includes.
type Filter string

const (
	// FilterAll includes every task.
	FilterAll Filter = "all"
	// FilterCompleted includes completed tasks only.
	FilterCompleted Filter = "completed"
	// FilterPending includes pending tasks only.
	FilterPending Filter = "pending"
)

// Filters lists the recognized filters in menu order.
var Filters = []Filter{FilterAll, FilterCompleted, FilterPending}

// ParseFilter converts s into a Filter. Unrecognized values yield FilterAll.
func ParseFilter(s string) Filter {
	switch f := Filter(s); f {
	case FilterCompleted, FilterPending:
		return f
	default:
		return FilterAll
	}
}

// IsValid reports whether f is one of the recognized filters.
func (f Filter) IsValid() bool {
	return f == FilterAll || f == FilterCompleted || f == FilterPending
}

// Match reports whether the task satisfies the filter.
// Unrecognized filters match every task.
func (f Filter) Match(t *Task) bool {
	switch f {
	case FilterCompleted:
		return t.Completed
	case FilterPending:
		return !t.Completed
	default:
		return true
	}
}

// Next returns the filter that follows f in menu order, wrapping around.
func (f Filter) Next() Filter {
	for i, candidate := range Filters {
		if candidate == f {
			return Filters[(i+1)%len(Filters)]
		}
	}
	return FilterAll
}
