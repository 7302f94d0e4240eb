package task

import (
	"math"
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

type StatusFilter string

const (
	StatusAll       StatusFilter = "all"
	StatusActive    StatusFilter = "active"
	StatusCompleted StatusFilter = "completed"
)

func (f StatusFilter) Next() StatusFilter {
	switch f {
	case StatusAll:
		return StatusActive
	case StatusActive:
		return StatusCompleted
	case StatusCompleted:
		return StatusAll
	default:
		return StatusAll
	}
}

// CategoryFilter is either CategoryAll or the name of a single category.
type CategoryFilter string

const CategoryAll CategoryFilter = "all"

func (f CategoryFilter) Next() CategoryFilter {
	if f == CategoryAll {
		return CategoryFilter(CategoryPersonal)
	}
	c := Category(f)
	if !c.Valid() || c == CategoryOther {
		return CategoryAll
	}
	return CategoryFilter(c.Next())
}

type SortKey string

const (
	SortDate         SortKey = "date"
	SortPriority     SortKey = "priority"
	SortAlphabetical SortKey = "alphabetical"
	SortDue          SortKey = "due"
)

func (k SortKey) Next() SortKey {
	switch k {
	case SortDate:
		return SortPriority
	case SortPriority:
		return SortAlphabetical
	case SortAlphabetical:
		return SortDue
	case SortDue:
		return SortDate
	default:
		return SortDate
	}
}

// Query selects and orders tasks for display.
type Query struct {
	Status   StatusFilter
	Category CategoryFilter
	Search   string
	Sort     SortKey
}

func DefaultQuery() Query {
	return Query{Status: StatusAll, Category: CategoryAll, Sort: SortDate}
}

// collator gives locale-aware, case-folded ordering for the alphabetical
// sort. The UI is single-threaded, so sharing one collator is safe.
var collator = collate.New(language.Und, collate.Loose)

// Apply filters and sorts a snapshot of tasks. The input slice is not
// modified; the result is recomputed in full on every call.
func (q Query) Apply(tasks []Task) []Task {
	out := make([]Task, 0, len(tasks))
	search := strings.ToLower(strings.TrimSpace(q.Search))
	for _, t := range tasks {
		if !q.matchStatus(t) {
			continue
		}
		if q.Category != CategoryAll && Category(q.Category) != t.Category {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(t.Text), search) {
			continue
		}
		out = append(out, t)
	}

	switch q.Sort {
	case SortDate:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		})
	case SortPriority:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Priority.Rank() < out[j].Priority.Rank()
		})
	case SortAlphabetical:
		sort.SliceStable(out, func(i, j int) bool {
			return collator.CompareString(out[i].Text, out[j].Text) < 0
		})
	case SortDue:
		// Tasks without a due date sort after every task that has one;
		// ties between two undated tasks keep their incoming order.
		sort.SliceStable(out, func(i, j int) bool {
			a, b := out[i].Due, out[j].Due
			switch {
			case a == nil:
				return false
			case b == nil:
				return true
			default:
				return a.Compare(*b) < 0
			}
		})
	}
	return out
}

func (q Query) matchStatus(t Task) bool {
	switch q.Status {
	case StatusActive:
		return !t.Completed
	case StatusCompleted:
		return t.Completed
	default:
		return true
	}
}

// Stats are aggregate counters over the full, unfiltered collection.
type Stats struct {
	Total           int
	Active          int
	Completed       int
	HighPriority    int
	ProgressPercent int
}

func Summarize(tasks []Task) Stats {
	var st Stats
	st.Total = len(tasks)
	for _, t := range tasks {
		if t.Completed {
			st.Completed++
		} else {
			st.Active++
			if t.Priority == PriorityHigh {
				st.HighPriority++
			}
		}
	}
	if st.Total > 0 {
		st.ProgressPercent = int(math.Round(float64(st.Completed) / float64(st.Total) * 100))
	}
	return st
}
