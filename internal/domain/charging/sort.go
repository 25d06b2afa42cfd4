package charging

import (
	"cmp"
	"slices"
	"strings"
)

// SessionSort selects the ordering applied to a vehicle's charge sessions
type SessionSort int

const (
	SortStartTimeAsc SessionSort = iota
	SortStartTimeDesc
	SortEndTimeAsc
	SortEndTimeDesc
)

// sortParams maps the JSON:API style sort query values to orderings.
// A leading minus selects descending order.
var sortParams = map[string]SessionSort{
	"starttime":  SortStartTimeAsc,
	"-starttime": SortStartTimeDesc,
	"endtime":    SortEndTimeAsc,
	"-endtime":   SortEndTimeDesc,
}

// ParseSessionSort resolves a sort query parameter, case-insensitively.
// An empty parameter defaults to ascending start time.
func ParseSessionSort(param string) (SessionSort, error) {
	if param == "" {
		return SortStartTimeAsc, nil
	}
	sort, ok := sortParams[strings.ToLower(param)]
	if !ok {
		return SortStartTimeAsc, ErrInvalidSortParameter
	}
	return sort, nil
}

// SortSessions orders sessions in place. The sort is stable, so sessions that
// compare equal keep their repository order.
//
// End time orderings place open sessions before all closed ones in both
// directions; an open session has no end time and a customer looking for it
// should find it first regardless of direction.
func SortSessions(sessions []*ChargeSession, by SessionSort) {
	switch by {
	case SortStartTimeAsc:
		slices.SortStableFunc(sessions, func(a, b *ChargeSession) int {
			return cmp.Compare(a.StartTime, b.StartTime)
		})
	case SortStartTimeDesc:
		slices.SortStableFunc(sessions, func(a, b *ChargeSession) int {
			return cmp.Compare(b.StartTime, a.StartTime)
		})
	case SortEndTimeAsc:
		slices.SortStableFunc(sessions, func(a, b *ChargeSession) int {
			return compareEndTimes(a, b, false)
		})
	case SortEndTimeDesc:
		slices.SortStableFunc(sessions, func(a, b *ChargeSession) int {
			return compareEndTimes(a, b, true)
		})
	}
}

func compareEndTimes(a, b *ChargeSession, descending bool) int {
	aEnd, _, aClosed := a.Closure()
	bEnd, _, bClosed := b.Closure()

	switch {
	case !aClosed && !bClosed:
		return 0
	case !aClosed:
		return -1
	case !bClosed:
		return 1
	}
	if descending {
		return cmp.Compare(bEnd, aEnd)
	}
	return cmp.Compare(aEnd, bEnd)
}
