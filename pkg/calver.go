package calverhook

import (
	"fmt"
	"regexp"
	"time"
)

// CalVerPattern matches a plain calendar version token of the form
// YYYY.M.D, with one or two digits for the month and day components.
var CalVerPattern = regexp.MustCompile(`\d{4}\.\d{1,2}\.\d{1,2}`)

// MicroCalVerPattern matches a calendar version token with an optional
// trailing micro component (YYYY.M.D or YYYY.M.D.N). The micro variant
// must consume an existing micro suffix so that rerunning the hook
// rewrites the whole token instead of stacking suffixes.
var MicroCalVerPattern = regexp.MustCompile(`\d{4}\.\d{1,2}\.\d{1,2}(\.\d+)?`)

// FormatDate renders t as a calendar version with no zero padding of
// the month or day, e.g. 2024-03-07 becomes "2024.3.7". Most date
// formatting zero-pads by default, so the components are printed as
// plain integers instead.
func FormatDate(t time.Time) string {
	return fmt.Sprintf("%d.%d.%d", t.Year(), int(t.Month()), t.Day())
}

// MicroVersion renders t as a calendar version and appends the same-day
// commit count as a micro component when it is greater than zero. A
// count of zero yields the bare date, so the first commit of the day
// carries no trailing ".0".
func MicroVersion(t time.Time, count int) string {
	v := FormatDate(t)
	if count > 0 {
		v = fmt.Sprintf("%s.%d", v, count)
	}
	return v
}
