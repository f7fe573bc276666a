package bot

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var errBadDate = errors.New("unparsable date")

var datePattern = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})(?:/(\d{2}|\d{4}))?$`)

// parseDate accepts the tokens "hoje" and "amanhã"/"amanha" (case and
// diacritic insensitive) or a D/M, D/M/YY or D/M/YYYY date. Two-digit
// years mean 2000+YY. Any date strictly before today is rejected.
func parseDate(input string, now time.Time) (time.Time, error) {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	switch normalizeToken(input) {
	case "hoje":
		return today, nil
	case "amanha":
		return today.AddDate(0, 0, 1), nil
	}

	m := datePattern.FindStringSubmatch(strings.TrimSpace(input))
	if m == nil {
		return time.Time{}, errBadDate
	}

	day, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	year := now.Year()
	if m[3] != "" {
		y, _ := strconv.Atoi(m[3])
		if len(m[3]) == 2 {
			y += 2000
		}
		year = y
	}

	date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, now.Location())
	// time.Date normalizes overflow (31/02 becomes March 3rd), which
	// would silently book the wrong day. Reject anything that moved.
	if date.Day() != day || int(date.Month()) != month || date.Year() != year {
		return time.Time{}, errBadDate
	}
	if date.Before(today) {
		return time.Time{}, errBadDate
	}
	return date, nil
}

func normalizeToken(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	// enough diacritic folding for the accepted tokens
	s = strings.NewReplacer("ã", "a", "á", "a", "à", "a", "é", "e", "ê", "e").Replace(s)
	return s
}

func formatDateBR(t time.Time) string {
	return t.Format("02/01/2006")
}
