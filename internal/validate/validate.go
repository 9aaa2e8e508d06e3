package validate

import (
	"regexp"
	"strconv"
	"strings"
)

var reCategory = regexp.MustCompile(`^[A-Za-z0-9 _'\-]{1,30}$`)

// ProductID parses a positive integer product id from a form value.
func ProductID(s string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}

// Delta parses a signed quantity delta from the +/- buttons. Any integer is
// legal (the order itself floors at 1), but we clamp magnitude to keep a
// mistyped form from looping the cart arithmetic.
func Delta(s string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n == 0 {
		return 0, false
	}
	if n > 100 {
		n = 100
	}
	if n < -100 {
		n = -100
	}
	return n, true
}

// Category validates a category filter value; "all" is always acceptable.
func Category(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" || s == "all" {
		return "all", true
	}
	return s, reCategory.MatchString(s)
}
