package command

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrNotIssueNumber is returned for tokens that cannot name an issue.
var ErrNotIssueNumber = errors.New("not a positive integer")

// IssueNumber is a token that parsed as a positive base-10 integer. It keeps
// the text form since it is only ever interpolated into URLs and replies.
type IssueNumber string

// ParseIssueNumber decides whether token names an issue: a finite base-10
// number, at least 1, with no fractional part. Surrounding whitespace is ignored.
func ParseIssueNumber(token string) (IssueNumber, error) {
	s := strings.TrimSpace(token)
	if s == "" || strings.ContainsFunc(s, notDecimal) {
		return "", fmt.Errorf("%w: %q", ErrNotIssueNumber, token)
	}

	n, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(n, 0) || math.IsNaN(n) || n < 1 || n != math.Trunc(n) {
		return "", fmt.Errorf("%w: %q", ErrNotIssueNumber, token)
	}

	return IssueNumber(s), nil
}

// IsPositiveInteger reports whether ParseIssueNumber accepts token.
func IsPositiveInteger(token string) bool {
	_, err := ParseIssueNumber(token)
	return err == nil
}

// notDecimal rejects anything outside decimal float syntax, which keeps
// ParseFloat from accepting "Inf", "NaN", hex and underscore forms.
func notDecimal(r rune) bool {
	switch {
	case r >= '0' && r <= '9':
		return false
	case r == '+', r == '-', r == '.', r == 'e', r == 'E':
		return false
	}
	return true
}
