package engine

import (
	"fmt"
	"strings"
	"time"

	"github.com/david/farm-grant-matcher/internal/models"
)

const (
	warnMatchingFunds     = "this program likely requires matching funds"
	warnVerifyEligibility = "eligibility data is low-confidence; verify with the program office before applying"
)

// Warnings returns the non-disqualifying caveats for a match that survived
// the gate and filter chain. Warnings never change score or ordering.
func Warnings(g models.Grant, now time.Time) []string {
	var out []string

	if g.DeadlineType == models.DeadlineFixed && g.Deadline != nil {
		days := int(startOfDay(*g.Deadline).Sub(startOfDay(now)).Hours() / 24)
		if days > 0 && days <= 30 {
			out = append(out, fmt.Sprintf("deadline in %d days", days))
		}
	}

	// Substring heuristic, same technique the catalog curators use for
	// flagging requirement text upstream.
	for _, req := range g.Requirements {
		if strings.Contains(strings.ToLower(req), "matching") {
			out = append(out, warnMatchingFunds)
			break
		}
	}

	if g.Confidence == models.ConfidenceLow {
		out = append(out, warnVerifyEligibility)
	}

	return out
}
