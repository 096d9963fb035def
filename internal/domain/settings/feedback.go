package settings

import "time"

const (
	// minInstallAge is how long the app must be installed before the
	// general prompt is shown.
	minInstallAge = 90 * 24 * time.Hour

	// repromptAfter is how long a given or dismissed prompt stays hidden.
	repromptAfter = 180 * 24 * time.Hour
)

// FeedbackVisible reports whether prompt t should be shown at now.
func (g *General) FeedbackVisible(t FeedbackType, now time.Time) bool {
	f := g.FeedbackFor(t)

	if t != FeedbackGeneral {
		return f.Status == FeedbackPending
	}

	if g.InstallationDate == nil || now.Sub(*g.InstallationDate) < minInstallAge {
		return false
	}

	switch f.Status {
	case FeedbackGiven, FeedbackDismissed:
		return f.Date == nil || now.Sub(*f.Date) >= repromptAfter
	default:
		return true
	}
}
