// Package settings holds the app-wide settings persisted to flat files rather
// than the local store.
package settings

import "time"

// FeedbackType identifies an in-app feedback prompt.
type FeedbackType string

// Known feedback prompts.
const (
	FeedbackGeneral           FeedbackType = "general"
	FeedbackProductsVariation FeedbackType = "products_variations"
	FeedbackShippingLabels    FeedbackType = "shipping_labels_release"
)

// FeedbackStatus is what the user did with a prompt.
type FeedbackStatus string

// Feedback statuses.
const (
	FeedbackPending   FeedbackStatus = "pending"
	FeedbackGiven     FeedbackStatus = "given"
	FeedbackDismissed FeedbackStatus = "dismissed"
)

// Feedback is the recorded state of one prompt.
type Feedback struct {
	Name   FeedbackType   `json:"name"`
	Status FeedbackStatus `json:"status"`
	Date   *time.Time     `json:"date,omitempty"`
}

// General is the general settings file. The zero value is the default used
// when no file exists.
type General struct {
	InstallationDate *time.Time                `json:"installation_date,omitempty"`
	Feedbacks        map[FeedbackType]Feedback `json:"feedbacks,omitempty"`
	KnownCardReaders []string                  `json:"known_card_readers,omitempty"`
}

// FeedbackFor returns the stored feedback for a prompt, or a pending one.
func (g *General) FeedbackFor(t FeedbackType) Feedback {
	if f, ok := g.Feedbacks[t]; ok {
		return f
	}
	return Feedback{Name: t, Status: FeedbackPending}
}

// WithFeedback returns a copy of g with the prompt's status replaced.
func (g General) WithFeedback(t FeedbackType, status FeedbackStatus, at time.Time) General {
	feedbacks := make(map[FeedbackType]Feedback, len(g.Feedbacks)+1)
	for k, v := range g.Feedbacks {
		feedbacks[k] = v
	}
	f := Feedback{Name: t, Status: status}
	if status != FeedbackPending {
		f.Date = &at
	}
	feedbacks[t] = f
	g.Feedbacks = feedbacks
	return g
}

// PreselectedProvider remembers the tracking provider last used on a site.
type PreselectedProvider struct {
	SiteID       int64  `json:"site_id"`
	ProviderName string `json:"provider_name"`
	ProviderURL  string `json:"provider_url,omitempty"`
}

// Providers is the content of a provider settings file.
type Providers struct {
	Selected []PreselectedProvider `json:"selected"`
}

// ForSite returns the provider remembered for siteID.
func (p *Providers) ForSite(siteID int64) (PreselectedProvider, bool) {
	for _, sp := range p.Selected {
		if sp.SiteID == siteID {
			return sp, true
		}
	}
	return PreselectedProvider{}, false
}

// With returns a copy of p where siteID's provider is replaced by sp.
func (p Providers) With(sp PreselectedProvider) Providers {
	selected := make([]PreselectedProvider, 0, len(p.Selected)+1)
	for _, existing := range p.Selected {
		if existing.SiteID != sp.SiteID {
			selected = append(selected, existing)
		}
	}
	p.Selected = append(selected, sp)
	return p
}
