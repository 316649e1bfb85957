package domain

import (
	"fmt"
	"sort"
	"strings"
)

// Period represents a bookable subdivision of a school day
type Period struct {
	ID        string // stable short token, e.g. "period1"
	Name      string // display label, e.g. "第一節"
	TimeRange string // informational time range, e.g. "08:40~09:20"
	Order     int    // position in the catalog sequence
}

// PeriodCatalog is the immutable ordered list of bookable periods.
// Built once at process start from configuration; safe for concurrent reads.
type PeriodCatalog struct {
	periods []Period
	byID    map[string]Period
}

// NewPeriodCatalog builds a catalog from the given periods, ordered by Order
func NewPeriodCatalog(periods []Period) (*PeriodCatalog, error) {
	if len(periods) == 0 {
		return nil, fmt.Errorf("domain: period catalog must not be empty")
	}

	ordered := make([]Period, len(periods))
	copy(ordered, periods)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Order < ordered[j].Order
	})

	byID := make(map[string]Period, len(ordered))
	for _, p := range ordered {
		if p.ID == "" {
			return nil, fmt.Errorf("domain: period with empty id")
		}
		if _, ok := byID[p.ID]; ok {
			return nil, fmt.Errorf("domain: duplicate period id %q", p.ID)
		}
		byID[p.ID] = p
	}

	return &PeriodCatalog{periods: ordered, byID: byID}, nil
}

// Periods returns the catalog sequence in order
func (c *PeriodCatalog) Periods() []Period {
	out := make([]Period, len(c.periods))
	copy(out, c.periods)
	return out
}

// Get returns the period with the given id
func (c *PeriodCatalog) Get(id string) (Period, bool) {
	p, ok := c.byID[id]
	return p, ok
}

// Has reports whether the id is a known period
func (c *PeriodCatalog) Has(id string) bool {
	_, ok := c.byID[id]
	return ok
}

// DisplayName returns the display label for a period id.
// Unknown ids are rendered verbatim so that historical bookings referencing
// a removed period still display something meaningful.
func (c *PeriodCatalog) DisplayName(id string) string {
	if p, ok := c.byID[id]; ok {
		return p.Name
	}
	return id
}

// JoinNames maps period ids to display labels joined for presentation
func (c *PeriodCatalog) JoinNames(ids []string) string {
	names := make([]string, 0, len(ids))
	for _, id := range ids {
		names = append(names, c.DisplayName(id))
	}
	return strings.Join(names, PeriodNameSeparator)
}
