// Package links samples the internal and external link sets for one page.
// Sampling is intentionally non-deterministic across calls (it is what makes
// the internal link graph diverse), but it is total: it never selects the
// page itself and never selects an id outside the plan's range.
package links

import (
	"math/rand"

	"github.com/trustdealzz/sitegen/internal/plan"
)

// closeWindow is the id distance considered "close" for locality-biased
// sampling.
const closeWindow = 10

// Anchor is one internal link: a target URL plus its anchor text.
type Anchor struct {
	URL  string
	Text string
}

// SampleInternal returns up to perPage related-article links for (lang, id),
// biased toward chronological/id locality. Anchor texts are drawn from the
// given per-language phrase bank. Fewer than perPage links are returned only
// when the plan is too small to supply them.
func SampleInternal(p *plan.Plan, lang string, id, perPage int, anchors []string, rng *rand.Rand) []Anchor {
	if perPage <= 0 {
		return nil
	}

	// Full candidate pool: every other id in the language.
	pool := make([]int, 0, p.Total()-1)
	for i := 1; i <= p.Total(); i++ {
		if i != id {
			pool = append(pool, i)
		}
	}

	// Near subset: ids within the window, clamped to [1, total].
	lo, hi := id-closeWindow, id+closeWindow
	if lo < 1 {
		lo = 1
	}
	if hi > p.Total() {
		hi = p.Total()
	}
	near := make([]int, 0, hi-lo)
	for i := lo; i <= hi; i++ {
		if i != id {
			near = append(near, i)
		}
	}

	half := perPage / 2
	picked := make(map[int]struct{})
	for _, i := range sampleInts(near, min(len(near), half), rng) {
		picked[i] = struct{}{}
	}
	for _, i := range sampleInts(pool, min(len(pool), half), rng) {
		picked[i] = struct{}{}
	}

	ids := make([]int, 0, len(picked))
	for i := range picked {
		ids = append(ids, i)
	}
	rng.Shuffle(len(ids), func(a, b int) { ids[a], ids[b] = ids[b], ids[a] })
	if len(ids) > perPage {
		ids = ids[:perPage]
	}

	out := make([]Anchor, 0, len(ids))
	for _, i := range ids {
		text := ""
		if len(anchors) > 0 {
			text = anchors[rng.Intn(len(anchors))]
		}
		out = append(out, Anchor{URL: p.Record(lang, i).URL, Text: text})
	}
	return out
}

// SampleExternal draws outward reference links uniformly without replacement
// from the external-domain catalog. The count is uniform in [min, max], both
// bounds capped at the catalog size.
func SampleExternal(catalog []string, minLinks, maxLinks int, rng *rand.Rand) []string {
	if len(catalog) == 0 || maxLinks <= 0 {
		return nil
	}
	if minLinks < 0 {
		minLinks = 0
	}
	if maxLinks > len(catalog) {
		maxLinks = len(catalog)
	}
	if minLinks > maxLinks {
		minLinks = maxLinks
	}
	n := minLinks + rng.Intn(maxLinks-minLinks+1)
	if n == 0 {
		return nil
	}

	out := make([]string, 0, n)
	for _, idx := range rng.Perm(len(catalog))[:n] {
		out = append(out, catalog[idx])
	}
	return out
}

// sampleInts draws n elements from candidates without replacement.
func sampleInts(candidates []int, n int, rng *rand.Rand) []int {
	if n <= 0 {
		return nil
	}
	out := make([]int, 0, n)
	for _, idx := range rng.Perm(len(candidates))[:n] {
		out = append(out, candidates[idx])
	}
	return out
}
