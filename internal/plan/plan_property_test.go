//go:build property
// +build property

package plan

import (
	"math/rand"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// TestPlanProperties tests structural invariants of built plans
func TestPlanProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	// Property: every language holds exactly ids 1..total
	properties.Property("dense id range per language", prop.ForAll(
		func(total int, seed int64) bool {
			p, err := Build(testConfig(total), newFakeSource(), rand.New(rand.NewSource(seed)))
			if err != nil {
				return false
			}
			for _, lang := range p.Languages() {
				records := p.ByLang(lang)
				if len(records) != total {
					return false
				}
				for i, rec := range records {
					if rec.ID != i+1 {
						return false
					}
				}
			}
			return true
		},
		gen.IntRange(1, 50),
		gen.Int64(),
	))

	// Property: neighbors are nil exactly at the boundaries
	properties.Property("prev/next defined off boundaries only", prop.ForAll(
		func(total int, seed int64) bool {
			p, err := Build(testConfig(total), newFakeSource(), rand.New(rand.NewSource(seed)))
			if err != nil {
				return false
			}
			for _, lang := range p.Languages() {
				for id := 1; id <= total; id++ {
					prev := p.Prev(lang, id)
					next := p.Next(lang, id)
					if (prev == nil) != (id == 1) {
						return false
					}
					if (next == nil) != (id == total) {
						return false
					}
					if prev != nil && prev.ID != id-1 {
						return false
					}
					if next != nil && next.ID != id+1 {
						return false
					}
				}
			}
			return true
		},
		gen.IntRange(1, 30),
		gen.Int64(),
	))

	// Property: modified date never precedes published date
	properties.Property("modified follows published", prop.ForAll(
		func(total int, seed int64) bool {
			p, err := Build(testConfig(total), newFakeSource(), rand.New(rand.NewSource(seed)))
			if err != nil {
				return false
			}
			for _, lang := range p.Languages() {
				for _, rec := range p.ByLang(lang) {
					if rec.Modified.Before(rec.Published) {
						return false
					}
				}
			}
			return true
		},
		gen.IntRange(1, 50),
		gen.Int64(),
	))

	// Property: alternates for any id point at the same id in every language
	properties.Property("alternates align by id", prop.ForAll(
		func(total int, seed int64) bool {
			p, err := Build(testConfig(total), newFakeSource(), rand.New(rand.NewSource(seed)))
			if err != nil {
				return false
			}
			for id := 1; id <= total; id++ {
				alts := p.Alternates(id)
				if len(alts) != len(p.Languages()) {
					return false
				}
				for _, alt := range alts {
					if alt.URL != p.Record(alt.Lang, id).URL {
						return false
					}
				}
			}
			return true
		},
		gen.IntRange(1, 30),
		gen.Int64(),
	))

	properties.TestingRun(t)
}
