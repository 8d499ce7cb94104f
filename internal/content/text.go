package content

import (
	"fmt"
	"math/rand"
	"strings"
)

// Section is one H2 heading with its H3 subpoints.
type Section struct {
	Heading   string
	Subpoints []string
}

// Spin applies the cosmetic synonym substitution to a text. Each table entry
// is replaced with one of its synonyms with probability 1/2. Uniqueness is
// not a goal here; the substitution only keeps pages from being byte-equal.
func (b *Banks) Spin(lang, text string, rng *rand.Rand) string {
	for word, alts := range b.synonyms[lang] {
		if rng.Intn(2) == 0 {
			text = strings.ReplaceAll(text, word, alts[rng.Intn(len(alts))])
		}
	}
	return text
}

// Paragraph assembles a spun paragraph of roughly minWords..maxWords words
// from the language's sample bank.
func (b *Banks) Paragraph(lang string, minWords, maxWords int, rng *rand.Rand) string {
	samples := b.paragraphs[lang]
	if len(samples) == 0 {
		return ""
	}
	target := minWords
	if maxWords > minWords {
		target += rng.Intn(maxWords - minWords + 1)
	}
	var parts []string
	for len(strings.Fields(strings.Join(parts, " "))) < target {
		parts = append(parts, samples[rng.Intn(len(samples))])
	}
	return b.Spin(lang, strings.Join(parts, " "), rng)
}

// Sections scaffolds 3-4 H2 sections with 2-3 H3 subpoints each.
func (b *Banks) Sections(lang string, rng *rand.Rand) []Section {
	count := 3 + rng.Intn(2)
	sections := make([]Section, 0, count)
	for i := 1; i <= count; i++ {
		var heading string
		switch lang {
		case "ar":
			heading = fmt.Sprintf("الجزء %d", i)
		default:
			heading = fmt.Sprintf("Section %d", i)
		}
		subCount := 2 + rng.Intn(2)
		subs := make([]string, 0, subCount)
		for j := 1; j <= subCount; j++ {
			switch lang {
			case "ar":
				subs = append(subs, fmt.Sprintf("نقطة %d.%d", i, j))
			default:
				subs = append(subs, fmt.Sprintf("Point %d.%d", i, j))
			}
		}
		sections = append(sections, Section{Heading: heading, Subpoints: subs})
	}
	return sections
}

// FAQ returns 1-2 question/answer pairs about a keyword for the FAQPage
// structured data block.
func (b *Banks) FAQ(lang, keyword string, rng *rand.Rand) [][2]string {
	var pairs [][2]string
	switch lang {
	case "en":
		pairs = [][2]string{
			{"What is important about " + keyword + "?", "Best practices, tools, and a structured way to begin."},
			{"How to get started with " + keyword + "?", "Start small, measure results, and iterate regularly."},
		}
	case "fr":
		pairs = [][2]string{
			{"Qu'est-ce qui est important pour " + keyword + " ?", "Bonnes pratiques, outils, et une approche progressive."},
			{"Comment débuter avec " + keyword + " ?", "Commencez petit, mesurez les résultats et itérez."},
		}
	default:
		pairs = [][2]string{
			{"ما هي أهم النقاط المرتبطة بـ " + keyword + "؟", "تشمل أفضل الممارسات، الأدوات، وخطوات البداية المنظمة."},
			{"كيف أبدأ في " + keyword + "؟", "ابدأ بخطوات صغيرة، قِس النتائج، ثم طوّر نهجك تدريجيًا."},
		}
	}
	n := 1 + rng.Intn(2)
	picked := make([][2]string, 0, n)
	for _, idx := range rng.Perm(len(pairs))[:n] {
		picked = append(picked, pairs[idx])
	}
	return picked
}
