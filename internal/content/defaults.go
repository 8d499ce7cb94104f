package content

import "github.com/trustdealzz/sitegen/internal/plan"

// Fallback keyword bank used when no keyword file is configured.
var defaultKeywords = []string{
	"artificial intelligence", "digital marketing", "healthy recipes", "travel hacks", "financial freedom",
	"productivity tips", "cybersecurity basics", "fitness routine", "remote work", "python tutorials",
	"apprentissage automatique", "marketing numérique", "recettes saines", "voyage pas cher", "liberté financière",
	"تسويق رقمي", "ذكاء اصطناعي", "وصفات صحية", "خدع السفر", "الحرية المالية",
}

var defaultAuthors = map[string][]string{
	"ar": {"أحمد علي", "محمد سمير", "ليلى حسن", "سارة محمود", "نور الدين"},
	"en": {"John Carter", "Emily Stone", "Alex Morgan", "Sarah Lee", "David Kim"},
	"fr": {"Jean Dupont", "Marie Curie", "Luc Martin", "Camille Bernard", "Sophie Laurent"},
}

var defaultCategories = map[string][]plan.CategoryKey{
	"ar": {
		{Category: "تقنية", Subcategory: "ذكاء-اصطناعي"},
		{Category: "صحة", Subcategory: "لياقة"},
		{Category: "سفر", Subcategory: "وجهات"},
		{Category: "أعمال", Subcategory: "تسويق"},
		{Category: "تعليم", Subcategory: "مهارات"},
	},
	"en": {
		{Category: "Technology", Subcategory: "AI"},
		{Category: "Health", Subcategory: "Fitness"},
		{Category: "Travel", Subcategory: "Destinations"},
		{Category: "Business", Subcategory: "Marketing"},
		{Category: "Education", Subcategory: "Skills"},
	},
	"fr": {
		{Category: "Technologie", Subcategory: "IA"},
		{Category: "Santé", Subcategory: "Fitness"},
		{Category: "Voyage", Subcategory: "Destinations"},
		{Category: "Business", Subcategory: "Marketing"},
		{Category: "Éducation", Subcategory: "Compétences"},
	},
}

var defaultTags = map[string][]string{
	"ar": {"تقنية", "تعليم", "أعمال", "سفر", "صحة", "أمن سيبراني", "ذكاء اصطناعي", "تسويق رقمي", "طبخ", "رياضة"},
	"en": {"tech", "education", "business", "travel", "health", "cybersecurity", "ai", "digital-marketing", "cooking", "sports"},
	"fr": {"tech", "éducation", "business", "voyage", "santé", "cybersécurité", "ia", "marketing", "cuisine", "sport"},
}

var defaultAnchors = map[string][]string{
	"ar": {"اقرأ التفاصيل", "شاهد المزيد", "تعرّف أكثر", "اكتشف الآن", "الدليل الكامل", "المزيد", "افتح المقال"},
	"en": {"Read more", "See details", "Discover more", "Explore now", "Full guide", "Learn more", "Open article"},
	"fr": {"En savoir plus", "Voir détails", "Découvrez plus", "Explorer", "Guide complet", "En lire plus", "Ouvrir l'article"},
}

var defaultParagraphs = map[string][]string{
	"ar": {
		"في هذا الدليل سنعرض أفكارًا عملية وسريعة التطبيق. نستخدم أمثلة حقيقية ونصائح مختصين.",
		"ينصح الخبراء بالبدء بخطوات صغيرة، وقياس النتائج، ثم التطوير بشكل تدريجي.",
		"تأكّد من مراجعة المصادر الموثوقة قبل اتخاذ أي قرار، وجرّب الأدوات المذكورة.",
	},
	"en": {
		"This guide outlines practical ideas you can apply today, backed by credible sources.",
		"Experts recommend starting small, measuring impact, then iterating for continuous improvement.",
		"Always validate with trusted references before decisions and test the mentioned tools.",
	},
	"fr": {
		"Ce guide présente des idées pratiques à appliquer dès aujourd'hui, appuyées par des sources fiables.",
		"Les experts conseillent de commencer petit, mesurer l'impact, puis itérer pour s'améliorer.",
		"Vérifiez toujours avec des références de confiance et testez les outils évoqués.",
	},
}

var defaultSynonyms = map[string]map[string][]string{
	"ar": {"أفضل": {"أحسن", "أكثر فاعلية"}, "دليل": {"مرشد", "مرجع"}, "طرق": {"وسائل", "أساليب"}},
	"en": {"best": {"great", "top"}, "guide": {"handbook", "primer"}, "ways": {"methods", "tactics"}},
	"fr": {"meilleures": {"top", "excellentes"}, "guide": {"manuel", "référence"}, "méthodes": {"façons", "techniques"}},
}

// ExternalCatalog is the fixed external-domain catalog outward reference
// links are sampled from.
var ExternalCatalog = []string{
	"https://wikipedia.org", "https://bbc.com", "https://cnn.com", "https://nytimes.com", "https://reuters.com",
	"https://theverge.com", "https://wired.com", "https://arstechnica.com", "https://techradar.com", "https://cnet.com",
	"https://forbes.com", "https://wsj.com", "https://ft.com", "https://economist.com", "https://investopedia.com",
	"https://who.int", "https://cdc.gov", "https://mayoclinic.org", "https://nih.gov", "https://thelancet.com",
	"https://espn.com", "https://uefa.com", "https://fifa.com", "https://olympics.com", "https://mlb.com",
	"https://vogue.com", "https://gq.com", "https://tripadvisor.com", "https://lonelyplanet.com", "https://timeout.com",
	"https://nasa.gov", "https://esa.int", "https://nature.com", "https://scientificamerican.com", "https://space.com",
	"https://github.blog", "https://developer.mozilla.org", "https://producthunt.com", "https://engadget.com", "https://venturebeat.com",
	"https://aljazeera.net", "https://alarabiya.net", "https://arabic.cnn.com", "https://youm7.com", "https://almasryalyoum.com",
	"https://lemonde.fr", "https://lefigaro.fr", "https://20minutes.fr", "https://bfmtv.com", "https://ouest-france.fr",
}

// VideoIDs is the sample pool for optional video embeds.
var VideoIDs = []string{"dQw4w9WgXcQ", "9bZkp7q19f0", "Zi_XLOBDo_Y", "3JZ_D3ELwOQ", "kXYiU_JCYtU"}

// Themes are the available CSS theme variants.
var Themes = []string{"light", "dark", "colorful"}
