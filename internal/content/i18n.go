package content

import (
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

// UI localizes the chrome strings (navigation labels, pager text) for each
// supported language.
type UI struct {
	localizers map[string]*i18n.Localizer
}

var uiMessages = map[language.Tag][]*i18n.Message{
	language.English: {
		{ID: "home", Other: "Home"},
		{ID: "related", Other: "Related"},
		{ID: "tags", Other: "Tags"},
		{ID: "prev", Other: "« Prev"},
		{ID: "next", Other: "Next »"},
		{ID: "allPosts", Other: "All Articles"},
		{ID: "by", Other: "By"},
		{ID: "archive", Other: "Archive"},
		{ID: "references", Other: "External References"},
		{ID: "toc", Other: "Table of Contents"},
	},
	language.Arabic: {
		{ID: "home", Other: "الصفحة الرئيسية"},
		{ID: "related", Other: "روابط ذات صلة"},
		{ID: "tags", Other: "الوسوم"},
		{ID: "prev", Other: "السابق"},
		{ID: "next", Other: "التالي"},
		{ID: "allPosts", Other: "كل المقالات"},
		{ID: "by", Other: "بواسطة"},
		{ID: "archive", Other: "الأرشيف"},
		{ID: "references", Other: "مراجع خارجية"},
		{ID: "toc", Other: "جدول المحتويات"},
	},
	language.French: {
		{ID: "home", Other: "Accueil"},
		{ID: "related", Other: "Liés"},
		{ID: "tags", Other: "Tags"},
		{ID: "prev", Other: "« Préc."},
		{ID: "next", Other: "Suiv. »"},
		{ID: "allPosts", Other: "Tous les articles"},
		{ID: "by", Other: "Par"},
		{ID: "archive", Other: "Archives"},
		{ID: "references", Other: "Références externes"},
		{ID: "toc", Other: "Table des matières"},
	},
}

// NewUI builds the localized UI string table for all supported languages.
func NewUI() (*UI, error) {
	bundle := i18n.NewBundle(language.English)
	for tag, messages := range uiMessages {
		if err := bundle.AddMessages(tag, messages...); err != nil {
			return nil, err
		}
	}
	ui := &UI{localizers: make(map[string]*i18n.Localizer, len(SupportedLanguages))}
	for _, lang := range SupportedLanguages {
		ui.localizers[lang] = i18n.NewLocalizer(bundle, lang)
	}
	return ui, nil
}

// T returns the localized string for a message id, falling back to the id
// itself when no translation exists.
func (u *UI) T(lang, id string) string {
	loc, ok := u.localizers[lang]
	if !ok {
		loc = u.localizers["en"]
	}
	if loc == nil {
		return id
	}
	msg, err := loc.Localize(&i18n.LocalizeConfig{MessageID: id})
	if err != nil {
		return id
	}
	return msg
}
