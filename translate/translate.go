// Package translate formats user visible messages for the detected locale.
package translate

import (
	"sync"

	"github.com/jeandeaual/go-locale"
	"github.com/tliron/commonlog"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// FALLBACK is the language used when no locale can be detected.
const FALLBACK = "en-US"

var log = commonlog.GetLogger("zmachine.translate")

var printer = sync.OnceValue(func() *message.Printer {
	locales, err := locale.GetLocales()
	if err != nil {
		log.Warningf("locale: %v", err)
	}

	if len(locales) == 0 {
		locales = []string{FALLBACK}
	}

	tag := message.MatchLanguage(locales...)
	if tag == language.Und {
		tag = language.MustParse(FALLBACK)
	}

	return message.NewPrinter(tag)
})

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	return printer().Sprintf(key, args...)
}
