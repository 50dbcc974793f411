package xregexp

import (
	"go.dw1.io/fastcache"

	"go.dw1.io/xregexp/translate"
)

// cacheSize bounds the number of cached translations.
const cacheSize = 4_096

var translations = fastcache.New[string, translate.Result](cacheSize)

// Cached is like New for pattern text, but reuses the translation of an
// earlier call with the same pattern and flags. Only the translation is
// shared: every call returns a new Regexp with its own replay cursor.
func Cached(pattern, flags string) (*Regexp, error) {
	key := flags + "/" + pattern

	if res, ok := translations.Get(key); ok {
		return compile(res.Clone())
	}

	res, err := translate.Translate(pattern, flags)
	if err != nil {
		return nil, err
	}

	re, err := compile(res)
	if err != nil {
		return nil, err
	}
	translations.Set(key, *res.Clone())

	return re, nil
}
