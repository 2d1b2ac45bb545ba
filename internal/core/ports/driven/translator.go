package driven

// Translator resolves localization keys to display strings. It is a
// capability supplied by the presentation layer; the engine never
// loads translation catalogs itself.
type Translator interface {
	// Translate returns the localized string for key. vars, when
	// non-nil, provides substitution values for placeholders.
	// Unknown keys resolve to the key itself.
	Translate(key string, vars map[string]any) string
}

// TranslatorFunc adapts a plain function to the Translator interface.
type TranslatorFunc func(key string, vars map[string]any) string

// Translate calls f.
func (f TranslatorFunc) Translate(key string, vars map[string]any) string {
	return f(key, vars)
}
