package services

import "lexicon/contexts/lexicon/catalog-service/domain/entities"

// SeedLanguages is the fixed language set installed into an empty catalog.
func SeedLanguages() []entities.Language {
	return []entities.Language{
		{Name: "English", Code: "en", NativeName: "English"},
		{Name: "Spanish", Code: "es", NativeName: "Español"},
		{Name: "French", Code: "fr", NativeName: "Français"},
		{Name: "German", Code: "de", NativeName: "Deutsch"},
		{Name: "Chinese", Code: "zh", NativeName: "中文"},
		{Name: "Japanese", Code: "ja", NativeName: "日本語"},
		{Name: "Russian", Code: "ru", NativeName: "Русский"},
		{Name: "Arabic", Code: "ar", NativeName: "العربية"},
		{Name: "Hindi", Code: "hi", NativeName: "हिन्दी"},
		{Name: "Portuguese", Code: "pt", NativeName: "Português"},
	}
}
