package domain

import "time"

// Translation types the dashboard knows about. The field is an open tag,
// other values are stored and counted as-is.
const (
	TranslationTypeText       = "text"
	TranslationTypeImage      = "image"
	TranslationTypeAudio      = "audio"
	TranslationTypeMicrophone = "microphone"
	TranslationTypeFile       = "file"
	TranslationTypeBraille    = "braille"
)

// KnownTranslationTypes are always reported by stats, with zero if unseen.
var KnownTranslationTypes = []string{
	TranslationTypeText,
	TranslationTypeImage,
	TranslationTypeAudio,
	TranslationTypeMicrophone,
	TranslationTypeFile,
	TranslationTypeBraille,
}

const (
	DefaultSourceLanguage = "en"
	DefaultTargetLanguage = "hi"

	// PlaceholderUserID owns translations created without a caller identity.
	PlaceholderUserID = "current_user_id"
)

type Translation struct {
	ID              string
	UserID          string
	SourceText      *string
	SourceLanguage  string
	TargetLanguage  string
	TranslatedText  *string
	BrailleOutput   *string
	AudioFileURL    *string
	ImageFileURL    *string
	TranslationType string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TranslationStats summarises the history collection.
type TranslationStats struct {
	Total    int64
	ByMethod map[string]int64
}
