package constants

const (
	AppName           = "noor"
	Version           = "v0.3.0"
	DefaultConfigPath = "~/.config/noor/noor.db"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimeFormat is the standard time format used throughout the application (HH:MM)
	TimeFormat = "15:04"

	// DisplayTimestampFormat is the human-readable timestamp shown in the tasbeeh log
	DisplayTimestampFormat = "Jan 2, 2006 3:04 PM"
)

// Storage keys. Every durable blob lives under one of these keys in the
// key/value store, JSON-serialized.
const (
	KeyEntries     = "noor.entries"
	KeySettings    = "noor.settings"
	KeyInspiration = "noor.inspiration"
	KeyTasbeeh     = "noor.tasbeeh"

	// KeyHijriPrefix is the per-day prefix for cached Hijri dates; the full
	// key is the prefix plus the Gregorian day key (YYYY-MM-DD).
	KeyHijriPrefix = "noor.hijri."
)

const (
	// MaxTasbeehSessions caps the tasbeeh history; the oldest record is
	// evicted when a new session pushes the log past this limit.
	MaxTasbeehSessions = 50

	// Default Settings Values
	DefaultTheme             = "system"
	DefaultDailyReminderTime = "21:00"

	DefaultFajrAlarm    = "05:00"
	DefaultZuhrAlarm    = "13:30"
	DefaultAsarAlarm    = "17:00"
	DefaultMaghribAlarm = "18:45"
	DefaultEshaAlarm    = "20:30"
)

const (
	// GeminiKeyringUser identifies the Gemini API key record in the OS keyring.
	GeminiKeyringUser = "gemini-api-key"

	// GeminiAPIKeyEnv overrides the keyring when set.
	GeminiAPIKeyEnv = "NOOR_GEMINI_API_KEY"
)
