package constant

// StorageKeyPrompts is the single key under which the whole prompt collection is mirrored.
const StorageKeyPrompts = "prompts_storage"

// Notice event types delivered to the presentation layer.
const (
	NoticeValidationFailed = "PROMPT_VALIDATION_FAILED"
	NoticeSaveSucceeded    = "PROMPT_SAVE_SUCCEEDED"
	NoticeDeleteSucceeded  = "PROMPT_DELETE_SUCCEEDED"
	NoticeCopied           = "PROMPT_COPIED"
)

// User-facing texts for each notice
const (
	MessageEmptyFields = "Title and content cannot be empty."
	MessageSaved       = "Prompt saved successfully!"
	MessageDeleted     = "Prompt deleted successfully!"
	MessageCopied      = "Content copied to clipboard!"
)

// PreviewLength caps the content preview shown in list items.
const PreviewLength = 120

// Storage drivers accepted by STORAGE_DRIVER
const (
	StorageDriverFile     = "file"
	StorageDriverMemory   = "memory"
	StorageDriverRedis    = "redis"
	StorageDriverPostgres = "postgres"
)
