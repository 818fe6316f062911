package log

// Common field names for structured logging
const (
	FieldComponent = "component"
	FieldOperation = "operation"
	FieldError     = "error"
	FieldExpenseID = "expense_id"
	FieldType      = "expense_type"
	FieldAmount    = "amount"
	FieldPurpose   = "purpose"
	FieldLocale    = "locale"
	FieldYear      = "year"
	FieldMonth     = "month"
	FieldCount     = "count"
	FieldKey       = "key"
	FieldSheet     = "sheet"
	FieldFile      = "file"
	FieldPath      = "path"
)

// Components defines standard component names
const (
	ComponentApp        = "app"
	ComponentRepository = "repository"
	ComponentStorage    = "storage"
	ComponentService    = "service"
	ComponentExport     = "export"
	ComponentNotify     = "notify"
	ComponentCLI        = "cli"
)

// Operations defines standard operation names
const (
	OpLoad   = "load"
	OpSave   = "save"
	OpAdd    = "add"
	OpUpdate = "update"
	OpDelete = "delete"
	OpClear  = "clear"
	OpExport = "export"
	OpParse  = "parse"
)
