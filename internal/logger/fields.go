package logger

// Standard field names for structured logging. Use these instead of raw
// strings so log output stays greppable.
const (
	FieldAsset     = "asset"
	FieldKind      = "kind"
	FieldPath      = "path"
	FieldMetaPath  = "meta_path"
	FieldProject   = "project"
	FieldComponent = "component"

	FieldCount      = "count"
	FieldDurationMS = "duration_ms"

	FieldError    = "error"
	FieldExitCode = "exit_code"
	FieldPID      = "pid"
	FieldLogFile  = "log_file"
	FieldBinary   = "binary"
	FieldTimeout  = "timeout"
	FieldRunID    = "run_id"
)
