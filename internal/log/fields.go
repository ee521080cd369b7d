package log

// Common field names for structured logging
const (
	FieldComponent     = "component"
	FieldRequestID     = "request_id"
	FieldClientIP      = "client_ip"
	FieldMethod        = "method"
	FieldPath          = "path"
	FieldStatusCode    = "status_code"
	FieldDuration      = "duration_ms"
	FieldUserAgent     = "user_agent"
	FieldError         = "error"
	FieldBackend       = "backend"
	FieldTransactionID = "transaction_id"
	FieldCategory      = "category"
	FieldType          = "type"
	FieldAmountCents   = "amount_cents"
	FieldCount         = "count"
	FieldModel         = "model"
)

// Components defines standard component names
const (
	ComponentApp        = "app"
	ComponentHTTP       = "http"
	ComponentStore      = "store"
	ComponentController = "controller"
	ComponentInsight    = "insight"
	ComponentBackend    = "backend"
)
