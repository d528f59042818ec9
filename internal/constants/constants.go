package constants

// Pagination bounds
const (
	MinPageSize     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Context keys
const (
	ContextKeyIDToken = "id_token"
)
