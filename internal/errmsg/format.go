// Package errmsg provides consistent error formatting for user-facing messages.
package errmsg

import "fmt"

// Op represents an operation that can fail.
type Op string

// Operation constants - grouped by domain.
const (
	// Configuration
	OpConfigLoad Op = "load configuration"

	// Catalog operations
	OpCatalogLoad     Op = "load action catalog"
	OpCatalogValidate Op = "validate action catalog"

	// Activity log
	OpStateOpen     Op = "open activity log"
	OpStateRecord   Op = "record dispatched action"
	OpStateRecent   Op = "load recent activity"
	OpStateClear    Op = "clear activity log"
	OpLanguageSave  Op = "save language"
	OpLanguageLoad  Op = "load saved language"
	OpLogFileCreate Op = "create log file"

	// Initialization
	OpInitialize Op = "initialize application"
)

// Format creates a user-friendly error message.
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Failed to %s: %v", op, err)
}

// FormatWith creates an error message with additional context.
func FormatWith(op Op, context string, err error) string {
	if err == nil {
		return ""
	}
	if context == "" {
		return Format(op, err)
	}
	return fmt.Sprintf("Failed to %s '%s': %v", op, context, err)
}
