package errors

import (
	"fmt"
)

// ErrorCategory represents different types of errors that can occur
type ErrorCategory string

const (
	// Critical errors that should stop the bot
	ErrorCategoryFatal         ErrorCategory = "FATAL"
	ErrorCategoryCredentials   ErrorCategory = "CREDENTIALS"
	ErrorCategoryConfiguration ErrorCategory = "CONFIG"

	// Errors that skip the current decision cycle
	ErrorCategoryBroker   ErrorCategory = "BROKER"
	ErrorCategoryNetwork  ErrorCategory = "NETWORK"
	ErrorCategoryTimeout  ErrorCategory = "TIMEOUT"
	ErrorCategoryStrategy ErrorCategory = "STRATEGY"
	ErrorCategoryOrder    ErrorCategory = "ORDER"

	// Programming errors surfaced by structural validation
	ErrorCategoryValidation ErrorCategory = "VALIDATION"
)

// TradingError represents a categorized error with context
type TradingError struct {
	Category   ErrorCategory
	Component  string
	Operation  string
	Message    string
	Underlying error
	Retryable  bool
}

// Error implements the error interface
func (e *TradingError) Error() string {
	if e.Underlying != nil {
		return fmt.Sprintf("[%s:%s] %s: %s: %v", e.Category, e.Component, e.Operation, e.Message, e.Underlying)
	}
	return fmt.Sprintf("[%s:%s] %s: %s", e.Category, e.Component, e.Operation, e.Message)
}

// Unwrap returns the underlying error for error unwrapping
func (e *TradingError) Unwrap() error {
	return e.Underlying
}

// IsRetryable returns whether this error can be retried
func (e *TradingError) IsRetryable() bool {
	return e.Retryable
}

// IsFatal returns whether this error should stop the bot
func (e *TradingError) IsFatal() bool {
	return e.Category == ErrorCategoryFatal ||
		e.Category == ErrorCategoryCredentials ||
		e.Category == ErrorCategoryConfiguration
}

// New creates a new categorized trading error
func New(category ErrorCategory, component, operation, message string) *TradingError {
	return &TradingError{
		Category:  category,
		Component: component,
		Operation: operation,
		Message:   message,
		Retryable: isRetryableCategory(category),
	}
}

// Wrap wraps an existing error with trading error context
func Wrap(err error, category ErrorCategory, component, operation string) *TradingError {
	if err == nil {
		return nil
	}

	return &TradingError{
		Category:   category,
		Component:  component,
		Operation:  operation,
		Message:    "operation failed",
		Underlying: err,
		Retryable:  isRetryableCategory(category),
	}
}

// isRetryableCategory determines if an error category is generally retryable
func isRetryableCategory(category ErrorCategory) bool {
	switch category {
	case ErrorCategoryNetwork, ErrorCategoryTimeout, ErrorCategoryBroker:
		return true
	case ErrorCategoryFatal, ErrorCategoryCredentials, ErrorCategoryConfiguration, ErrorCategoryValidation:
		return false
	default:
		return false
	}
}
