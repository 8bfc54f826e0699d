package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "in organisation"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// AuthenticationError represents a missing or invalid principal or shared secret
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// AuthorizationError represents an authenticated principal lacking the required role
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// InvariantViolationError is returned when an operation would break a domain rule.
// Rule is a stable machine-readable identifier.
type InvariantViolationError struct {
	Rule    string
	Message string
}

func (e *InvariantViolationError) Error() string {
	return e.Message
}

// Is enables errors.Is() comparison for InvariantViolationError by rule
func (e *InvariantViolationError) Is(target error) bool {
	t, ok := target.(*InvariantViolationError)
	if !ok {
		return false
	}
	return e.Rule == t.Rule
}

// PersistenceError wraps a failure of the persistence layer. The wrapped
// error is for logs only and must not be echoed to API clients.
type PersistenceError struct {
	Op        string
	Entity    string
	Transient bool
	Timeout   bool
	Err       error
}

func (e *PersistenceError) Error() string {
	if e.Entity != "" {
		return fmt.Sprintf("persistence failure during %s on %s: %v", e.Op, e.Entity, e.Err)
	}
	return fmt.Sprintf("persistence failure during %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrOrganisationNotFound = &NotFoundError{Entity: "organisation"}
	ErrMembershipNotFound   = &NotFoundError{Entity: "organisation member"}
	ErrProjectNotFound      = &NotFoundError{Entity: "project"}
)

// Already Exists Errors
var (
	ErrMembershipExists = &AlreadyExistsError{Entity: "organisation member", Context: "for this identity in the organisation"}
	ErrProjectExists    = &AlreadyExistsError{Entity: "project"}
)

// Invariant Errors
var (
	ErrCannotRemoveLastOwner = &InvariantViolationError{Rule: "cannot_remove_last_owner", Message: "cannot remove or demote the last owner of an organisation"}
	ErrOwnerNotMember        = &InvariantViolationError{Rule: "owner_not_member", Message: "project owner must be an active member of the organisation with at least member role"}
	ErrOrganisationInactive  = &InvariantViolationError{Rule: "organisation_inactive", Message: "organisation is inactive"}
)

// Authentication Errors
var (
	ErrMissingPrincipal = &AuthenticationError{Message: "missing principal"}
	ErrInvalidPrincipal = &AuthenticationError{Message: "invalid principal"}
	ErrInvalidAPIKey    = &AuthenticationError{Message: "invalid API key"}
)

// Authorization Errors
var (
	ErrNotMember         = &AuthorizationError{Message: "principal is not an active member of the organisation"}
	ErrInsufficientRole  = &AuthorizationError{Message: "insufficient role for this operation"}
	ErrRoleCeiling       = &AuthorizationError{Message: "cannot assign or modify a role above your own"}
	ErrProjectNotAllowed = &AuthorizationError{Message: "not allowed to manage this project"}
)

// Business Logic Errors
var (
	ErrInvalidPaginationParams = errors.New("invalid pagination parameters")
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.As(err, &authzErr)
}

// IsInvariantViolation checks if an error is an InvariantViolationError
func IsInvariantViolation(err error) bool {
	var invErr *InvariantViolationError
	return errors.As(err, &invErr)
}

// IsPersistence checks if an error is a PersistenceError
func IsPersistence(err error) bool {
	var persistErr *PersistenceError
	return errors.As(err, &persistErr)
}

// IsTimeout checks if an error is a PersistenceError caused by a deadline or cancellation
func IsTimeout(err error) bool {
	var persistErr *PersistenceError
	return errors.As(err, &persistErr) && persistErr.Timeout
}

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var configErr *ConfigurationError
	return errors.As(err, &configErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewAlreadyExistsError creates a new AlreadyExistsError for a custom entity
func NewAlreadyExistsError(entity, context string) error {
	return &AlreadyExistsError{Entity: entity, Context: context}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewAuthenticationError creates a new AuthenticationError
func NewAuthenticationError(message string) error {
	return &AuthenticationError{Message: message}
}

// NewAuthorizationError creates a new AuthorizationError
func NewAuthorizationError(message string) error {
	return &AuthorizationError{Message: message}
}

// NewPersistenceError creates a new PersistenceError
func NewPersistenceError(op, entity string, err error) *PersistenceError {
	return &PersistenceError{Op: op, Entity: entity, Err: err}
}

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(message string) error {
	return &ConfigurationError{Message: message}
}
