package wrapfmt

import (
	"fmt"

	"github.com/itsatony/go-cuserr"
)

// NewRegistryError wraps a resolver registration failure
func NewRegistryError(cause error) error {
	return cuserr.WrapStdError(cause, ErrCodeRegistry, ErrMsgRegisterFailed)
}

// NewUnknownWrapperKindError creates an error for an unrecognised kind name
func NewUnknownWrapperKindError(name string) error {
	return cuserr.NewValidationError(ErrCodeConfig, ErrMsgUnknownWrapperKind).
		WithMetadata(MetaKeyKind, name)
}

// NewUnknownStrategyError creates an error for an unrecognised strategy name
func NewUnknownStrategyError(name string) error {
	return cuserr.NewValidationError(ErrCodeConfig, ErrMsgUnknownStrategy).
		WithMetadata(MetaKeyStrategy, name)
}

// NewMetricsRegistrationError wraps a prometheus registration failure
func NewMetricsRegistrationError(metric string, cause error) error {
	return cuserr.WrapStdError(cause, ErrCodeConfig, ErrMsgMetricsRegistration).
		WithMetadata(MetaKeyMetric, metric)
}

// NewValueConversionError creates an error for a looked-up value that has no
// text form (maps, slices, structs)
func NewValueConversionError(path string, value any, cause error) error {
	return cuserr.WrapStdError(cause, ErrCodeResolve, ErrMsgValueConversion).
		WithMetadata(MetaKeyPath, path).
		WithMetadata(MetaKeyType, fmt.Sprintf("%T", value))
}
