package errs

import (
	"errors"

	"github.com/napalu/gohelp/i18n"
)

// NotFound kind: the catalog has no documentation for the requested name
var (
	ErrCommandNotFound    = i18n.NewError(ErrCommandNotFoundKey)
	ErrSubCommandNotFound = i18n.NewError(ErrSubCommandNotFoundKey)
)

// InvalidConfiguration kind
var (
	ErrInvalidConfiguration = i18n.NewError(ErrInvalidConfigurationKey)
	ErrNoWriter             = i18n.NewError(ErrNoWriterKey)
)

// Catalog and console errors
var (
	ErrDuplicateCommand         = i18n.NewError(ErrDuplicateCommandKey)
	ErrInvalidCommand           = i18n.NewError(ErrInvalidCommandKey)
	ErrInvalidCommandMethod     = i18n.NewError(ErrInvalidCommandMethodKey)
	ErrCommandFailed            = i18n.NewError(ErrCommandFailedKey)
	ErrUnsupportedCatalogFormat = i18n.NewError(ErrUnsupportedCatalogFormatKey)
	ErrLoadingCatalog           = i18n.NewError(ErrLoadingCatalogKey)
	ErrParsingSource            = i18n.NewError(ErrParsingSourceKey)
	ErrSplittingCommandLine     = i18n.NewError(ErrSplittingCommandLineKey)
	ErrUnsupportedShell         = i18n.NewError(ErrUnsupportedShellKey)
)

// IsNotFound reports whether err means a command or sub command has no documentation
func IsNotFound(err error) bool {
	return errors.Is(err, ErrCommandNotFound) || errors.Is(err, ErrSubCommandNotFound)
}

// IsInvalidConfiguration reports whether err stems from an incomplete configuration
func IsInvalidConfiguration(err error) bool {
	return errors.Is(err, ErrInvalidConfiguration) || errors.Is(err, ErrNoWriter)
}
