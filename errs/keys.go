// Package errs defines the sentinel errors returned by gohelp.
// This file contains the translation keys of their messages.
package errs

const (
	prefixKey      = "gohelp"
	ErrorPrefixKey = prefixKey + ".error"
)

const (
	ErrCommandNotFoundKey          = ErrorPrefixKey + ".command_not_found"
	ErrSubCommandNotFoundKey       = ErrorPrefixKey + ".sub_command_not_found"
	ErrInvalidConfigurationKey     = ErrorPrefixKey + ".invalid_configuration"
	ErrNoWriterKey                 = ErrorPrefixKey + ".no_writer"
	ErrDuplicateCommandKey         = ErrorPrefixKey + ".duplicate_command"
	ErrInvalidCommandKey           = ErrorPrefixKey + ".invalid_command"
	ErrInvalidCommandMethodKey     = ErrorPrefixKey + ".invalid_command_method"
	ErrCommandFailedKey            = ErrorPrefixKey + ".command_failed"
	ErrUnsupportedCatalogFormatKey = ErrorPrefixKey + ".unsupported_catalog_format"
	ErrLoadingCatalogKey           = ErrorPrefixKey + ".loading_catalog"
	ErrParsingSourceKey            = ErrorPrefixKey + ".parsing_source"
	ErrSplittingCommandLineKey     = ErrorPrefixKey + ".splitting_command_line"
	ErrUnsupportedShellKey         = ErrorPrefixKey + ".unsupported_shell"
)
