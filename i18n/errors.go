package i18n

import (
	"errors"
	"fmt"
	"sync"
)

// TranslatableError is an error whose message is looked up by key when it is printed
type TranslatableError interface {
	error
	Key() string
	Args() []interface{}
	Unwrap() error
	WithArgs(args ...interface{}) TranslatableError
	Wrap(err error) TranslatableError
	Is(target error) bool
}

// MessageProvider resolves a key to its (unformatted) message
type MessageProvider interface {
	GetMessage(key string) string
}

// BundleMessageProvider resolves messages in the current default language of a bundle
type BundleMessageProvider struct {
	bundle *Bundle
}

// NewBundleMessageProvider creates a provider backed by bundle
func NewBundleMessageProvider(bundle *Bundle) *BundleMessageProvider {
	return &BundleMessageProvider{bundle: bundle}
}

// GetMessage returns the message template for key, or key itself when unknown
func (p *BundleMessageProvider) GetMessage(key string) string {
	if p.bundle == nil {
		return key
	}
	if msg, ok := p.bundle.Lookup(key); ok {
		return msg
	}

	return key
}

// TrError is the TranslatableError implementation. Copies made by WithArgs and Wrap
// share the sentinel of the error they were derived from, so errors.Is matches them
// against the package-level variable.
//
//	err := NewError("gohelp.error.command_not_found")
//	return err.WithArgs("deploy")
type TrError struct {
	sentinel *sentinel
	key      string
	args     []interface{}
	wrapped  error
	provider MessageProvider
}

type sentinel struct{ key string }

func (s *sentinel) Error() string { return s.key }

// NewError creates a translatable error for key using the default message provider
func NewError(key string) *TrError {
	return &TrError{
		sentinel: &sentinel{key: key},
		key:      key,
	}
}

// Error formats the message in the provider's language
func (e *TrError) Error() string {
	msg := e.messageProvider().GetMessage(e.key)
	if len(e.args) > 0 {
		msg = fmt.Sprintf(msg, e.args...)
	}
	if e.wrapped != nil {
		return fmt.Sprintf("%s: %v", msg, e.wrapped)
	}

	return msg
}

// WithArgs returns a copy carrying format arguments
func (e *TrError) WithArgs(args ...interface{}) TranslatableError {
	c := *e
	c.args = args

	return &c
}

// Wrap returns a copy wrapping err
func (e *TrError) Wrap(err error) TranslatableError {
	c := *e
	c.wrapped = err

	return &c
}

// Is matches any error derived from the same NewError call
func (e *TrError) Is(target error) bool {
	var t *TrError
	if errors.As(target, &t) {
		return e.sentinel == t.sentinel
	}

	return target == error(e.sentinel)
}

// Key returns the translation key
func (e *TrError) Key() string {
	return e.key
}

// Args returns the format arguments
func (e *TrError) Args() []interface{} {
	return e.args
}

// Unwrap returns the wrapped error
func (e *TrError) Unwrap() error {
	return e.wrapped
}

// SetProvider pins the provider used by Error instead of the package default
func (e *TrError) SetProvider(provider MessageProvider) {
	e.provider = provider
}

func (e *TrError) messageProvider() MessageProvider {
	if e.provider != nil {
		return e.provider
	}

	return getDefaultProvider()
}

var (
	defaultProvider    MessageProvider
	defaultProviderMux sync.RWMutex
)

// SetDefaultMessageProvider replaces the provider used by errors without a pinned one
func SetDefaultMessageProvider(p MessageProvider) {
	defaultProviderMux.Lock()
	defer defaultProviderMux.Unlock()
	defaultProvider = p
}

func getDefaultProvider() MessageProvider {
	defaultProviderMux.RLock()
	p := defaultProvider
	defaultProviderMux.RUnlock()
	if p != nil {
		return p
	}

	defaultProviderMux.Lock()
	defer defaultProviderMux.Unlock()
	if defaultProvider == nil {
		defaultProvider = NewBundleMessageProvider(Default())
	}

	return defaultProvider
}
