//go:build !windows

// Package cmdline splits a console line into arguments the way the platform shell does.
package cmdline

import "github.com/google/shlex"

// Split breaks s into arguments following POSIX shell quoting rules
func Split(s string) ([]string, error) {
	return shlex.Split(s)
}
