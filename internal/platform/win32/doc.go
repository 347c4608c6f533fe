//go:build windows

// Package win32 provides Windows platform support using user32 and the
// process query APIs from golang.org/x/sys/windows.
// Importing it for side effects registers the provider.
package win32
