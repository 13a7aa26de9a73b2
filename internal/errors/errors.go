package errors

import (
	stderrors "errors"
	"fmt"
	"os"

	"github.com/julianstephens/adhanclock/internal/logger"
)

// Error kinds. Wrap them with %w so callers can branch with errors.Is.
var (
	// ErrNetwork means the timing service could not be reached or refused the request.
	ErrNetwork = stderrors.New("timing service unreachable")
	// ErrResponseParse means the timing service answered with malformed or missing fields.
	ErrResponseParse = stderrors.New("malformed timing response")
	// ErrAssetLoad means an audio or image asset is missing or corrupt.
	ErrAssetLoad = stderrors.New("asset unavailable")
	// ErrRender means the display surface is unavailable. It is always fatal.
	ErrRender = stderrors.New("display unavailable")
)

// Kind returns a short label for the error kind wrapped by err, or "error".
func Kind(err error) string {
	switch {
	case err == nil:
		return ""
	case stderrors.Is(err, ErrNetwork):
		return "network"
	case stderrors.Is(err, ErrResponseParse):
		return "parse"
	case stderrors.Is(err, ErrAssetLoad):
		return "asset"
	case stderrors.Is(err, ErrRender):
		return "render"
	default:
		return "error"
	}
}

// Format formats an error message with a consistent "Error: " prefix
func Format(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Error: %v", err)
}

// Formatf formats an error message with a consistent "Error: " prefix using a format string
func Formatf(format string, args ...interface{}) string {
	return fmt.Sprintf("Error: "+format, args...)
}

// Fatal logs an error and exits the program with exit code 1
func Fatal(err error) {
	if err != nil {
		logger.Error("Command execution failed", "error", err, "kind", Kind(err))
		fmt.Fprintf(os.Stderr, "%s\n", Format(err))
		os.Exit(1)
	}
}

// Fatalf logs and formats an error message, then exits the program with exit code 1
func Fatalf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	logger.Error("Command execution failed", "error", msg)
	fmt.Fprintf(os.Stderr, "%s\n", Formatf(format, args...))
	os.Exit(1)
}
