package errors

import "errors"

// ErrorInfo holds user-facing message and suggested action for an error.
type ErrorInfo struct {
	// Message is the user-friendly error description.
	Message string
	// Action is a suggested action to resolve the issue (empty if none).
	Action string
}

// errorEntry pairs a sentinel error with its user-facing info.
type errorEntry struct {
	err  error
	info ErrorInfo
}

// errorInfoEntries maps sentinel errors to their user-facing messages.
// A slice rather than a map so wrapped errors match through errors.Is().
//
//nolint:gochecknoglobals // Pre-built mapping
var errorInfoEntries = []errorEntry{
	{
		err: ErrMarkerMismatch,
		info: ErrorInfo{
			Message: "A reader observed bytes that are not a complete marker.",
			Action:  "Run 'rwfile verify' on the target and inspect the reported offset.",
		},
	},
	{
		err: ErrPartialMarker,
		info: ErrorInfo{
			Message: "The target ends with a partial marker.",
			Action:  "Check that no other program writes to the target during a run.",
		},
	},
	{
		err: ErrSizeMismatch,
		info: ErrorInfo{
			Message: "The target size does not match the number of completed writes.",
			Action:  "Check that no other program writes to the target during a run.",
		},
	},
	{
		err: ErrLockHeld,
		info: ErrorInfo{
			Message: "Another rwfile process is already running against this target.",
			Action:  "Wait for the other run to finish or pick a different --file.",
		},
	},
	{
		err: ErrRunNotFound,
		info: ErrorInfo{
			Message: "No stored run has that id.",
			Action:  "Run 'rwfile history' to list stored runs.",
		},
	},
	{
		err: ErrRunCorrupted,
		info: ErrorInfo{
			Message: "A stored run record could not be read.",
			Action:  "Delete the record under ~/.rwfile/runs/.",
		},
	},
	{
		err: ErrEmptyMarker,
		info: ErrorInfo{
			Message: "The marker must contain at least one byte.",
			Action:  "Pass a non-empty --marker or set stress.marker in the config file.",
		},
	},
	{
		err: ErrConfigInvalidStress,
		info: ErrorInfo{
			Message: "The stress configuration is invalid.",
			Action:  "Run 'rwfile config show' and fix the stress section.",
		},
	},
	{
		err: ErrConfigInvalidLog,
		info: ErrorInfo{
			Message: "The log configuration is invalid.",
			Action:  "Run 'rwfile config show' and fix the log section.",
		},
	},
	{
		err: ErrInvalidOutputFormat,
		info: ErrorInfo{
			Message: "Unknown output format.",
			Action:  "Use --output text or --output json.",
		},
	},
	{
		err: ErrEmptyValue,
		info: ErrorInfo{
			Message: "A required value was empty.",
			Action:  "Check the command help for required flags.",
		},
	},
}

// getErrorInfo looks up the ErrorInfo for a given error.
// Returns an ErrorInfo with the original error message if not found.
func getErrorInfo(err error) ErrorInfo {
	for _, entry := range errorInfoEntries {
		if errors.Is(err, entry.err) {
			return entry.info
		}
	}
	return ErrorInfo{Message: err.Error()}
}

// UserMessage returns a user-friendly message for common errors.
// For unrecognized errors, it returns the error's original message.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	return getErrorInfo(err).Message
}

// Actionable returns a user-friendly error message along with a suggested
// action the user can take to resolve or work around the issue.
//
// For errors that have no clear action, the action string will be empty.
func Actionable(err error) (message, action string) {
	if err == nil {
		return "", ""
	}
	info := getErrorInfo(err)
	return info.Message, info.Action
}
