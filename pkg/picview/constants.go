package picview

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess           = 0  // Command completed successfully
	ExitGeneralError      = 1  // Unknown or unclassified error
	ExitUsageError        = 2  // CLI usage error (missing args, invalid flags)
	ExitPanic             = 3  // Internal panic (unexpected crash)
	ExitConfigError       = 10 // Invalid configuration
	ExitUnknownFormat     = 20 // Image content type could not be determined
	ExitUnsupportedFormat = 21 // Image content type is not a supported image kind
	ExitImageReadError    = 22 // Image file could not be read
	ExitHistoryError      = 23 // History file could not be read or written
)

// SupportedExtensions lists the lowercase file extensions, without the dot,
// that a directory listing surfaces as images.
var SupportedExtensions = []string{"jpeg", "jpg", "png", "gif", "webp"}

// SupportedMIMETypes lists the sniffed content types an image load accepts.
var SupportedMIMETypes = []string{"image/jpeg", "image/png", "image/gif", "image/webp"}

const (
	// SniffHeaderSize is the number of leading bytes inspected to classify
	// file content. It covers every signature the sniffer knows about.
	SniffHeaderSize = 262

	// HistoryFileName is the name of the file holding the last opened path.
	HistoryFileName = "history.txt"

	// AppDirName is the directory created under the user config directory.
	AppDirName = "picview"

	// EnvDataDir overrides the application data directory.
	EnvDataDir = "PICVIEW_DATA_DIR"

	// EnvAddr overrides the IPC bridge listen address.
	EnvAddr = "PICVIEW_ADDR"

	// EnvNonInteractive forces non-interactive output when set to "1".
	EnvNonInteractive = "PICVIEW_NON_INTERACTIVE"
)
