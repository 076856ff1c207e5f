// flags.go defines constants for all CLI flag names.
//
// Using constants instead of string literals prevents typos and enables
// compile-time checking when flag names are used in both Flags().Type()
// definitions and GetType() calls.
//
// Naming convention: Flag<PascalCaseName> where name matches the kebab-case
// CLI flag (e.g., "no-colour" -> FlagNoColour).

package extension

// Flag name constants for CLI commands.
const (
	// Boolean flags

	FlagDir      = "dir"       // Produce directory form (trailing slash)
	FlagDryRun   = "dry-run"   // Preview without making changes
	FlagFailed   = "failed"    // Only failed operations
	FlagForce    = "force"     // Skip confirmation prompts
	FlagLocal    = "local"     // Use local scope
	FlagLong     = "long"      // Long listing format
	FlagNoColour = "no-colour" // Disable ANSI colour in output
	FlagNull     = "null"      // Separate output entries with NUL instead of newline
	FlagProject  = "project"   // Restrict to the current project
	FlagShort    = "short"     // Print only the build tag
	FlagVerbose  = "verbose"   // Report passing cases too

	// String flags

	FlagBase      = "base"       // Base directory for relative input
	FlagOlderThan = "older-than" // Retention age (e.g., 12h, 30d, 1y)
	FlagRoot      = "root"       // Ceiling directory for walk-up
	FlagSep       = "sep"        // Join separator
	FlagSource    = "source"     // Audit source filter

	// Integer flags

	FlagLimit = "limit" // Limit number of results
)
