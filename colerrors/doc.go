// Package colerrors provides structured error types for coltools.
//
// These error types enable programmatic error handling via errors.Is() and
// errors.As(), allowing callers to distinguish between different categories
// of errors and implement appropriate recovery strategies.
//
// # Error Categories
//
//   - InvalidInputError: values outside a conversion's accepted domain or format
//   - ParseError: unrecognized tokens during natural-language number parsing
//   - SchemaError: malformed schema documents or unknown type names
//   - ConfigError: invalid configuration or input options
//
// # Usage with errors.Is
//
//	n, err := numeric.FromRoman("MCMXIVQ")
//	if errors.Is(err, colerrors.ErrInvalidInput) {
//	    // Handle the bad symbol
//	}
//
// # Usage with errors.As
//
//	_, err := numeric.WordsToNumber("three hundred and blorp")
//	var perr *colerrors.ParseError
//	if errors.As(err, &perr) {
//	    fmt.Printf("bad token: %s\n", perr.Token)
//	}
package colerrors
