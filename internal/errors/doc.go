// Package errors provides typed error handling for linkedin-mcp operations.
//
// Every failure that crosses the tool boundary carries one of the codes
// defined here, so MCP clients and CLI callers see the same categories.
//
// Example usage:
//
//	// Creating errors
//	err := errors.AuthFailed("user@example.com")
//	err := errors.RateLimited("/voyager/api/search/blended")
//
//	// Wrapping errors
//	err := errors.UpstreamError("/voyager/api/identity/profiles/jsmith", netErr)
//
//	// Checking error codes
//	if errors.Is(err, errors.CodeRateLimited) {
//	    // back off upstream
//	}
//
//	// Extracting codes
//	code := errors.Code(err)
//	if code == errors.CodeAuthFailed {
//	    // prompt for credentials
//	}
//
//	// Stdlib compatibility
//	var liErr *errors.Error
//	if errors.As(err, &liErr) {
//	    fmt.Println(liErr.Code, liErr.Message)
//	}
package errors
