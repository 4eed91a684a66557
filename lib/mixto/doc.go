// Package mixto is a Go client for the Mixto collaboration server.
//
// A client is built from explicit values, from MIXTO_* environment
// variables, or from ~/.mixto.json, in that order of precedence:
//
//	mc, err := mixto.New(mixto.Config{})
//	if err != nil {
//	    // *mixto.ConfigurationError: no host or API key could be resolved
//	}
//
//	mc, err := mixto.New(mixto.Config{Host: "https://mixto.example", APIKey: key})
//
// Every request authenticates with the x-api-key header. API failures are
// typed and can be inspected with errors.As:
//
//	var notFound *mixto.NotFoundError
//	if errors.As(err, &notFound) {
//	    // entry or workspace does not exist
//	}
package mixto
