// Package httpx provides Verb, a small strictly-typed HTTP request
// method for endpoint registration and API descriptions.
//
// A Verb wraps an id from the HTTP/1.1 parser's fixed method table,
// which covers the standard methods and the WebDAV/UPnP extensions the
// parser recognizes. The table is built at compile time and only read,
// so Verbs can be copied, compared and decoded concurrently without
// locking.
//
// Highlights
//   - Construction from a native id (VerbOf), from a canonical token
//     (ParseVerb) or from a request line (VerbFromRequestLine).
//   - Comparable and totally ordered (Compare, Less) by table id, so it
//     works as a map key and sorts deterministically.
//   - Text and JSON encoding as a lower-case string ("get", "post"),
//     decoded case-insensitively.
//   - The zero Verb is explicitly unset; Name and encoding report
//     ErrInvalidVerb instead of guessing.
//
// Quick start:
//
//	routes := map[httpx.Verb]Handler{
//	    httpx.VerbOf(httpx.MethodGet): list,
//	    httpx.MustParseVerb("POST"):   create,
//	}
//	var op struct{ Method httpx.Verb `json:"method"` }
//	if err := json.Unmarshal([]byte(`{"method":"get"}`), &op); err != nil { log.Fatal(err) }
//	h := routes[op.Method]
package httpx
