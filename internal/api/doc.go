// Package api exposes the strength evaluator over HTTP.
//
// The JSON contract of POST /check_password is exactly passmeter.Result, so
// a remote caller receives the same value a local call to
// passmeter.Evaluate would produce. Request bodies are never logged.
package api
