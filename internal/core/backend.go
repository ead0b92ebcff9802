package core

import "context"

// Backend resolves the effective configuration text for a config file.
// configBase is the file name without its .conf suffix ("server" for
// server.conf); stanza narrows the query where the backend supports it.
//
// An empty return means "no data found", never an error. Recoverable
// backend failures (tool timeout, nonzero exit, unreadable files) are
// logged as warnings and degrade to empty text; the check engine turns
// that emptiness into StatusError on the affected checks.
type Backend interface {
	Resolve(ctx context.Context, configBase, stanza string) string
}
