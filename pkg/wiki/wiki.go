// Package wiki defines the contract of the client that talks to the
// English Wikipedia API and the Wikidata API.
package wiki

import (
	"context"

	"github.com/gnames/watchseed/pkg/wikidata"
)

// ExtractSentences is the maximum number of sentences requested for an
// article intro.
const ExtractSentences = 10

// Client resolves article titles and free text to Wikidata QIDs, loads
// Wikidata entities and article intros. Every call is a single GET request
// without retries.
// Transport, status and decoding failures are returned as errors. "Not
// found" is not an error.
type Client interface {
	// QIDByTitle returns the QID linked to an English Wikipedia article,
	// or an empty string when the page is missing or has no linked item.
	QIDByTitle(ctx context.Context, title string) (string, error)

	// SearchFirst returns the QID of the first Wikidata search hit for the
	// text, or an empty string when nothing matches.
	SearchFirst(ctx context.Context, text string) (string, error)

	// Entity loads a Wikidata entity with claims, English labels and
	// descriptions. It returns nil when the entity does not exist or the
	// API refuses to return it.
	Entity(ctx context.Context, qid string) (*wikidata.Entity, error)

	// Extract returns the plain-text intro of an English Wikipedia article,
	// up to ExtractSentences sentences. It returns an empty string when the
	// page is missing or has no intro.
	Extract(ctx context.Context, title string) (string, error)
}
