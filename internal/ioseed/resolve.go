package ioseed

import (
	"context"
	"log/slog"
	"strings"

	"github.com/gnames/watchseed/pkg/wikidata"
)

// resolveQID finds the QID of an article title. When the article has no
// linked item the queries are tried in order with the Wikidata search.
// An empty result is not an error, it is reported as a warning.
func (s *seeder) resolveQID(
	ctx context.Context,
	label, name, title string,
	queries ...string,
) (string, error) {
	qid, err := s.client.QIDByTitle(ctx, title)
	if err != nil {
		return "", err
	}
	if qid != "" {
		return qid, nil
	}

	seen := make(map[string]struct{}, len(queries))
	for _, q := range queries {
		q = strings.TrimSpace(q)
		if _, ok := seen[q]; ok || q == "" {
			continue
		}
		seen[q] = struct{}{}

		qid, err = s.client.SearchFirst(ctx, q)
		if err != nil {
			return "", err
		}
		if qid != "" {
			slog.Info("Fallback QID", "name", name, "query", q, "qid", qid)
			s.note("Fallback QID for %s: %s", name, qid)
			return qid, nil
		}
	}

	slog.Warn("No QID", "name", name, "title", title)
	s.warn("No QID for %s%s (%s)", label, name, title)
	return "", nil
}

// entity loads the entity of a QID. An empty QID gives nil.
func (s *seeder) entity(
	ctx context.Context,
	qid string,
) (*wikidata.Entity, error) {
	if qid == "" {
		return nil, nil
	}
	return s.client.Entity(ctx, qid)
}

// countryName returns the English label of a country entity. Labels are
// cached for the run, misses included.
func (s *seeder) countryName(
	ctx context.Context,
	qid *string,
) (*string, error) {
	if qid == nil {
		return nil, nil
	}
	if res, ok := s.labels[*qid]; ok {
		return res, nil
	}

	e, err := s.client.Entity(ctx, *qid)
	if err != nil {
		return nil, err
	}

	var res *string
	if label := wikidata.Label(e); label != "" {
		res = &label
	}
	s.labels[*qid] = res
	return res, nil
}
