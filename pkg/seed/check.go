package seed

import (
	"errors"
	"fmt"
)

// Check verifies references between records: every collection points to
// an existing brand, every era to an existing collection and every variant
// to an existing era. All broken references are reported.
func (s *Seed) Check() error {
	var errs []error

	brands := make(map[string]struct{}, len(s.Brands))
	for _, b := range s.Brands {
		brands[b.ID] = struct{}{}
	}
	colls := make(map[string]struct{}, len(s.Collections))
	for _, c := range s.Collections {
		colls[c.ID] = struct{}{}
		if _, ok := brands[c.BrandID]; !ok {
			errs = append(errs,
				fmt.Errorf("collection '%s' references unknown brand '%s'",
					c.ID, c.BrandID))
		}
	}
	eras := make(map[string]struct{}, len(s.Eras))
	for _, e := range s.Eras {
		eras[e.ID] = struct{}{}
		if _, ok := colls[e.CollectionID]; !ok {
			errs = append(errs,
				fmt.Errorf("era '%s' references unknown collection '%s'",
					e.ID, e.CollectionID))
		}
	}
	for _, v := range s.Variants {
		if _, ok := eras[v.EraID]; !ok {
			errs = append(errs,
				fmt.Errorf("variant '%s' references unknown era '%s'",
					v.ID, v.EraID))
		}
	}

	return errors.Join(errs...)
}
