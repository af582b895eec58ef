package seeder

import "evseed/internal/model"

// Result lists the documents created by a run, in creation order.
type Result struct {
	Created []model.WriteResult
}

func (r *Result) add(wr *model.WriteResult) {
	r.Created = append(r.Created, *wr)
}

// Count returns how many documents were created in collection.
func (r *Result) Count(collection string) int {
	n := 0
	for _, wr := range r.Created {
		if wr.Collection == collection {
			n++
		}
	}
	return n
}

// Total returns the number of documents created across all collections.
func (r *Result) Total() int {
	return len(r.Created)
}

// IDs returns the ids created in collection, in creation order.
func (r *Result) IDs(collection string) []string {
	var ids []string
	for _, wr := range r.Created {
		if wr.Collection == collection {
			ids = append(ids, wr.ID)
		}
	}
	return ids
}
