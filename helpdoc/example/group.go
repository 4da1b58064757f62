package example

import "fmt"

// Bucket holds the records sharing one signature.
type Bucket struct {
	Signature Signature
	Records   []Record
}

// Group maps signatures to records, keeping the order in
// which signatures were first seen.
type Group struct {
	buckets []*Bucket
	index   map[string]int
}

// GroupBySignature buckets records by their signature
// relative to cmd. Both the bucket order and the record
// order inside a bucket follow the input order.
func GroupBySignature(cmd string, records []Record) (*Group, error) {
	const errCtx = "grouping examples"

	grp := &Group{index: make(map[string]int)}

	for _, rec := range records {
		sig, err := ExtractSignature(cmd, rec.Text)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", errCtx, err)
		}

		key := sig.Key()

		i, ok := grp.index[key]
		if !ok {
			i = len(grp.buckets)
			grp.index[key] = i
			grp.buckets = append(grp.buckets, &Bucket{Signature: sig})
		}

		grp.buckets[i].Records = append(grp.buckets[i].Records, rec)
	}

	return grp, nil
}

// Buckets returns the buckets in first-seen order.
func (g *Group) Buckets() []*Bucket {
	return g.buckets
}

// Has reports whether sig has a bucket.
func (g *Group) Has(sig Signature) bool {
	_, ok := g.index[sig.Key()]

	return ok
}

// Len returns the number of distinct signatures.
func (g *Group) Len() int {
	return len(g.buckets)
}
