package profile

// TagSet is the engine's two-bucket view of active context tags.
// Internal tags are owned and mutated by the engine itself (typically in
// response to LayerEvent actions replayed by a host driver); external
// tags are supplied wholesale by the host. Membership queries see the
// union of both buckets.
//
// Internal tags are a plain list, not a set: adding a tag already present
// is allowed and RemoveInternal only drops the first occurrence. A
// caller needing strict set semantics must avoid adding duplicates
// itself.
type TagSet struct {
	internal []LayerTag
	external []LayerTag
}

// NewTagSet returns an empty TagSet.
func NewTagSet() TagSet {
	return TagSet{}
}

// AddInternal appends tag to the internal bucket, even if already present.
func (t *TagSet) AddInternal(tag LayerTag) {
	t.internal = append(t.internal, tag)
}

// AddManyInternal appends every tag in tags to the internal bucket.
func (t *TagSet) AddManyInternal(tags []LayerTag) {
	t.internal = append(t.internal, tags...)
}

// RemoveInternal removes the first occurrence of tag from the internal
// bucket, if any. Removing an absent tag is a no-op.
func (t *TagSet) RemoveInternal(tag LayerTag) {
	for i, existing := range t.internal {
		if existing == tag {
			t.internal = append(t.internal[:i], t.internal[i+1:]...)
			return
		}
	}
}

// RemoveManyInternal removes each tag in tags, one first-occurrence at a
// time, in order.
func (t *TagSet) RemoveManyInternal(tags []LayerTag) {
	for _, tag := range tags {
		t.RemoveInternal(tag)
	}
}

// ClearInternal empties the internal bucket.
func (t *TagSet) ClearInternal() {
	t.internal = t.internal[:0]
}

// SetExternal atomically replaces the external bucket.
func (t *TagSet) SetExternal(tags []LayerTag) {
	t.external = tags
}

// ContainsAll reports whether every tag in query is present in the union
// of internal and external tags. An empty query is vacuously true.
func (t *TagSet) ContainsAll(query []LayerTag) bool {
	for _, tag := range query {
		if !t.contains(tag) {
			return false
		}
	}
	return true
}

// ContainsAny reports whether at least one tag in query is present in
// the union of internal and external tags. An empty query is false.
func (t *TagSet) ContainsAny(query []LayerTag) bool {
	for _, tag := range query {
		if t.contains(tag) {
			return true
		}
	}
	return false
}

func (t *TagSet) contains(tag LayerTag) bool {
	for _, existing := range t.internal {
		if existing == tag {
			return true
		}
	}
	for _, existing := range t.external {
		if existing == tag {
			return true
		}
	}
	return false
}
