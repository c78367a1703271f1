package categorize

// Unmatched is an insertion-ordered set of descriptions that had no lookup
// entry. The zero value is ready to use.
type Unmatched struct {
	seen  map[string]struct{}
	order []string
}

// Add records description. Adding a description already present is a no-op.
func (u *Unmatched) Add(description string) {
	if u.seen == nil {
		u.seen = make(map[string]struct{})
	}
	if _, ok := u.seen[description]; ok {
		return
	}
	u.seen[description] = struct{}{}
	u.order = append(u.order, description)
}

// Contains reports whether description has been recorded.
func (u *Unmatched) Contains(description string) bool {
	_, ok := u.seen[description]
	return ok
}

// Len returns the number of distinct descriptions.
func (u *Unmatched) Len() int {
	return len(u.order)
}

// List returns descriptions in first-seen order.
func (u *Unmatched) List() []string {
	out := make([]string, len(u.order))
	copy(out, u.order)
	return out
}
