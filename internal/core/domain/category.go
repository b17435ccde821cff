package domain

// CategoryType is the root classification of a category: money leaving the
// account (EXPENSE) or entering it (INCOME).
type CategoryType string

const (
	Expense CategoryType = "EXPENSE"
	Income  CategoryType = "INCOME"
)

// Category is a node in the static three-level category tree:
// type category (no parent) -> general category -> subcategory.
// The tree is preloaded, immutable and process-wide; transactions reference
// categories by ID.
type Category struct {
	ID     string
	Title  string
	Type   CategoryType
	Emoji  string
	Parent *Category
}

// IsTypeCategory reports whether the category is a top-level type category.
func (c *Category) IsTypeCategory() bool {
	return c.Parent == nil
}

// IsGeneralCategory reports whether the category sits directly under a type
// category.
func (c *Category) IsGeneralCategory() bool {
	return c.Parent != nil && c.Parent.IsTypeCategory()
}

// IsSubCategory reports whether the category sits under a general category.
func (c *Category) IsSubCategory() bool {
	return c.Parent != nil && c.Parent.IsGeneralCategory()
}

// Root walks parent references to the type-level ancestor. The tree is at
// most three levels deep, so this is a bounded walk of at most two hops.
func (c *Category) Root() *Category {
	node := c
	for node.Parent != nil {
		node = node.Parent
	}
	return node
}

// General resolves the rollup target used by aggregation: the category
// itself when it is general or type level, otherwise its direct parent.
func (c *Category) General() *Category {
	if c.IsSubCategory() {
		return c.Parent
	}
	return c
}

// ResolveEmoji returns the category's own emoji, else its parent's, else its
// grandparent's, else the empty string. Display only.
func (c *Category) ResolveEmoji() string {
	if c.Emoji != "" {
		return c.Emoji
	}
	if c.Parent != nil {
		if c.Parent.Emoji != "" {
			return c.Parent.Emoji
		}
		if c.Parent.Parent != nil {
			return c.Parent.Parent.Emoji
		}
	}
	return ""
}

// CategorySet is an immutable lookup table over the preloaded category tree.
type CategorySet struct {
	ordered []*Category
	byID    map[string]*Category
}

// NewCategorySet indexes the given categories by ID, preserving order.
func NewCategorySet(categories []*Category) *CategorySet {
	byID := make(map[string]*Category, len(categories))
	for _, c := range categories {
		byID[c.ID] = c
	}
	return &CategorySet{ordered: categories, byID: byID}
}

// All returns the categories in their declaration order.
func (s *CategorySet) All() []*Category {
	return s.ordered
}

// ByID looks a category up by its identifier.
func (s *CategorySet) ByID(id string) (*Category, bool) {
	c, ok := s.byID[id]
	return c, ok
}

// RootType resolves the root category type for the given category ID.
// The second return is false when the ID is unknown.
func (s *CategorySet) RootType(id string) (CategoryType, bool) {
	c, ok := s.byID[id]
	if !ok {
		return "", false
	}
	return c.Root().Type, true
}

// TopLevel returns the type-level categories.
func (s *CategorySet) TopLevel() []*Category {
	var out []*Category
	for _, c := range s.ordered {
		if c.IsTypeCategory() {
			out = append(out, c)
		}
	}
	return out
}

// Children returns the direct children of the category with the given ID.
func (s *CategorySet) Children(parentID string) []*Category {
	var out []*Category
	for _, c := range s.ordered {
		if c.Parent != nil && c.Parent.ID == parentID {
			out = append(out, c)
		}
	}
	return out
}
