package redis

const (
	// KeyPrefixIdea is the prefix for idea records
	KeyPrefixIdea = "ideas:idea:"
	// KeyPrefixCategory is the prefix for category records
	KeyPrefixCategory = "ideas:category:"
	// KeyAllIdeas is the set of every idea ID
	KeyAllIdeas = "ideas:ideas:all"
	// KeyAllCategories is the set of every category ID
	KeyAllCategories = "ideas:categories:all"
)

// IdeaKey returns the Redis key for an idea by ID
func IdeaKey(id string) string {
	return KeyPrefixIdea + id
}

// CategoryKey returns the Redis key for a category by ID
func CategoryKey(id string) string {
	return KeyPrefixCategory + id
}
