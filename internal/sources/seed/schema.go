package seed

// File is the root of the seed YAML:
//
//	categories:
//	  - name: Projects
//	    color: "#22c55e"
//	ideas:
//	  - title: Build a journaling app
//	    content: "<p>first draft</p>"
//	    category: Projects
//	    tags: [go, web]
type File struct {
	Categories []CategoryEntry `yaml:"categories"`
	Ideas      []IdeaEntry     `yaml:"ideas"`
}

// CategoryEntry declares a category that must exist. Color may be empty.
type CategoryEntry struct {
	Name  string `yaml:"name"`
	Color string `yaml:"color"`
}

// IdeaEntry is a starter idea. Category refers to a category by name.
type IdeaEntry struct {
	Title    string   `yaml:"title"`
	Content  string   `yaml:"content"`
	Category string   `yaml:"category"`
	Tags     []string `yaml:"tags"`
}
