package models

// AutoclassContent defines which docstrings the builder merges into a
// generated class entry.
type AutoclassContent string

const (
	// AutoclassClass uses only the class docstring.
	AutoclassClass AutoclassContent = "class"

	// AutoclassInit uses only the constructor docstring.
	AutoclassInit AutoclassContent = "init"

	// AutoclassBoth concatenates class and constructor docstrings (default).
	AutoclassBoth AutoclassContent = "both"
)

// ValidAutoclassContents returns all valid autoclass content values.
func ValidAutoclassContents() []AutoclassContent {
	return []AutoclassContent{AutoclassClass, AutoclassInit, AutoclassBoth}
}

// IsValid checks if the autoclass content mode is a valid value.
func (c AutoclassContent) IsValid() bool {
	switch c {
	case AutoclassClass, AutoclassInit, AutoclassBoth:
		return true
	}
	return false
}

// ProjectConfig represents the project configuration section.
type ProjectConfig struct {
	Name      string `yaml:"name" json:"name"`
	Author    string `yaml:"author" json:"author"`
	Copyright string `yaml:"copyright" json:"copyright"`
	Version   string `yaml:"version" json:"version"`
	Release   string `yaml:"release" json:"release"`
}

// SourceConfig represents the documentation source configuration section.
type SourceConfig struct {
	Extensions             []string         `yaml:"extensions" json:"extensions"`
	TemplatesPath          []string         `yaml:"templates_path" json:"templates_path"`
	SourceSuffix           string           `yaml:"source_suffix" json:"source_suffix"`
	MasterDoc              string           `yaml:"master_doc" json:"master_doc"`
	ExcludePatterns        []string         `yaml:"exclude_patterns" json:"exclude_patterns"`
	AddFunctionParentheses bool             `yaml:"add_function_parentheses" json:"add_function_parentheses"`
	AddModuleNames         bool             `yaml:"add_module_names" json:"add_module_names"`
	PygmentsStyle          string           `yaml:"pygments_style" json:"pygments_style"`
	AutoclassContent       AutoclassContent `yaml:"autoclass_content" json:"autoclass_content"`
}

// HTMLConfig represents the HTML builder configuration section.
// Theme is an explicit override; when empty the theme is resolved from the
// build environment (see config.ResolveTheme).
type HTMLConfig struct {
	Theme             string   `yaml:"theme" json:"theme"`
	ThemePath         []string `yaml:"theme_path" json:"theme_path"`
	StaticPath        []string `yaml:"static_path" json:"static_path"`
	DomainIndices     bool     `yaml:"domain_indices" json:"domain_indices"`
	UseIndex          bool     `yaml:"use_index" json:"use_index"`
	SplitIndex        bool     `yaml:"split_index" json:"split_index"`
	ShowSourcelink    bool     `yaml:"show_sourcelink" json:"show_sourcelink"`
	ShowBuilderCredit bool     `yaml:"show_builder_credit" json:"show_builder_credit"`
	ShowCopyright     bool     `yaml:"show_copyright" json:"show_copyright"`
	HelpBasename      string   `yaml:"help_basename" json:"help_basename"`
}

// DocumentSpec represents one LaTeX document entry: which source document
// to start from and what to produce.
type DocumentSpec struct {
	StartDoc string `yaml:"start_doc" json:"start_doc"`
	Target   string `yaml:"target" json:"target"`
	Title    string `yaml:"title" json:"title"`
	Author   string `yaml:"author" json:"author"`
	Class    string `yaml:"class" json:"class"`
}

// ManPageSpec represents one manual page entry.
type ManPageSpec struct {
	StartDoc    string   `yaml:"start_doc" json:"start_doc"`
	Name        string   `yaml:"name" json:"name"`
	Description string   `yaml:"description" json:"description"`
	Authors     []string `yaml:"authors" json:"authors"`
	Section     int      `yaml:"section" json:"section"`
}

// TexinfoSpec represents one Texinfo document entry.
type TexinfoSpec struct {
	StartDoc    string `yaml:"start_doc" json:"start_doc"`
	Target      string `yaml:"target" json:"target"`
	Title       string `yaml:"title" json:"title"`
	Author      string `yaml:"author" json:"author"`
	DirEntry    string `yaml:"dir_entry" json:"dir_entry"`
	Description string `yaml:"description" json:"description"`
	Category    string `yaml:"category" json:"category"`
}
