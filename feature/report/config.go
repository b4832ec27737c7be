package report

// Config controls the generated page.
type Config struct {
	// Output is the path of the generated HTML file.
	Output string `mapstructure:"output" default:"index.html" validate:"required"`
	// WindowDays is the trailing heatmap window.
	WindowDays int `mapstructure:"window_days" default:"360" validate:"required|min:1|max:3660"`
	// Title is the page heading.
	Title string `mapstructure:"title" default:"Reading Log"`
}
