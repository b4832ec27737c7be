package kindle

// Config holds the upstream account settings.
type Config struct {
	// Cookie is the browser session cookie string for the account.
	Cookie string `mapstructure:"cookie" default:""`
	// InsightsURL is the Reading Insights JSON endpoint. The HTML page is the
	// same URL without the trailing "/data".
	InsightsURL string `mapstructure:"insights_url" default:"https://www.amazon.com/kindle/reading/insights/data" validate:"required|url"`
	// UserAgent is sent with every request.
	UserAgent string `mapstructure:"user_agent" default:"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"`
	// AcceptLanguage is sent with every request.
	AcceptLanguage string `mapstructure:"accept_language" default:"en-US,en;q=0.9"`
	// TimeoutSeconds bounds each request.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}
