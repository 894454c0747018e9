package constants

// Defaults shown until the profile is edited or seeded from a file.
const (
	DefaultProfileName     = "Your Name"
	DefaultProfileTitle    = "Software Developer"
	DefaultProfileAbout    = "I am a software developer who loves programming and building web applications with Go and other modern tools."
	DefaultProfileEmail    = "your.email@example.com"
	DefaultProfileLinkedIn = "https://www.linkedin.com/in/your-profile"
	DefaultProfileTwitter  = "https://twitter.com/your-profile"
	DefaultProfileGitHub   = "https://github.com/your-profile"
)

// DefaultSkills is copied, never handed out directly.
var DefaultSkills = []string{"Go", "JavaScript", "HTML/CSS", "SQL"}
