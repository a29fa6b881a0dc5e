// Package readme assembles the final Markdown document from a normalized
// project record and an optional remote profile.
package readme

// ProjectRecord is the display-ready project data. Every optional field
// that was not supplied is exactly "", and that is the only absence signal
// the assembler reads.
type ProjectRecord struct {
	Title            string
	Logo             string
	Badges           string
	Tagline          string
	UserStory        string
	Introduction     string
	ImageBlock       string
	Technologies     string
	Installation     string
	Usage            string
	Status           string
	LicenseName      string
	ContributorsList string
	Tests            string
	FAQ              string
	Questions        string
}

// ProfileRecord is the subset of a remote user profile the document uses.
// Missing values are "".
type ProfileRecord struct {
	Name        string `json:"name"`
	AvatarURL   string `json:"avatar_url"`
	Email       string `json:"email"`
	ProfileURL  string `json:"profile_url"`
	AccountType string `json:"account_type"`
	IsAdmin     bool   `json:"is_admin"`
}
