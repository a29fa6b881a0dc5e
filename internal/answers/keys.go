// Package answers defines the raw answer set collected from the user and
// normalizes it into a display-ready readme.ProjectRecord.
package answers

// Answer keys, in the order the questions are asked.
const (
	KeyUserName                  = "userName"
	KeyProjectName               = "projectName"
	KeyProjectName2              = "projectName2"
	KeyProjectLogo               = "projectLogo"
	KeyProjectBadges             = "projectBadges"
	KeyProjectTag                = "projectTag"
	KeyProjectUserStory          = "projectUserStory"
	KeyProjectIntro              = "projectIntro"
	KeyProjectImage              = "projectImage"
	KeyProjectTech               = "projectTech"
	KeyProjectInstall            = "projectInstall"
	KeyProjectInstallScreenshots = "projectInstallScreenshots"
	KeyProjectUsage              = "projectUsage"
	KeyProjectUsageScreenshots   = "projectUsageScreenshots"
	KeyProjectLicense            = "projectLicense"
	KeyProjectStatus             = "projectStatus"
	KeyProjectCollab             = "projectCollab"
	KeyProjectTests              = "projectTests"
	KeyProjectTestScreenshots    = "projectTestScreenshots"
	KeyProjectFAQ                = "projectFAQ"
	KeyProjectQs                 = "projectQs"
)

// DefaultProjectName is offered for the project name question and used when
// no name reaches the normalizer.
const DefaultProjectName = "myProject"

// Set maps answer keys to the raw text the user entered. Missing keys read
// as "".
type Set map[string]string

// Get returns the answer for key, or "" when it was never asked.
func (s Set) Get(key string) string {
	return s[key]
}

// Merge returns a new set holding s overlaid with other.
func (s Set) Merge(other Set) Set {
	merged := make(Set, len(s)+len(other))
	for k, v := range s {
		merged[k] = v
	}
	for k, v := range other {
		merged[k] = v
	}
	return merged
}
