package prompt

import (
	"github.com/goodreadme/goodreadme/internal/answers"
	"github.com/goodreadme/goodreadme/internal/license"
)

// Kind selects how a question is asked.
type Kind int

const (
	// Input reads a single line.
	Input Kind = iota
	// Editor reads several lines.
	Editor
	// List picks one of Choices.
	List
)

// Question is one prompt in the flow. Name is the answer key.
type Question struct {
	Name    string
	Message string
	Default string
	Choices []string
	Kind    Kind
}

// DefaultUserStory is offered as the starting point for the user story. The
// leading blank line and trailing indentation are part of the template.
const DefaultUserStory = "\n" +
	"```\n" +
	"AS A \n" +
	"I WANT \n" +
	"SO THAT \n" +
	"```\n" +
	"\n" +
	"```\n" +
	"GIVEN THAT \n" +
	"WHEN I \n" +
	"THEN \n" +
	"```\n" +
	"            "

// UserQuestion asks for the GitHub handle used for the profile lookup.
func UserQuestion() Question {
	return Question{Name: answers.KeyUserName, Message: "Please enter your GitHub username", Kind: Input}
}

// ProjectQuestions returns the project questions in the order they are asked.
func ProjectQuestions() []Question {
	return []Question{
		{Name: answers.KeyProjectName, Message: "Project Name?", Default: answers.DefaultProjectName},
		{Name: answers.KeyProjectName2, Message: "Alternate Project Name?"},
		{Name: answers.KeyProjectLogo, Message: "URL to project logo (blank if N/A):"},
		{Name: answers.KeyProjectBadges, Message: "Project Badges (separate with commas, blank for none):"},
		{Name: answers.KeyProjectTag, Message: "Project tagline -"},
		{Name: answers.KeyProjectUserStory, Message: "User Story -", Kind: Editor, Default: DefaultUserStory},
		{Name: answers.KeyProjectIntro, Message: "Project Introduction:", Kind: Editor},
		{Name: answers.KeyProjectImage, Message: "Project Image URL (blank for none):"},
		{Name: answers.KeyProjectTech, Message: "Technologies incorporated in project (separate with commas):"},
		{Name: answers.KeyProjectInstall, Message: "Installation Instructions:", Kind: Editor},
		{Name: answers.KeyProjectInstallScreenshots, Message: "Installation Screenshot URLs (separate with commas; blank for none):"},
		{Name: answers.KeyProjectUsage, Message: "Project Usage:", Kind: Editor},
		{Name: answers.KeyProjectUsageScreenshots, Message: "Usage Screenshots (separate with commas; blank for none) -"},
		{Name: answers.KeyProjectLicense, Message: "Project License", Kind: List, Choices: license.Labels()},
		{Name: answers.KeyProjectStatus, Message: "Current status of the project:"},
		{Name: answers.KeyProjectCollab, Message: "Contributing Git Usernames (separate entries by commas; blank if none):"},
		{Name: answers.KeyProjectTests, Message: "Tests:", Kind: Editor},
		{Name: answers.KeyProjectTestScreenshots, Message: "Test Screenshots (separate with commas; blank for none) -"},
		{Name: answers.KeyProjectFAQ, Message: "Frequently Asked Questions:", Kind: Editor},
		{Name: answers.KeyProjectQs, Message: "For additional questions:"},
	}
}
