package answers

import (
	"strings"

	"github.com/goodreadme/goodreadme/internal/license"
	"github.com/goodreadme/goodreadme/internal/readme"
	"github.com/goodreadme/goodreadme/internal/textutil"
)

const (
	badgeSeparator       = "   "
	technologySeparator  = "\\\n"
	contributorSeparator = ", "

	projectImageCaption = "Project Image"
	installImageCaption = "Project Install Image"
	usageImageCaption   = "Project Usage Image"
	testsImageCaption   = "Project Tests Image"
)

// Normalize turns raw answers into a ProjectRecord. It never returns a
// record with a non-empty field for an optional answer left blank.
func Normalize(set Set) readme.ProjectRecord {
	licenseLabel := set.Get(KeyProjectLicense)

	return readme.ProjectRecord{
		Title:            Title(set.Get(KeyProjectName), set.Get(KeyProjectName2)),
		Logo:             Logo(set.Get(KeyProjectLogo)),
		Badges:           Badges(set.Get(KeyProjectBadges), license.FromLabel(licenseLabel)),
		Tagline:          set.Get(KeyProjectTag),
		UserStory:        set.Get(KeyProjectUserStory),
		Introduction:     set.Get(KeyProjectIntro),
		ImageBlock:       ImageBlock(set.Get(KeyProjectImage)),
		Technologies:     Technologies(set.Get(KeyProjectTech)),
		Installation:     WithScreenshots(set.Get(KeyProjectInstall), set.Get(KeyProjectInstallScreenshots), installImageCaption),
		Usage:            WithScreenshots(set.Get(KeyProjectUsage), set.Get(KeyProjectUsageScreenshots), usageImageCaption),
		Status:           set.Get(KeyProjectStatus),
		LicenseName:      licenseLabel,
		ContributorsList: Contributors(set.Get(KeyProjectCollab)),
		Tests:            WithScreenshots(set.Get(KeyProjectTests), set.Get(KeyProjectTestScreenshots), testsImageCaption),
		FAQ:              set.Get(KeyProjectFAQ),
		Questions:        set.Get(KeyProjectQs),
	}
}

// Title combines the primary and alternate project names. The alternate is
// appended when it differs from the primary or when it is empty, so an empty
// alternate produces a trailing " - ". An empty primary falls back to
// DefaultProjectName.
func Title(primary, alternate string) string {
	if primary == "" {
		primary = DefaultProjectName
	}
	if alternate != primary || alternate == "" {
		return primary + " - " + alternate
	}
	return primary
}

// Logo wraps a logo URL as a Markdown image.
func Logo(url string) string {
	if url == "" {
		return ""
	}
	return "![Project Logo](" + url + ")"
}

// Badges joins the custom badges and appends the license badge last. The
// license badge is appended even when empty.
func Badges(custom string, lic license.License) string {
	return textutil.ParseList(custom, ",").Append(lic.Badge()).Join(badgeSeparator)
}

// ImageBlock renders project screenshots one per line.
func ImageBlock(urls string) string {
	return textutil.ParseList(urls, ",").ImageLinks(projectImageCaption).Join("\n")
}

// Technologies renders one technology per line using Markdown hard breaks.
func Technologies(raw string) string {
	return textutil.ParseList(raw, ",").Join(technologySeparator)
}

// Contributors renders the comma-delimited usernames as a single line.
func Contributors(raw string) string {
	return textutil.ParseList(raw, ",").Join(contributorSeparator)
}

// WithScreenshots appends each screenshot link to text on its own line.
func WithScreenshots(text, urls, caption string) string {
	links := textutil.ParseList(urls, ",").ImageLinks(caption)
	if !links.Present() {
		return text
	}

	var b strings.Builder
	b.WriteString(text)
	for _, link := range links.Items() {
		b.WriteString("\n" + link)
	}
	return b.String()
}
