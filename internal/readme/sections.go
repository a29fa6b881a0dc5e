package readme

import "github.com/goodreadme/goodreadme/internal/license"

// presence holds one boolean per removable part of the document. It is
// computed once per render and read by both the table of contents and the
// body.
type presence struct {
	logo         bool
	badges       bool
	tagline      bool
	intro        bool
	projectImage bool
	team         bool
	license      bool
	tests        bool
	faq          bool
	userName     bool
	avatar       bool
}

func detectPresence(p ProjectRecord, profile *ProfileRecord) presence {
	s := presence{
		logo:         p.Logo != "",
		badges:       p.Badges != "",
		tagline:      p.Tagline != "",
		intro:        p.Introduction != "",
		projectImage: p.ImageBlock != "",
		team:         p.ContributorsList != "",
		license:      license.IsLicensed(p.LicenseName),
		tests:        p.Tests != "",
		faq:          p.FAQ != "",
	}
	if profile != nil {
		s.userName = profile.Name != ""
		s.avatar = profile.AvatarURL != ""
	}
	return s
}

// section is a body section that also has a table of contents entry.
type section struct {
	tocLabel string
	anchor   string
	heading  string
	body     string
	present  bool
}

func (s section) tocLine() string {
	return "* [" + s.tocLabel + "](#" + s.anchor + ")\n"
}

// sectionSet builds every linked section from one presence value, so an
// entry can only be listed when its body is emitted.
type sectionSet struct {
	technologies   section
	gettingStarted section
	usage          section
	tests          section
	team           section
	status         section
	faq            section
	questions      section
	contributing   section
	license        section
}

const contributingText = "Contact us for guidelines on submitting contributions."

func buildSections(p ProjectRecord, s presence) sectionSet {
	return sectionSet{
		technologies:   section{tocLabel: "Technologies", anchor: "Technologies", heading: "Technologies", body: p.Technologies, present: true},
		gettingStarted: section{tocLabel: "Getting Started", anchor: "Getting", heading: "Getting Started", body: p.Installation, present: true},
		usage:          section{tocLabel: "Usage", anchor: "Usage", heading: "Usage", body: p.Usage, present: true},
		tests:          section{tocLabel: "Tests", anchor: "Running", heading: "Running the Tests", body: p.Tests, present: s.tests},
		team:           section{tocLabel: "Team", anchor: "Team", heading: "Team", body: p.ContributorsList, present: s.team},
		status:         section{tocLabel: "Project Status", anchor: "Project", heading: "Project Status", body: p.Status, present: true},
		// The FAQ entry is always listed; only its body is optional.
		faq:            section{tocLabel: "Frequently Asked Questions", anchor: "FAQ", heading: "FAQ", body: p.FAQ, present: s.faq},
		questions:      section{tocLabel: "Questions", anchor: "Additional", heading: "Additional Questions", body: p.Questions, present: true},
		contributing:   section{tocLabel: "Contributing", anchor: "Contributing", heading: "Contributing", body: contributingText, present: true},
		license: section{
			tocLabel: "License",
			anchor:   "License",
			heading:  "License",
			body:     "This project is licensed under the " + p.LicenseName + ".",
			present:  s.license,
		},
	}
}

// toc returns the table of contents entries in document order.
func (ss sectionSet) toc() []section {
	return []section{
		ss.technologies,
		ss.gettingStarted,
		ss.usage,
		ss.tests,
		ss.team,
		ss.status,
		{tocLabel: ss.faq.tocLabel, anchor: ss.faq.anchor, present: true},
		ss.questions,
		ss.contributing,
		ss.license,
	}
}
