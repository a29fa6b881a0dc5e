package readme

import (
	"strings"
	"time"
)

// DateLayout is the short date form stamped into the footer.
const DateLayout = "1/2/2006"

// Assembler renders documents. It holds no per-document state and can be
// reused across renders.
type Assembler struct {
	now    func() time.Time
	footer *Footer
}

// Option configures an Assembler.
type Option func(*Assembler)

// WithClock replaces time.Now as the footer date source.
func WithClock(now func() time.Time) Option {
	return func(a *Assembler) {
		a.now = now
	}
}

// WithFooter replaces the default footer.
func WithFooter(footer *Footer) Option {
	return func(a *Assembler) {
		a.footer = footer
	}
}

// NewAssembler creates an assembler with the default footer and the system clock.
func NewAssembler(opts ...Option) *Assembler {
	a := &Assembler{
		now:    time.Now,
		footer: DefaultFooter(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Render builds the document. profile may be nil, in which case the avatar
// and name sections are left out.
func (a *Assembler) Render(project ProjectRecord, profile *ProfileRecord) string {
	has := detectPresence(project, profile)
	sections := buildSections(project, has)

	var b strings.Builder

	if has.logo {
		b.WriteString(project.Logo + "\n")
	}
	b.WriteString("# " + project.Title + "\n")
	if has.badges {
		b.WriteString(project.Badges + "\n")
	}
	b.WriteString("\n")
	if has.tagline {
		b.WriteString("> " + project.Tagline + "\n\n")
	}
	if has.intro {
		b.WriteString(project.Introduction + "\n\n")
	}

	b.WriteString("## User Story\n" + project.UserStory + "\n\n")
	if has.projectImage {
		b.WriteString("## Graphic\n" + project.ImageBlock + "\n")
	}

	b.WriteString("\n## Table of Contents\n")
	for _, entry := range sections.toc() {
		if entry.present {
			b.WriteString(entry.tocLine())
		}
	}

	writeSection(&b, sections.technologies, "\n\n")
	writeSection(&b, sections.gettingStarted, "\n\n")
	writeSection(&b, sections.usage, "\n\n")
	writeSection(&b, sections.tests, "\n")
	writeSection(&b, sections.team, "\n")
	writeSection(&b, sections.status, "\n\n")
	writeSection(&b, sections.faq, "\n")
	b.WriteString("\n")
	writeSection(&b, sections.questions, "\n\n")
	writeSection(&b, sections.contributing, "\n\n")
	writeSection(&b, sections.license, "\n\n")

	if has.avatar {
		b.WriteString("![User Avatar Picture](" + profile.AvatarURL + ")\n")
	}
	if has.userName {
		b.WriteString("## " + profile.Name + "\n")
	}

	b.WriteString("\n" + a.footer.Render(FooterContext{
		Today: a.now().Format(DateLayout),
		Title: project.Title,
	}) + "\n\n")

	return b.String()
}

func writeSection(b *strings.Builder, s section, trailer string) {
	if !s.present {
		return
	}
	b.WriteString("## " + s.heading + "\n" + s.body + trailer)
}
