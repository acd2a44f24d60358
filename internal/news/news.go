package news

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

// MaxAddonNewsLength is the hard limit, in characters, that the Kodi addon
// metadata imposes on the rendered news field.
const MaxAddonNewsLength = 1500

// Formatter renders one release's change description into its four output
// targets. All state is fixed at construction: the date is sampled once, so
// multiple renders within one release are date-consistent, and every render
// method is a pure function.
type Formatter struct {
	summary string
	news    string
	version string
	date    string
	changes ChangeSet
}

// New creates a Formatter, defaulting the date to today (YYYY-MM-DD).
func New(summary, rawNews, version string) (*Formatter, error) {
	return NewWithDate(summary, rawNews, version, time.Now().Format("2006-01-02"))
}

// NewWithDate creates a Formatter with an explicit ISO date. Construction
// is the only validation point: a Formatter that exists holds a non-empty
// summary, version, and ChangeSet.
func NewWithDate(summary, rawNews, version, date string) (*Formatter, error) {
	f := &Formatter{
		summary: strings.TrimSpace(summary),
		news:    strings.TrimSpace(rawNews),
		version: strings.TrimSpace(version),
		date:    date,
	}

	switch {
	case f.summary == "":
		return nil, &EmptyFieldError{Field: "summary"}
	case f.news == "":
		return nil, &EmptyFieldError{Field: "news"}
	case f.version == "":
		return nil, &EmptyFieldError{Field: "version"}
	}

	changes, err := Parse(f.news)
	if err != nil {
		return nil, err
	}
	f.changes = changes

	return f, nil
}

// Version returns the trimmed version string.
func (f *Formatter) Version() string { return f.version }

// Date returns the ISO date the Formatter was constructed with.
func (f *Formatter) Date() string { return f.date }

// Summary returns the trimmed summary line.
func (f *Formatter) Summary() string { return f.summary }

// Changes returns the parsed ChangeSet.
func (f *Formatter) Changes() ChangeSet { return f.changes }

// CommitMessage renders the git commit message form.
func (f *Formatter) CommitMessage() string {
	return fmt.Sprintf("release: %s - %s", f.version, f.summary)
}

// ChangelogEntry renders a self-contained CHANGELOG.md block: a leading
// blank line, the version header, then each category section. The block
// always ends with exactly one newline.
func (f *Formatter) ChangelogEntry() string {
	lines := []string{"", fmt.Sprintf("## [%s] - %s - %s", f.version, f.date, f.summary), ""}
	lines = f.appendSections(lines)
	return strings.TrimRight(strings.Join(lines, "\n"), " \t\n") + "\n"
}

// ReleaseNotes renders the standalone RELEASE_NOTES.md document: a title
// line followed by the same section structure as the changelog entry.
func (f *Formatter) ReleaseNotes() string {
	lines := []string{
		fmt.Sprintf("# Release Notes - %s", f.version),
		"",
		fmt.Sprintf("## [%s] - %s - %s", f.version, f.date, f.summary),
		"",
	}
	lines = f.appendSections(lines)
	return strings.TrimRight(strings.Join(lines, "\n"), " \t\n") + "\n"
}

// AddonNews renders the compact block embedded in the addon.xml news field:
// a version/date line, the summary (customSummary wins when non-empty), and
// one bracket-coded line per item across all categories in ChangeSet order.
// Fails with LengthExceededError when the result is over MaxAddonNewsLength
// characters, since the field limit is imposed by Kodi, not by us.
func (f *Formatter) AddonNews(customSummary string) (string, error) {
	lines := []string{fmt.Sprintf("v%s (%s)", f.version, f.date)}

	summary := strings.TrimSpace(customSummary)
	if summary == "" {
		summary = f.summary
	}
	lines = append(lines, summary)

	for _, s := range f.changes.Sections {
		code := bracketCode(s.Category)
		for _, item := range s.Items {
			lines = append(lines, code+" "+item)
		}
	}

	out := strings.Join(lines, "\n")
	if n := utf8.RuneCountInString(out); n > MaxAddonNewsLength {
		return "", &LengthExceededError{Length: n}
	}
	return out, nil
}

// appendSections appends one `### Category` block per section, each
// followed by its `- item` lines and a blank line.
func (f *Formatter) appendSections(lines []string) []string {
	for _, s := range f.changes.Sections {
		lines = append(lines, "### "+s.Category)
		for _, item := range s.Items {
			lines = append(lines, "- "+item)
		}
		lines = append(lines, "")
	}
	return lines
}
