// Package news turns a single human-authored change description into the
// four textual forms a release needs: the git commit message, the
// CHANGELOG.md entry, the RELEASE_NOTES.md document, and the compact
// bracketed block embedded in the addon.xml news field.
//
// Input is a restricted Keep a Changelog markdown dialect: `### Category`
// headings (Added, Fixed, Changed, Deprecated, Removed, Security) followed
// by `- ` / `* ` / `+ ` bullet lines. Parsing and validation happen once at
// Formatter construction; every render is a pure function of that state,
// so rendering the same Formatter twice yields byte-identical output.
package news
