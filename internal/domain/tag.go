package domain

import (
	"fmt"
	"strings"
)

const (
	// TagPrefix starts every derived tag name.
	TagPrefix = "release"
	// scopeSeparator replaces "/" in scoped package names.
	scopeSeparator = "__"
)

// Identity is the tagger recorded on an annotated tag.
type Identity struct {
	Name  string
	Email string
}

// String formats the identity the way git prints it.
func (i Identity) String() string {
	return fmt.Sprintf("%s (%s)", i.Name, i.Email)
}

// TagSpec describes one annotated tag to create.
type TagSpec struct {
	Name    string
	Commit  string
	Message string
	Tagger  Identity
}

// TagOutcome reports what happened to a single package.
type TagOutcome string

const (
	TagOutcomeCreated         TagOutcome = "created"
	TagOutcomeDryRun          TagOutcome = "dry_run"
	TagOutcomeSkippedDisabled TagOutcome = "skipped_disabled"
	TagOutcomeSkippedExisting TagOutcome = "skipped_existing"
)

// TagResult is the outcome of processing one manifest.
type TagResult struct {
	Manifest *Manifest
	Tag      string
	Commit   string
	Outcome  TagOutcome
}

// SanitizeName makes a package name safe to embed in a tag.
// "@myOrg/package" becomes "myOrg__package".
func SanitizeName(name string) string {
	name = strings.TrimPrefix(name, "@")
	return strings.ReplaceAll(name, "/", scopeSeparator)
}

// DeriveTagName returns release-<sanitized-name>-<version>. The version is used verbatim.
func DeriveTagName(name, version string) string {
	return fmt.Sprintf("%s-%s-%s", TagPrefix, SanitizeName(name), version)
}

// TagMessage returns the annotation message for a package release tag.
func TagMessage(name, version string) string {
	return fmt.Sprintf("automatic release tag of %s (%s)", name, version)
}

// NewTagSpec builds the tag for a manifest at the given commit.
func NewTagSpec(m *Manifest, commit string, tagger Identity) TagSpec {
	return TagSpec{
		Name:    DeriveTagName(m.Name, m.Version),
		Commit:  commit,
		Message: TagMessage(m.Name, m.Version),
		Tagger:  tagger,
	}
}
