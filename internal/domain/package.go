package domain

// ManifestFormat identifies one of the supported package-description files.
type ManifestFormat string

const (
	FormatCargo  ManifestFormat = "cargo"
	FormatNpm    ManifestFormat = "npm"
	FormatPoetry ManifestFormat = "poetry"
)

// ManifestFormats lists the supported formats in detection priority order.
var ManifestFormats = []ManifestFormat{FormatCargo, FormatNpm, FormatPoetry}

// Filename returns the file name a format is stored under.
func (f ManifestFormat) Filename() string {
	switch f {
	case FormatCargo:
		return "Cargo.toml"
	case FormatNpm:
		return "package.json"
	case FormatPoetry:
		return "pyproject.toml"
	default:
		return ""
	}
}

// ManifestLocation is a detected manifest file on disk.
type ManifestLocation struct {
	Format ManifestFormat
	Path   string
}

// Manifest represents a parsed package manifest.

type Manifest struct {
	Format         ManifestFormat
	Path           string
	Name           string
	Version        string
	TaggingEnabled bool
}
