// Package catalogdata embeds the default pathway catalog, specialty index and
// milestone index shipped with the engine.
package catalogdata

import (
	"embed"
	"io/fs"
)

// Paths of the embedded documents, relative to FS.
const (
	PathwaysDir     = "pathways"
	SpecialtiesFile = "specialties.yaml"
	MilestonesFile  = "milestones.yaml"
)

//go:embed pathways/*.yaml specialties.yaml milestones.yaml
var files embed.FS

// FS returns the embedded catalog files.
func FS() fs.FS {
	return files
}
