// Package packagedcode holds the data model shared by every ecosystem
// parser and by the assembler: [FileInfo], [PackageData], [Dependency],
// [Party], [FileReference], the assembled [Package] and
// [TopLevelDependency].
//
// Ecosystem-specific extraction lives in sibling packages (npm, cargo,
// gomod, debian, ...); text refinement lives in the refine package; PURL
// construction lives in the purl package; sibling-file fusion lives in the
// assembler package. This package only defines the records those
// subsystems pass around.
package packagedcode
