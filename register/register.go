// Package register exists purely for its import side effects: importing
// it runs every ecosystem package's init(), populating the parser
// registry. Anything that needs the full registry (the CLI, integration
// tests) blank-imports this package rather than listing each ecosystem
// package directly.
package register

import (
	_ "github.com/quay/packagedcode/alpine"
	_ "github.com/quay/packagedcode/bazel"
	_ "github.com/quay/packagedcode/cargo"
	_ "github.com/quay/packagedcode/chef"
	_ "github.com/quay/packagedcode/cocoapods"
	_ "github.com/quay/packagedcode/composer"
	_ "github.com/quay/packagedcode/conan"
	_ "github.com/quay/packagedcode/dart"
	_ "github.com/quay/packagedcode/debian"
	_ "github.com/quay/packagedcode/gomod"
	_ "github.com/quay/packagedcode/gradle"
	_ "github.com/quay/packagedcode/haxe"
	_ "github.com/quay/packagedcode/maven"
	_ "github.com/quay/packagedcode/npm"
	_ "github.com/quay/packagedcode/nuget"
	_ "github.com/quay/packagedcode/pnpm"
	_ "github.com/quay/packagedcode/pypi"
	_ "github.com/quay/packagedcode/readme"
	_ "github.com/quay/packagedcode/rpm"
	_ "github.com/quay/packagedcode/rubygems"
	_ "github.com/quay/packagedcode/swiftpm"
)
