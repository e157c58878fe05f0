package model

import (
	"fmt"

	"github.com/gobwas/glob"
)

// Package is a named container of classes and type aliases. The emit
// flag marks packages that are part of the modeled API, as opposed to
// packages that are merely referenced.
type Package struct {
	name    string
	emit    bool
	classes []*ClassItem
	aliases []*TypeAlias
}

func (p *Package) Name() string { return p.name }
func (p *Package) Emit() bool { return p.emit }
func (p *Package) SetEmit(emit bool) { p.emit = emit }
func (p *Package) Classes() []*ClassItem { return p.classes }
func (p *Package) TypeAliases() []*TypeAlias {
	return p.aliases
}

func (p *Package) AddTypeAlias(a *TypeAlias) {
	p.aliases = append(p.aliases, a)
}

func (p *Package) hasCommandLineClasses() bool {
	for _, c := range p.classes {
		if c.origin == OriginCommandLine {
			return true
		}
	}
	return false
}

// TypeAlias is a named alias for a type, as produced by Kotlin-shaped
// inputs. Aliases are carried per package and have no members.
type TypeAlias struct {
	Name      string
	Aliased   TypeItem
	Modifiers Modifiers
}

// PackageFilter decides which packages emit as part of the API.
// Patterns are glob-matched against fully qualified package names
// with '.' as the separator, e.g. "android.util.*".
type PackageFilter struct {
	patterns []string
	globs    []glob.Glob
}

func NewPackageFilter(patterns ...string) (*PackageFilter, error) {
	f := &PackageFilter{patterns: patterns}
	for _, pattern := range patterns {
		g, err := glob.Compile(pattern, '.')
		if err != nil {
			return nil, fmt.Errorf("compile package pattern %q: %w", pattern, err)
		}
		f.globs = append(f.globs, g)
	}
	return f, nil
}

func (f *PackageFilter) Match(packageName string) bool {
	for _, g := range f.globs {
		if g.Match(packageName) {
			return true
		}
	}
	return false
}

func (f *PackageFilter) Patterns() []string { return f.patterns }
