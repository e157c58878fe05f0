package model

import (
	"fmt"
	"strings"

	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("apimodel")

// Codebase owns every Package and ClassItem reachable from one
// analyzed input, identity-keyed by qualified name: exactly one
// ClassItem per qualified name. A Codebase is built and queried by a
// single goroutine; once its classes are frozen the graph is safe for
// concurrent readers.
type Codebase struct {
	description string

	// fromSource marks a codebase built from primary source input,
	// as opposed to one reconstructed from a signature file. Some
	// operations are only representable in source form.
	fromSource bool

	filter *PackageFilter

	packages     map[string]*Package
	packageOrder []*Package
	classes      map[string]*ClassItem
	classOrder   []*ClassItem
}

type CodebaseOption func(*Codebase)

// WithSourceFidelity marks the codebase as built from primary source
// input rather than a signature file.
func WithSourceFidelity() CodebaseOption {
	return func(cb *Codebase) { cb.fromSource = true }
}

// WithPackageFilter installs the emit policy applied to every package
// as it is created.
func WithPackageFilter(f *PackageFilter) CodebaseOption {
	return func(cb *Codebase) { cb.filter = f }
}

func NewCodebase(description string, opts ...CodebaseOption) *Codebase {
	cb := &Codebase{
		description: description,
		packages:    make(map[string]*Package),
		classes:     make(map[string]*ClassItem),
	}
	for _, opt := range opts {
		opt(cb)
	}
	return cb
}

func (cb *Codebase) Description() string { return cb.description }
func (cb *Codebase) FromSource() bool { return cb.fromSource }
func (cb *Codebase) Packages() []*Package { return cb.packageOrder }
func (cb *Codebase) AllClasses() []*ClassItem { return cb.classOrder }

// FindClass returns the class registered under the qualified name, or
// nil. Absence is not an error: partial classpaths are expected.
func (cb *Codebase) FindClass(qualifiedName string) *ClassItem {
	return cb.classes[qualifiedName]
}

// FindOrCreatePackage returns the package with the given name,
// creating it with the emit policy of the codebase's filter if it
// does not exist yet.
func (cb *Codebase) FindOrCreatePackage(name string) *Package {
	if pkg, ok := cb.packages[name]; ok {
		return pkg
	}
	pkg := &Package{name: name, emit: true}
	if cb.filter != nil {
		pkg.emit = cb.filter.Match(name)
	}
	cb.packages[name] = pkg
	cb.packageOrder = append(cb.packageOrder, pkg)
	return pkg
}

// NewClass creates and registers a class. The qualified name must be
// unused; the owning package is derived from the name.
func (cb *Codebase) NewClass(qualifiedName string, kind ClassKind, origin Origin) (*ClassItem, error) {
	if _, ok := cb.classes[qualifiedName]; ok {
		return nil, fmt.Errorf("%w: %s", ErrDuplicateClass, qualifiedName)
	}
	pkgName, simpleName := splitQualifiedName(qualifiedName)
	pkg := cb.FindOrCreatePackage(pkgName)
	// Absent a configured filter, emit follows origin regardless of
	// registration order: a package emits iff it holds a command-line
	// class, so classpath classes never stomp an API package.
	if cb.filter == nil {
		switch origin {
		case OriginCommandLine:
			pkg.emit = true
		case OriginClassPath:
			if !pkg.hasCommandLineClasses() {
				pkg.emit = false
			}
		}
	}
	cls := &ClassItem{
		codebase:      cb,
		qualifiedName: qualifiedName,
		simpleName:    simpleName,
		kind:          kind,
		origin:        origin,
		pkg:           pkg,
	}
	cb.classes[qualifiedName] = cls
	cb.classOrder = append(cb.classOrder, cls)
	pkg.classes = append(pkg.classes, cls)
	log.Debugf("registered %s %s (%s)", kind, qualifiedName, origin)
	return cls, nil
}

// FreezeAll freezes every class in the codebase.
func (cb *Codebase) FreezeAll() {
	for _, cls := range cb.classOrder {
		cls.Freeze()
	}
}

// ErasedClass resolves the erasure of a type to its ClassItem.
// Unresolvable references, including primitives, resolve to nil
// rather than an error so partial models stay usable.
func (cb *Codebase) ErasedClass(t TypeItem) *ClassItem {
	switch ty := t.(type) {
	case *PrimitiveType:
		return nil
	case *ArrayType:
		return cb.ErasedClass(ty.Component)
	case *LambdaType:
		return cb.FindClass(ty.ClassType.Qualified)
	case *ClassType:
		return cb.FindClass(ty.Qualified)
	case *VariableType:
		if ty.Parameter == nil {
			return nil
		}
		return ty.Parameter.ErasedClass(cb)
	case *WildcardType:
		return cb.ErasedClass(ty.Extends)
	}
	return nil
}

func splitQualifiedName(qualifiedName string) (pkg, simple string) {
	// A nested class name like pkg.Outer.Inner splits at the last
	// lower-case-led segment boundary; plain names split at the last
	// dot.
	parts := strings.Split(qualifiedName, ".")
	for i, part := range parts {
		if len(part) > 0 && part[0] >= 'A' && part[0] <= 'Z' {
			return strings.Join(parts[:i], "."), strings.Join(parts[i:], ".")
		}
	}
	if len(parts) > 1 {
		return strings.Join(parts[:len(parts)-1], "."), parts[len(parts)-1]
	}
	return "", qualifiedName
}
