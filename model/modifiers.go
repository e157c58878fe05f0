package model

type Visibility string

const (
	VisibilityPublic    Visibility = "public"
	VisibilityProtected Visibility = "protected"
	VisibilityPrivate   Visibility = "private"
	VisibilityPackage   Visibility = "package"
)

type ClassKind string

const (
	ClassKindClass      ClassKind = "class"
	ClassKindInterface  ClassKind = "interface"
	ClassKindEnum       ClassKind = "enum"
	ClassKindAnnotation ClassKind = "annotation"
)

// Origin records where a class came from: the primary input, the
// classpath, or the source path.
type Origin string

const (
	OriginCommandLine Origin = "command-line"
	OriginClassPath   Origin = "class-path"
	OriginSourcePath  Origin = "source-path"
)

// Modifiers is a plain value; copies are independent.
type Modifiers struct {
	Visibility   Visibility
	Static       bool
	Final        bool
	Abstract     bool
	Default      bool
	Synchronized bool
	Native       bool
	Deprecated   bool

	// OriginallyDeprecated is set when the declaration itself carried
	// the deprecation, as opposed to inheriting it from its container.
	OriginallyDeprecated bool
}
