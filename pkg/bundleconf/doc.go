// Package bundleconf persists per-bundle configuration inside the project.
//
// Every bundle type has at most one config file under the IDE directory:
//
//	.prebuild/bundles/ide.bundle.std.JPHPCoreBundle.conf
//
// The file name is the type identifier with namespace separators replaced by
// dots. The content is a Java-style properties file; the reserved key "env"
// records the environment the bundle is registered under, and the remaining
// keys belong to the bundle's own OnSave/OnLoad hooks.
//
// Loading is lenient: files for unknown types and files that do not parse
// are skipped and logged at debug level. Only bundle hook failures are
// reported to the caller.
package bundleconf
