// Package phpsrc injects class imports into PHP source files.
//
// Only the file header is understood: the open tag, an optional namespace
// declaration, declare statements and the use declarations that follow. The
// first statement of any other kind ends the header. This is enough to merge
// new "use" declarations without disturbing the rest of the file.
//
// # Line preservation
//
// Debug builds map runtime line numbers back to source lines. With line
// preservation on, new declarations are appended to the physical line of the
// anchor statement (the last use, else the namespace, else the open tag), so
// every existing statement keeps its line number:
//
//	<?php namespace app\forms;        <?php namespace app\forms; use php\gui\UXButton;
//	                              ->
//	class MainForm {}                class MainForm {}
//
// Without it, each new declaration gets its own line after the anchor.
//
// [Rewriter] applies an import [Request] to every PHP file below a directory
// and records a content hash per file in a [cache.Cache], so files left
// untouched since the last run are not parsed again.
package phpsrc
