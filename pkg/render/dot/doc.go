// Package dot renders a resolved bundle set as a Graphviz diagram.
//
// Bundles appear as boxes and dependency edges as arrows from the dependent
// bundle to its dependency. Placeholders for unknown bundle types are drawn
// dashed.
//
//	set := resolver.ResolveAll(project.EnvDev)
//	src := dot.ToDOT(set, dot.Options{Detailed: true})
//	svg, err := dot.RenderSVG(src)
package dot
