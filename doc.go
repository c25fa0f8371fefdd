// Package graffunc routes labeled data through a graph of converters.
//
// What is graffunc?
//
//	A converter is a function registered against the set of labels it reads
//	and the set of labels it writes. Given some known data and the labels
//	you want, graffunc finds a chain of converters that produces them and
//	runs it:
//		• Routing table: converters indexed by (inputs, outputs), in registration order
//		• Validation: malformed registrations are rejected, the table never changes
//		• Exploration: lazy fixed-point reachability over the label hypergraph
//		• Search: greedy by default, pruned and shortest as drop-in strategies
//		• Walk: executes a path, merging each converter's outputs into the data
//
// Packages:
//
//	core/      — Label, LabelSet, Data, Converter, Table and the typed errors
//	validate/  — structural checks over a Table
//	explore/   — reachability as an iter.Seq of emitted edges
//	search/    — Strategy interface with Greedy, Pruned and Shortest
//	walk/      — path execution
//	graph/     — the Graph facade: Add, Remove, Resolve, Convert, RoutingTable
//	catalog/   — ready-made unit converters (temperature, length, kinematics)
//	config/    — YAML configuration, zap logger and Graph construction
//	cmd/       — the graffunc CLI
//
// Quick example:
//
//	{celsius} ──c→f──▶ {fahrenheit} ──f→r──▶ {rankine}
//
//	g, _ := graph.New()
//	_ = catalog.Register(g, "temperature")
//	out, _ := g.Convert(core.Data{"celsius": 0.0}, core.NewLabelSet("rankine"))
//
//	go get github.com/katalvlaran/graffunc
package graffunc
