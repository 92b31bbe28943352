// Package profile provides optional runtime profiling built on
// [github.com/pkg/profile].
//
// Profiling is gated behind the "pprof" build tag. Without the tag every
// operation is a no-op with zero overhead, so command-line wiring can stay
// unconditional:
//
//	stop := profile.Config(flags).Start()
//	defer stop.Stop()
//
// With the tag, the mode names accepted by [Config] are listed by [Modes]
// (cpu, heap, allocs, mutex, trace, ...), and profile files are written to
// the configured output directory with names matching the mode, such as
// cpu.pprof. Analyze them with:
//
//	go tool pprof ./formula /path/to/cpu.pprof
package profile

// Tag is the build tag required to enable pprof profiling.
const Tag = `pprof`
