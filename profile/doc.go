// Package profile provides optional runtime profiling for the arith
// interpreter.
//
// # Overview
//
// This package integrates [github.com/pkg/profile] behind the "pprof" build
// tag. In a default build every operation is a no-op with zero overhead; a
// build tagged pprof enables file-based profiling and registers the
// [net/http/pprof] HTTP handlers.
//
// # Profiling Modes
//
// The following modes are supported when built with the pprof tag:
//
//   - allocs:    Memory allocation profiling (all allocations)
//   - block:     Block (synchronization) profiling
//   - clock:     Wall-clock profiling
//   - cpu:       CPU profiling
//   - goroutine: Goroutine profiling
//   - heap:      Heap memory profiling (live allocations)
//   - mem:       General memory profiling
//   - mutex:     Mutex contention profiling
//   - thread:    Thread creation profiling
//   - trace:     Execution trace profiling
//
// Use [Modes] to retrieve the list programmatically. In a default build the
// list is empty.
//
// # Usage
//
// A profiler is described by a [Config] function and started with
// [Config.Start]:
//
//	var cfg profile.Config = func() (string, string, bool) {
//	    return "cpu", "/tmp/profiles", false
//	}
//	defer cfg.Start().Stop()
//
// Profile files are written to the output directory with names matching the
// mode (cpu.pprof, mem.pprof, and so on).
//
// # Command-Line Usage
//
// The arith command exposes profiling through flags when built with the
// pprof tag:
//
//	# CPU profile, written to the default cache directory
//	arith --pprof-mode cpu script.ar
//
//	# Heap profile with a custom output directory
//	arith --pprof-mode heap --pprof-dir ./profiles script.ar
//
// The default output directory is:
//
//	$XDG_CACHE_HOME/arith/pprof   (Linux/Unix)
//	~/Library/Caches/arith/pprof  (macOS)
//	%LocalAppData%\arith\pprof    (Windows)
//
// # Analyzing Profile Data
//
// Use go tool pprof to inspect the written profiles:
//
//	go tool pprof ./arith /tmp/profiles/cpu.pprof
//	go tool pprof -http=: /tmp/profiles/cpu.pprof
//
// The web interface provides flame graphs, annotated source, and a diff mode
// for comparing two profiles (-base=old.pprof).
//
// # Performance Overhead
//
// CPU profiling costs roughly 5%. Heap profiling is sampled and close to
// free. Block, mutex, and trace profiling can add significant overhead and
// are best reserved for short runs.
//
// Adjust sampling rates using [runtime.SetBlockProfileRate],
// [runtime.SetMutexProfileFraction], and [runtime.MemProfileRate].
package profile

// Tag is the build tag required to enable pprof profiling.
const Tag = `pprof`
