// Package profile provides optional runtime profiling for envmn.
//
// Profiling wraps [github.com/pkg/profile] and is compiled in only with the
// "pprof" build tag:
//
//	go build -tags pprof -o envmn .
//
// Without the tag every [Profiler] is a no-op, [Modes] is empty, and the
// pprof dependency is not linked.
//
// # Modes
//
//   - allocs, heap, mem: memory profiling
//   - block, mutex:      contention profiling
//   - clock, cpu:        wall-clock and CPU profiling
//   - goroutine, thread: goroutine and thread creation profiling
//   - trace:             execution trace
//
// # Usage
//
//	p := profile.New(profile.WithMode("cpu"), profile.WithPath("/tmp/prof"))
//	defer p.Start().Stop()
//
// From the command line:
//
//	envmn --pprof-mode=cpu --pprof-dir=./profiles lint .env
//	go tool pprof -http=: ./profiles/cpu.pprof
package profile
