// Package core is the minimal build runtime surfaces run on.
//
// A [BuildOwner] collects dirty [Buildable] values and rebuilds them on
// [BuildOwner.FlushBuild], then runs post-frame callbacks. A surface embeds
// [StateBase] to mark itself dirty through SetState and to register
// disposers, and keeps its configuration in [Managed] values so every
// mutation schedules a rebuild before the next paint.
//
// The runtime is single-threaded: all of it must be driven from the UI thread.
package core
