// Package lite provides lightweight channel-lifted helpers that wrap solo
// primitives for concurrent pipelines: fan-out over a fixed number of lines,
// fan-in to one channel.
//
// Common usage:
// - Run: execute an engine over an input channel with a fixed number of lines
// - Turnout: like Run, but the stage changes the value type
// - Validate/Switch/Map/Try/Tee/DoubleTee: lift solo operations over channels
// - Finally: map Result[In] to Out on completion
// - Collect: drain a result channel into thread-safe success/failure vectors
package lite
