// Package core contains pipeline plumbing: channel helpers, worker and
// cancellation options carried in a context, and the locomotive that drives
// one line of a stage. It defines no business logic; lite builds its
// pipelines on top of it.
package core
