// Package par implements the composition primitives (C8) built on top of
// executor and task: ParallelFor partitions an index range into chunks run
// concurrently on an executor, ParallelSections runs a fixed list of
// closures concurrently, and WaitAll awaits a heterogeneous slice of
// task.Waitable values.
package par
