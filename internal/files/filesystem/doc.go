// Package filesystem provides filesystem abstraction interfaces and implementations.
//
// This package defines the operations picview needs from a filesystem, enabling
// testability through in-memory implementations while maintaining compatibility
// with the OS filesystem.
//
// Key types:
//   - FileSystemProvider: directory listing, metadata probes, reads and writes
//   - FileInfo / DirEntry: aliases for the io/fs types
//
// Implementations:
//   - OSFileSystem: Production implementation using OS filesystem
//   - MemoryFileSystem: In-memory implementation for testing, with injectable failures
package filesystem
