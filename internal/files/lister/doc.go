// Package lister surfaces the browsable entries of a single directory.
//
// A listing contains every immediate subdirectory and the files whose
// extension marks them as a supported image. Directories come first, then
// files, each group in natural order of the full path.
//
// Listing is a browsing action, so it never fails: a directory that cannot be
// read yields an empty result, and an entry whose metadata cannot be probed is
// left out. Content is never inspected here; extension matching is the fast
// heuristic and the image loader does the real classification.
package lister
