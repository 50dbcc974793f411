// Package file opens pattern inputs for reading, memory-mapped via
// [mmapfile] when the platform allows it and through [os.File] otherwise.
//
// [File.Contents] gives the whole input at once, which is what line-oriented
// matching needs: zero-copy for mapped files, a single read for the fallback.
package file
