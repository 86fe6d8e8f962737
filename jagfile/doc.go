// Package jagfile provides access to the named byte blobs that sprite and
// image decoders read their input from.
//
// The primary implementation reads jag containers: a small table of
// (name hash, unpacked size, packed size) entries followed by the file
// bodies, where either the whole container or every individual body is a
// bzip2 stream with its "BZh1" header stripped. Loose directories and plain
// maps are also accepted wherever an Archive is needed.
package jagfile
