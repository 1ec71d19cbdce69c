package classify

// Package classify implements the batch pipeline: list the PNG files of one
// directory, run the transparency detector on each and copy the file into the
// transparent or opaque output directory. Files are processed one at a time.
