// Package cli implements the png-sorter command line: the batch classifier
// invoked with an input directory, and the license subcommands.
//
// The desktop build passes a GUI launcher that runs when no input directory
// is given; the headless build leaves it nil and prints help instead.
package cli
