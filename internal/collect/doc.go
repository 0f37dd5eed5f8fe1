// Package collect gathers C and C++ sources and headers from several
// directories into a single flat output directory.
//
// Input directories are visited in the order given. Within each one the
// fixed extensions h, hh, hpp, c, cc and cpp are matched in that order,
// one directory level deep, and every match is copied to the output
// directory under its base name. Files that share a base name overwrite
// each other, so the last input directory wins. The output directory is
// never cleared.
package collect
