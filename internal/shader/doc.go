// Package shader implements the shader build step: it runs an external
// GLSL compiler (glslangValidator or a compatible binary) over every
// *.glsl file in a directory and asks it to emit a C header per shader.
//
// The compiler is invoked once per file, sequentially, as
//
//	<compiler> -V <dir>/<name>.glsl --vn k<name>_glsl_ -o <out>/<name>.glsl.h
//
// where the --vn symbol is the file's base name with every "." replaced
// by "_" and prefixed with "k". The first compiler failure stops the
// build, and its exit code becomes the exit code of the whole step.
// The layout of the generated header is entirely up to the compiler.
package shader
