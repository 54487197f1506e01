// Package ugrid reads and writes AFLR UGRID unstructured mesh files.
//
// The format stores points, surface elements (triangles, quads) with
// integer boundary tags, and volume elements (tetrahedra, pyramids,
// wedges, hexahedra). Vertex indices are one-based on disk and
// zero-based in memory.
//
// Eleven on-disk variants are supported, selected by the token before
// the final filename suffix (mesh.lb8.ugrid): ASCII text, six C-style
// binary encodings covering 4/8-byte floats, 4/8-byte integers and both
// byte orders, and four Fortran-style binary encodings whose records are
// bracketed by 4-byte length marks. An absent or unrecognized token
// means ASCII.
//
// Format references:
//
//   - https://www.simcenter.msstate.edu/software/documentation/ug_io/3d_grid_file_type_ugrid.html
//   - https://www.simcenter.msstate.edu/software/documentation/ug_io/ugc_file_formats.html
package ugrid
