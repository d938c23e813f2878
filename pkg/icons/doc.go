// Package icons draws the extension toolbar icons.
//
// Every icon is the same layout scaled to a fixed size: a purple rounded
// square, three white text bars and a gold accent dot in the top right
// corner. Shapes use inclusive pixel bounding boxes and are painted opaque in
// order, without antialiasing.
//
// Render produces the raster image for one size. RenderSVG produces the same
// layout as an SVG document. Generate renders every size and writes
// icon-<size>.png (and optionally icon-<size>.svg) into a directory.
package icons
