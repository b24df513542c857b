/*
Command pullhist displays the pull histogram of a fit parameter.

  Usage: pullhist [options] filename parname [bins]
    -o="": output image file (default <parname>.png)
    -v=false: display version and copyright

Filename is a comma separated file with one row per trial, such as one
written by cspull.  The first row names the columns.  Parname selects the
column to histogram.  If no column has this name, the available names are
listed and the program terminates.  With fewer than two arguments the
usage is printed.

Values are histogrammed into bins equal bins (default 50) over the range
-4 to 4 and normalized as a probability density.  The unit normal density
is drawn over the histogram.  For a fit with unbiased values and correct
errors the two should agree.

The plot title and axis label use parname without its final character.
The image format follows the extension of the -o file name: png, svg, pdf
or eps.

The program also prints the number of values with their mean and standard
deviation, which should be near 0 and 1.

-------------
Public domain.
*/
package main
