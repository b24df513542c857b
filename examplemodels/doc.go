/*
Command examplemodels performs unbinned maximum likelihood analyses for a
variety of source models.  This allows checking the models.

For each model the program simulates events with ctobssim, selects events
with ctselect and fits the model with ctlike, then prints the fitted
parameters of the first model in the fit results.  The ctools executables
must be on PATH or in the directory given by the bindir setting.

  Usage: examplemodels [OPTIONS]
       -h                  Display this usage message
       -noshow             Do not show data
       -v                  Display version and copyright
       -c <config-file>    Analysis configuration
       -p <path>           Data path (default "data")
       -y <results-file>   Write fit results as YAML

By default the models data/crab.xml, data/disk.xml, data/gauss.xml and
data/shell.xml are analysed.  Unless -noshow is given, a bar chart of the
maximum log likelihood of each fit is written to examplemodels.png.

Analysis parameters

  caldb      irf
  irf        cta_dummy_irf
  ra         83.63     pointing and selection center, degrees
  dec        22.01
  radsim     10        simulation radius, degrees
  radselect  3         selection radius, degrees
  tmin       0         seconds
  tmax       1800
  emin       0.1       TeV
  emax       100

Configuration file

The file examplemodels.config in the data path, or the file given with -c,
can change these.  Empty lines and lines beginning with # are ignored.
Other lines hold a keyword, a setting, or a model file name.

Keywords:

   repeatable   use the same simulation seed for every model
   random       draw simulation seeds at random (default)
   keep         keep work directories
   nokeep
   verbose      show tool output, fit statistics and timing
   quiet

Settings are written name = value, white space optional, for the
parameters above and also for

   seed      simulation seed used with repeatable, default 1
   chatter   ctools chatter level, default 2
   bindir    directory holding the ctools executables

Any line ending in .xml names a model file.  Model files listed in the
configuration replace the default list.  Example:

  # quick check of a single model
  repeatable
  seed = 3
  emin = 1
  crab.xml

-------------
Public domain.
*/
package main
