// Public domain.

// Package pull reads pull distributions from CSV files and renders them
// as histograms against the unit normal distribution.
//
// A pull is (fitted value - true value) / estimated uncertainty.  Over
// repeated trials pulls of an unbiased fit with correct errors follow
// the unit normal distribution.
package pull

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ErrorLog receives the list of available columns when a requested column
// is missing.  It is standard output, where the list is read along with
// the program's other output.
var ErrorLog io.Writer = os.Stdout

// NameError reports a column name not present in the header row.
type NameError struct {
	Name    string
	Headers []string
}

func (e *NameError) Error() string {
	return fmt.Sprintf("parameter %q not found", e.Name)
}

// ReadPull reads comma delimited records from r.  The first record names
// the columns.  The values of the column named parname are returned as
// float64s, one per data record, in record order.
//
// If no column is named parname, the available names are listed on
// ErrorLog and a *NameError is returned.
func ReadPull(r io.Reader, parname string) ([]float64, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	header, err := cr.Read()
	if err == io.EOF {
		return []float64{}, nil
	}
	if err != nil {
		return nil, err
	}
	index := -1
	for i, h := range header {
		if h == parname {
			index = i
			break
		}
	}
	if index < 0 {
		fmt.Fprintf(ErrorLog, "ERROR: Parameter \"%s\" not found in list:\n", parname)
		for _, h := range header {
			fmt.Fprintf(ErrorLog, "       \"%s\"\n", h)
		}
		return nil, &NameError{Name: parname, Headers: header}
	}
	values := []float64{}
	for row := 2; ; row++ {
		rec, err := cr.Read()
		if err == io.EOF {
			return values, nil
		}
		if err != nil {
			return nil, err
		}
		if index >= len(rec) {
			return nil, fmt.Errorf("row %d: no column %q", row, parname)
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(rec[index]), 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", row, err)
		}
		values = append(values, v)
	}
}

// ReadPullFile reads the column parname from the CSV file filename.
func ReadPullFile(filename, parname string) ([]float64, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadPull(f, parname)
}
