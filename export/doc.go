// Package export writes sweep rows as the two-column numeric table handed to
// plotting tools:
//
//	p,largest_components
//	0,0.0111
//	0.5,0.4213
//	...
//
// The value column is named by the observable (observable.Selector.Column).
// WithStdErr appends a third "stderr" column. ReadCSV parses the same
// format back, tolerating the optional third column.
package export
