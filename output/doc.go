// Package output writes query rows in the formats of the seqcat command:
// JSON Lines, a JSON array, CSV and an aligned text table.
//
//	formatter, err := output.New("table", os.Stdout)
//	if err != nil {
//	    return err
//	}
//	if err := formatter.Format(rows); err != nil {
//	    return err
//	}
//
// CSV and table columns are the union of all row keys, sorted by name.
package output
