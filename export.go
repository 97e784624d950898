package client

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// customerCSVHeader is the column order of the customer export.
var customerCSVHeader = []string{
	"id", "firstname", "lastname", "streetaddress", "postcode", "city", "email", "phone",
}

// ExportCustomersCSV writes customers as CSV, one row per record, with a
// header row. Records without a numeric id get one resolved from their
// self-link; failing that the id column is left empty.
func ExportCustomersCSV(w io.Writer, customers []Customer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(customerCSVHeader); err != nil {
		return fmt.Errorf("export customers: %w", err)
	}
	for _, c := range customers {
		id := ""
		if resolved := CustomerIdentity(c); resolved.HasID {
			id = strconv.FormatInt(resolved.NumericID, 10)
		}
		row := []string{
			id, c.Firstname, c.Lastname, c.StreetAddress, c.Postcode, c.City, c.Email, c.Phone,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("export customers: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}
