package client

import (
	"strings"
	"testing"
)

func TestExportCustomersCSV(t *testing.T) {
	t.Parallel()
	customers := []Customer{
		{ID: 1, Firstname: "Ada", Lastname: "Lovelace", City: "Helsinki", Email: "ada@example.com"},
		{Firstname: "Alan", Lastname: "Turing",
			Links: Links{"self": Link{Href: "http://api.test/api/customers/2"}}},
	}

	var sb strings.Builder
	if err := ExportCustomersCSV(&sb, customers); err != nil {
		t.Fatalf("export: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(sb.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("lines: %q", lines)
	}
	if lines[0] != "id,firstname,lastname,streetaddress,postcode,city,email,phone" {
		t.Fatalf("header: %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "1,Ada,Lovelace") {
		t.Fatalf("row 1: %q", lines[1])
	}
	// id resolved out of the self-link
	if !strings.HasPrefix(lines[2], "2,Alan,Turing") {
		t.Fatalf("row 2: %q", lines[2])
	}
}

func TestExportCustomersCSV_Empty(t *testing.T) {
	t.Parallel()
	var sb strings.Builder
	if err := ExportCustomersCSV(&sb, nil); err != nil {
		t.Fatalf("export: %v", err)
	}
	if strings.TrimSpace(sb.String()) != "id,firstname,lastname,streetaddress,postcode,city,email,phone" {
		t.Fatalf("got %q", sb.String())
	}
}
