package types

import "testing"

func TestCustomerFormValidate(t *testing.T) {
	t.Parallel()
	if err := (CustomerForm{Firstname: "Ada", Lastname: "Lovelace"}).Validate(); err != nil {
		t.Fatalf("valid form: %v", err)
	}
	if err := (CustomerForm{Firstname: "  ", Lastname: "Lovelace"}).Validate(); err == nil {
		t.Fatal("expected error for blank firstname")
	}
}

func TestTrainingFormValidate(t *testing.T) {
	t.Parallel()
	valid := TrainingForm{Date: "2024-06-01T10:00", Activity: "Run", Duration: 30, Customer: "http://api.test/customers/1"}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid form: %v", err)
	}
	for _, f := range []TrainingForm{
		{Activity: "Run", Customer: "x"},
		{Date: "2024-06-01", Customer: "x"},
		{Date: "2024-06-01", Activity: "Run"},
	} {
		if err := f.Validate(); err == nil {
			t.Fatalf("expected error for %+v", f)
		}
	}
}
