package model

import "testing"

func TestItemInputDefaults(t *testing.T) {
	in := ItemInput{
		ItemName:        "  Widget  ",
		StorageLocation: "A1",
	}
	in.Normalize()

	if in.ItemName != "Widget" {
		t.Errorf("expected trimmed name 'Widget', got %q", in.ItemName)
	}
	if in.Status != StatusGood {
		t.Errorf("expected default status %q, got %q", StatusGood, in.Status)
	}
	if in.Quantity != 0 {
		t.Errorf("expected default quantity 0, got %d", in.Quantity)
	}
	if in.Image != "" {
		t.Errorf("expected default image '', got %q", in.Image)
	}

	if err := in.Validate(); err != nil {
		t.Errorf("expected valid input, got %v", err)
	}
}

func TestItemInputValidate(t *testing.T) {
	tests := []struct {
		name    string
		input   ItemInput
		wantErr bool
	}{
		{"valid", ItemInput{ItemName: "Widget", Quantity: 10, StorageLocation: "A1", Status: StatusGood}, false},
		{"missing name", ItemInput{StorageLocation: "A1", Status: StatusGood}, true},
		{"whitespace name", ItemInput{ItemName: "   ", StorageLocation: "A1", Status: StatusGood}, true},
		{"missing location", ItemInput{ItemName: "Widget", Status: StatusGood}, true},
		{"negative quantity", ItemInput{ItemName: "Widget", Quantity: -1, StorageLocation: "A1", Status: StatusGood}, true},
		{"unknown status", ItemInput{ItemName: "Widget", StorageLocation: "A1", Status: "Broken"}, true},
		{"low stock", ItemInput{ItemName: "Widget", StorageLocation: "A1", Status: StatusLowStock}, false},
		{"expired", ItemInput{ItemName: "Widget", StorageLocation: "A1", Status: StatusExpired}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := tt.input
			in.Normalize()
			err := in.Validate()
			if tt.wantErr && err == nil {
				t.Error("expected validation error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("expected valid input, got %v", err)
			}
		})
	}
}

func TestValidStatus(t *testing.T) {
	for _, s := range []string{StatusGood, StatusLowStock, StatusOutOfStock, StatusExpired} {
		if !ValidStatus(s) {
			t.Errorf("expected %q to be valid", s)
		}
	}
	for _, s := range []string{"", "good", "Unknown"} {
		if ValidStatus(s) {
			t.Errorf("expected %q to be invalid", s)
		}
	}
}
