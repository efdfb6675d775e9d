package sparql2html

import (
	"errors"
	"reflect"
	"testing"
)

// ---------------------------------------------------------------------------
// TestColumns - Column variable validation
// ---------------------------------------------------------------------------

func TestColumns_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		columns Columns
		wantErr bool
	}{
		{"defaults", DefaultColumns(), false},
		{"custom", Columns{Link: "uri", Text: "label", Description: "comment"}, false},
		{"empty link", Columns{Text: "label", Description: "comment"}, true},
		{"empty text", Columns{Link: "uri", Description: "comment"}, true},
		{"whitespace description", Columns{Link: "uri", Text: "label", Description: "\t"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.columns.Validate()
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidColumns) {
					t.Errorf("Validate() = %v, want ErrInvalidColumns", err)
				}
				return
			}
			if err != nil {
				t.Errorf("Validate() unexpected error: %v", err)
			}
		})
	}
}

func TestColumns_Vars(t *testing.T) {
	t.Parallel()

	got := DefaultColumns().Vars()
	want := []string{"homepage", "name", "description"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Vars() = %v, want %v", got, want)
	}
}

// ---------------------------------------------------------------------------
// TestHeaders - Header label validation
// ---------------------------------------------------------------------------

func TestHeaders_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		headers Headers
		wantErr bool
	}{
		{"defaults", DefaultHeaders(), false},
		{"empty labels allowed", Headers{}, false},
		{"newline", Headers{Text: "a\nb", Description: "c"}, true},
		{"carriage return", Headers{Text: "a", Description: "c\r"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.headers.Validate()
			if tt.wantErr != errors.Is(err, ErrInvalidHeaders) {
				t.Errorf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
