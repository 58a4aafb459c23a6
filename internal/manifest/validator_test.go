package manifest

import "testing"

func TestValidateFile_Valid(t *testing.T) {
	result, err := ValidateFile(testPath("valid-package.json"))
	if err != nil {
		t.Fatalf("ValidateFile error: %v", err)
	}
	if !result.Valid {
		for _, issue := range result.Issues {
			t.Errorf("  path=%s keyword=%s message=%s", issue.Path, issue.Keyword, issue.Message)
		}
	}
}

func TestValidateFile_Invalid(t *testing.T) {
	tests := []struct {
		file     string
		wantPath string
	}{
		{"invalid-version.json", "/version"},
		{"invalid-builder.json", "/builder"},
		{"legacy-grunt.json", ""},
	}

	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			result, err := ValidateFile(testPath(tt.file))
			if err != nil {
				t.Fatalf("ValidateFile(%s) unexpected error: %v", tt.file, err)
			}
			if result.Valid {
				t.Fatalf("expected %s to be invalid", tt.file)
			}
			if len(result.Issues) == 0 {
				t.Fatalf("expected at least one issue for %s", tt.file)
			}
			if tt.wantPath == "" {
				return
			}
			found := false
			for _, issue := range result.Issues {
				if issue.Path == tt.wantPath {
					found = true
				}
			}
			if !found {
				t.Errorf("no issue reported at %s: %v", tt.wantPath, result.Issues)
			}
		})
	}
}

func TestValidate_MalformedJSON(t *testing.T) {
	if _, err := Validate([]byte(`{"name":`)); err == nil {
		t.Fatal("expected error for malformed JSON")
	}
}

func TestValidateFile_Missing(t *testing.T) {
	if _, err := ValidateFile(testPath("does-not-exist.json")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
