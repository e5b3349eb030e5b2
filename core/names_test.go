package core

import "testing"

func TestValidateFileName(t *testing.T) {
	valid := []string{"a.txt", "README", "file-name_1.2.go"}
	for _, name := range valid {
		if err := ValidateFileName(name); err != nil {
			t.Errorf("ValidateFileName(%q) = %v, want nil", name, err)
		}
	}

	invalid := []string{"", ".hidden", "a/b", "_MESSAGE"}
	for _, name := range invalid {
		if err := ValidateFileName(name); err == nil {
			t.Errorf("ValidateFileName(%q) = nil, want error", name)
		}
	}
}

func TestValidateBranchName(t *testing.T) {
	if err := ValidateBranchName("feature-1"); err != nil {
		t.Errorf("ValidateBranchName(feature-1) = %v, want nil", err)
	}
	if err := ValidateBranchName("bad/name"); err == nil {
		t.Errorf("ValidateBranchName(bad/name) = nil, want error")
	}
	// Leading underscore fails the shared lexical rule regardless of the
	// reserved-name check file names also apply.
	if err := ValidateBranchName("_MESSAGE"); err == nil {
		t.Errorf("ValidateBranchName(_MESSAGE) = nil, want error")
	}
}
