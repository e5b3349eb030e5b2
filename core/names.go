package core

import "regexp"

// nameRE is the lexical rule shared by file names and branch names:
// start with an alphanumeric, followed by any run of alphanumerics,
// '.', '_' or '-'. No path separators are ever valid.
var nameRE = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]*$`)

// ReservedFileName is the sentinel name that denotes a commit's message
// inside a commit's file set; it can never be a real, user-addable file.
const ReservedFileName = "_MESSAGE"

// ValidateFileName reports whether name is a legal tracked file name.
func ValidateFileName(name string) error {
	if name == ReservedFileName {
		return &InvalidNameError{Name: name, Reason: "reserved name"}
	}
	if !nameRE.MatchString(name) {
		return &InvalidNameError{Name: name, Reason: "must match " + nameRE.String()}
	}
	return nil
}

// ValidateBranchName reports whether name is a legal branch name. Branch
// names share the exact lexical rule used for file names.
func ValidateBranchName(name string) error {
	if !nameRE.MatchString(name) {
		return &InvalidNameError{Name: name, Reason: "must match " + nameRE.String()}
	}
	return nil
}
