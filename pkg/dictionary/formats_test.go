package dictionary

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTable(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "counts.txt")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestValidateCountsFileAcceptsWellFormedTable(t *testing.T) {
	path := writeTable(t, "the\t1000\nand\t999\n")
	if err := ValidateCountsFile(path); err != nil {
		t.Fatalf("expected valid table, got: %v", err)
	}
}

func TestValidateCountsFileRejectsMissingTab(t *testing.T) {
	path := writeTable(t, "the 1000\n")
	if err := ValidateCountsFile(path); err == nil {
		t.Fatal("expected error for line without tab separator")
	}
}

func TestValidateCountsFileRejectsNonIntegerScore(t *testing.T) {
	path := writeTable(t, "the\tlots\n")
	if err := ValidateCountsFile(path); err == nil {
		t.Fatal("expected error for non-integer score")
	}
}

func TestValidateCountsFileRejectsEmptyFile(t *testing.T) {
	path := writeTable(t, "\n\n")
	if err := ValidateCountsFile(path); err == nil {
		t.Fatal("expected error for file with no usable entries")
	}
}
