package digest_test

import (
	"os"
	"path/filepath"
	"testing"

	"critiplot/internal/digest"
)

func TestSumEmpty(t *testing.T) {
	const want = "0e5751c026e543b2e8ab2eb06099daa1d1e5df47778f7787faab45cdf12fe3a8"
	if got := digest.Sum(nil); got != want {
		t.Fatalf("Sum(nil) = %s, want %s", got, want)
	}
}

func TestFingerprintIsPrefix(t *testing.T) {
	b := []byte("ROBIS_TrafficLight.svg")
	fp := digest.Fingerprint(b)
	if len(fp) != 2*digest.FingerprintBytes {
		t.Fatalf("fingerprint length = %d", len(fp))
	}
	if sum := digest.Sum(b); sum[:len(fp)] != fp {
		t.Fatalf("fingerprint %s is not a prefix of %s", fp, sum)
	}
}

func TestFileMatchesSum(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.bin")
	data := []byte("traffic light")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	got, err := digest.File(path)
	if err != nil {
		t.Fatalf("File: %v", err)
	}
	if want := digest.Sum(data); got != want {
		t.Fatalf("File = %s, want %s", got, want)
	}
	if _, err := digest.File(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
