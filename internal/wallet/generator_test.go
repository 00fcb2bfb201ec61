package wallet

import (
	"bytes"
	"os"
	"strings"
	"testing"

	klog "github.com/odyssey-tools/devwallet/internal/log"
)

func TestNewGenerator(t *testing.T) {
	g, err := NewGenerator(0)
	if err != nil {
		t.Fatalf("NewGenerator(0) error: %v", err)
	}
	if g.EntropyBits() != DefaultMnemonicEntropyBits {
		t.Errorf("EntropyBits() = %d, want %d", g.EntropyBits(), DefaultMnemonicEntropyBits)
	}

	if _, err := NewGenerator(100); err == nil {
		t.Error("NewGenerator(100) should fail")
	}
}

func TestGenerator_Generate(t *testing.T) {
	tests := []struct {
		bits  int
		words int
	}{
		{MnemonicEntropyBits12, 12},
		{MnemonicEntropyBits24, 24},
	}

	for _, tt := range tests {
		g, err := NewGenerator(tt.bits)
		if err != nil {
			t.Fatalf("NewGenerator(%d) error: %v", tt.bits, err)
		}
		r, err := g.Generate()
		if err != nil {
			t.Fatalf("Generate() error: %v", err)
		}

		if r.WordCount() != tt.words {
			t.Errorf("word count = %d, want %d", r.WordCount(), tt.words)
		}
		if err := r.Validate(); err != nil {
			t.Errorf("generated record invalid: %v", err)
		}
		if err := VerifyRecord(r); err != nil {
			t.Errorf("generated record does not derive from its mnemonic: %v", err)
		}
	}
}

func TestGenerator_Unique(t *testing.T) {
	g, _ := NewGenerator(0)
	seen := make(map[string]bool)
	for i := 0; i < 5; i++ {
		r, err := g.Generate()
		if err != nil {
			t.Fatalf("Generate() error: %v", err)
		}
		if seen[r.Address] {
			t.Fatalf("address %s generated twice", r.Address)
		}
		seen[r.Address] = true
	}
}

func TestGenerator_WithRand(t *testing.T) {
	g, _ := NewGenerator(MnemonicEntropyBits12)
	fixed := g.WithRand(bytes.NewReader(make([]byte, 16)))

	r, err := fixed.Generate()
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	if r.Mnemonic != testMnemonic12 || r.Address != testAddress12 || r.PrivateKey != testPrivateKey12 {
		t.Errorf("Generate() = %+v, want the zero-entropy vector", r)
	}

	// The original generator keeps using crypto/rand.
	if g.rand != nil {
		t.Error("WithRand() should not modify the receiver")
	}
}

func TestGenerator_Logs(t *testing.T) {
	var buf bytes.Buffer
	klog.SetOutput(&buf, "debug")
	t.Cleanup(func() { klog.SetOutput(os.Stderr, "warn") })

	g, _ := NewGenerator(0)
	r, err := g.Generate()
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, `"component":"wallet"`) || !strings.Contains(out, r.Address) {
		t.Errorf("log output missing wallet entry: %q", out)
	}
	if strings.Contains(out, r.PrivateKey) {
		t.Error("private key must not be logged")
	}
}
