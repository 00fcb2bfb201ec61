package types

import (
	"encoding/json"
	"strings"
	"testing"
)

const (
	testAddress    = "0x9858EfFD232B4033E47d90003D41EC34EcaEda94"
	testPrivateKey = "1ab42cc412b618bdea3a599e3c9bae199ebf030895b039e9db1e30dafb12b727"
	testMnemonic   = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"
)

func validRecord() WalletRecord {
	return WalletRecord{
		Address:    testAddress,
		PrivateKey: testPrivateKey,
		Mnemonic:   testMnemonic,
	}
}

func TestWalletRecord_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *WalletRecord)
		wantErr bool
	}{
		{"valid", func(r *WalletRecord) {}, false},
		{"lowercase address", func(r *WalletRecord) { r.Address = strings.ToLower(r.Address) }, false},
		{"missing address", func(r *WalletRecord) { r.Address = "" }, true},
		{"missing private key", func(r *WalletRecord) { r.PrivateKey = "" }, true},
		{"blank mnemonic", func(r *WalletRecord) { r.Mnemonic = "   " }, true},
		{"address without prefix", func(r *WalletRecord) { r.Address = r.Address[2:] }, true},
		{"short address", func(r *WalletRecord) { r.Address = "0x1234" }, true},
		{"short private key", func(r *WalletRecord) { r.PrivateKey = r.PrivateKey[:62] }, true},
		{"0x private key", func(r *WalletRecord) { r.PrivateKey = "0x" + r.PrivateKey[2:] }, true},
		{"non-hex private key", func(r *WalletRecord) { r.PrivateKey = strings.Repeat("zz", 32) }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := validRecord()
			tt.mutate(&r)
			err := r.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestWalletRecord_JSONFieldNames(t *testing.T) {
	data, err := json.Marshal(validRecord())
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}

	var fields map[string]string
	if err := json.Unmarshal(data, &fields); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}

	if len(fields) != 3 {
		t.Fatalf("field count = %d, want 3: %v", len(fields), fields)
	}
	for _, key := range []string{"address", "privateKey", "mnemonic"} {
		if _, ok := fields[key]; !ok {
			t.Errorf("missing JSON field %q", key)
		}
	}
}

func TestWalletRecord_WordCount(t *testing.T) {
	r := validRecord()
	if got := r.WordCount(); got != 12 {
		t.Errorf("WordCount() = %d, want 12", got)
	}
}
