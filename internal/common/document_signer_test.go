package common

import (
	"testing"
	"time"
)

func TestSignDownloadRoundTrip(t *testing.T) {
	signer := NewDocumentSignerService([]byte("test-signing-key"))

	token, err := signer.SignDownload("takster", "WVWZZZ1KZAW000001_tuv_report.pdf", time.Hour)
	if err != nil {
		t.Fatalf("SignDownload failed: %v", err)
	}

	doc, err := signer.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken failed: %v", err)
	}
	if doc.Bucket != "takster" {
		t.Errorf("bucket = %q, want takster", doc.Bucket)
	}
	if doc.File != "WVWZZZ1KZAW000001_tuv_report.pdf" {
		t.Errorf("file = %q", doc.File)
	}
	if doc.TokenID == "" {
		t.Error("token id is empty")
	}
}

func TestValidateTokenRejectsExpired(t *testing.T) {
	signer := NewDocumentSignerService([]byte("test-signing-key"))

	token, err := signer.SignDownload("takster", "report.pdf", -time.Minute)
	if err != nil {
		t.Fatalf("SignDownload failed: %v", err)
	}

	if _, err := signer.ValidateToken(token); err == nil {
		t.Error("expired token passed validation")
	}
}

func TestValidateTokenRejectsWrongKey(t *testing.T) {
	issuer := NewDocumentSignerService([]byte("key-one"))
	verifier := NewDocumentSignerService([]byte("key-two"))

	token, err := issuer.SignDownload("takster", "report.pdf", time.Hour)
	if err != nil {
		t.Fatalf("SignDownload failed: %v", err)
	}

	if _, err := verifier.ValidateToken(token); err == nil {
		t.Error("token signed with a different key passed validation")
	}
}
