package certstore

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestSafeObjectName(t *testing.T) {
	tests := []struct {
		in       string
		wantStem string
		wantExt  string
	}{
		{"certificate.pdf", "certificate", ".pdf"},
		{"My Cert (final).PDF", "my_cert__final_", ".PDF"},
		{"../../etc/passwd", "passwd", ""},
		{"résumé.png", "r_sum_", ".png"},
		{"UPPER.jpg", "upper", ".jpg"},
	}
	for _, test := range tests {
		t.Run(test.in, func(t *testing.T) {
			got := SafeObjectName(test.in)
			if !strings.HasSuffix(got, "_"+test.wantStem+test.wantExt) {
				t.Errorf("SafeObjectName(%q) = %q, want suffix %q", test.in, got, "_"+test.wantStem+test.wantExt)
			}
			if strings.Contains(got, "/") {
				t.Errorf("object name %q must not contain path separators", got)
			}
		})
	}
}

func TestClient_Upload(t *testing.T) {
	var gotPath, gotAuth, gotContentType string
	var gotBody []byte

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		gotContentType = r.Header.Get("Content-Type")
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := New(srv.URL, "test-key", "certificates")
	res, err := c.Upload([]byte("pdf-bytes"), "proof.pdf", "application/pdf")
	if err != nil {
		t.Fatalf("Upload failed: %v", err)
	}

	if !strings.HasPrefix(gotPath, "/storage/v1/object/certificates/") {
		t.Errorf("request path = %s, want bucket prefix", gotPath)
	}
	if gotAuth != "Bearer test-key" {
		t.Errorf("authorization = %q, want bearer key", gotAuth)
	}
	if gotContentType != "application/pdf" {
		t.Errorf("content type = %q, want application/pdf", gotContentType)
	}
	if string(gotBody) != "pdf-bytes" {
		t.Errorf("body = %q, want raw file bytes", gotBody)
	}
	if !strings.Contains(res.PublicURL, "/storage/v1/object/public/certificates/") {
		t.Errorf("public URL = %s, want public object path", res.PublicURL)
	}
	if !strings.HasSuffix(res.PublicURL, res.Path) {
		t.Errorf("public URL %s should end with object path %s", res.PublicURL, res.Path)
	}
}

func TestClient_UploadRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bucket not found", http.StatusNotFound)
	}))
	defer srv.Close()

	c := New(srv.URL, "test-key", "missing")
	if _, err := c.Upload([]byte("x"), "a.pdf", ""); err == nil {
		t.Error("expected error on non-2xx response")
	}
}
