package fetch

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestHTTP_Fetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("expected GET, but got %s", r.Method)
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("Entity,Year\nChad,2000\n"))
	}))
	defer server.Close()

	var buf bytes.Buffer
	err := NewHTTP(server.URL, NewClient(time.Second)).Fetch(context.Background(), &buf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if buf.String() != "Entity,Year\nChad,2000\n" {
		t.Errorf("unexpected body %q", buf.String())
	}
}

func TestHTTP_Fetch_Status(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	var buf bytes.Buffer
	err := NewHTTP(server.URL, NewClient(time.Second)).Fetch(context.Background(), &buf)
	if err == nil {
		t.Fatal("expected error, but got nil")
	}
	if buf.Len() != 0 {
		t.Errorf("expected nothing written, but got %q", buf.String())
	}
}

func TestHTTP_Fetch_WithTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(100 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	var buf bytes.Buffer
	err := NewHTTP(server.URL, NewClient(50*time.Millisecond)).Fetch(context.Background(), &buf)
	if err == nil {
		t.Fatal("expected timeout error, but got nil")
	}
}

func TestNew(t *testing.T) {
	f, err := New("https://example.com/data.csv", time.Second)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := f.(*HTTP); !ok {
		t.Errorf("expected *HTTP, but got %T", f)
	}

	f, err = New("s3://bucket/datasets/tfp.csv", time.Second)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s, ok := f.(*S3)
	if !ok {
		t.Fatalf("expected *S3, but got %T", f)
	}
	if s.bucket != "bucket" || s.key != "datasets/tfp.csv" {
		t.Errorf("unexpected bucket/key %s/%s", s.bucket, s.key)
	}

	if _, err := New("ftp://example.com/data.csv", time.Second); err == nil {
		t.Error("expected error for ftp scheme, but got nil")
	}
}

func TestParseS3URL(t *testing.T) {
	tests := []struct {
		in      string
		bucket  string
		key     string
		wantErr bool
	}{
		{in: "s3://b/k.csv", bucket: "b", key: "k.csv"},
		{in: "s3://b/dir/k.csv", bucket: "b", key: "dir/k.csv"},
		{in: "s3://b", wantErr: true},
		{in: "s3:///k.csv", wantErr: true},
		{in: "https://b/k.csv", wantErr: true},
	}
	for _, tt := range tests {
		bucket, key, err := ParseS3URL(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("%s: expected error, but got nil", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("%s: unexpected error: %v", tt.in, err)
			continue
		}
		if bucket != tt.bucket || key != tt.key {
			t.Errorf("%s: expected %s/%s, but got %s/%s", tt.in, tt.bucket, tt.key, bucket, key)
		}
	}
}
