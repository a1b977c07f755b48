package sftpclient

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestUploadFileValidation(t *testing.T) {
	// Define constants for repeated values
	const (
		testHost = "127.0.0.1"
		testUser = "test-user"
		testPass = "test-pass"
		testFile = "report.csv"
	)

	existing := filepath.Join(t.TempDir(), testFile)
	if err := os.WriteFile(existing, []byte("COURSE\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	testCases := []struct {
		name          string
		cfg           Config
		localPath     string
		errorContains string
	}{
		{
			name:          "Missing credentials",
			cfg:           Config{},
			localPath:     existing,
			errorContains: "sftp: missing env SFTP_HOST / SFTP_USER / SFTP_PASS",
		},
		{
			name: "Missing known_hosts file",
			cfg: Config{
				Host:           testHost,
				User:           testUser,
				Pass:           testPass,
				KnownHostsFile: filepath.Join(t.TempDir(), "known_hosts"),
			},
			localPath:     existing,
			errorContains: "sftp: load known_hosts",
		},
		{
			name: "Non-existent local file",
			cfg: Config{
				Host:                  testHost,
				User:                  testUser,
				Pass:                  testPass,
				InsecureIgnoreHostKey: true,
			},
			localPath:     filepath.Join(t.TempDir(), "missing.csv"),
			errorContains: "sftp: open local file",
		},
		{
			name: "Unreachable host",
			cfg: Config{
				Host:                  testHost,
				Port:                  1,
				User:                  testUser,
				Pass:                  testPass,
				InsecureIgnoreHostKey: true,
			},
			localPath:     existing,
			errorContains: "sftp: dial",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			err := UploadFile(ctx, tc.cfg, tc.localPath, testFile)

			if err == nil {
				t.Fatalf("Expected error, got nil")
			}
			if !strings.Contains(err.Error(), tc.errorContains) {
				t.Errorf("Expected error to contain %q, got %q", tc.errorContains, err.Error())
			}
		})
	}
}

func TestHostKeyCallbackReadsKnownHosts(t *testing.T) {
	file := filepath.Join(t.TempDir(), "known_hosts")
	line := "sftp.test ssh-ed25519 AAAAC3NzaC1lZDI1NTE5AAAAIOMqqnkVzrm0SdG6UOoqKLsabgH5C9okWi0dh2l9GKJl\n"
	if err := os.WriteFile(file, []byte(line), 0o600); err != nil {
		t.Fatal(err)
	}

	cb, err := Config{KnownHostsFile: file}.hostKeyCallback()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if cb == nil {
		t.Error("Expected a host key callback")
	}
}
