package sftpclient

import (
	"context"
	"strings"
	"testing"
)

// Note: We can't easily test the actual SFTP upload functionality in a unit test
// without mocking the SFTP server. The following test verifies the validation
// logic in UploadFile.

func TestUploadFileValidation(t *testing.T) {
	ctx := context.Background()

	const (
		testHost = "test-host"
		testUser = "test-user"
		testPass = "test-pass"
		testFile = "report.csv"
	)

	testCases := []struct {
		name           string
		cfg            Config
		localPath      string
		remoteFileName string
		expectError    bool
		errorContains  string
	}{
		{
			name:           "Missing credentials",
			cfg:            Config{},
			localPath:      testFile,
			remoteFileName: testFile,
			expectError:    true,
			errorContains:  "sftp: missing env SFTP_HOST / SFTP_USER / SFTP_PASS",
		},
		{
			name: "Non-existent local file with valid config",
			cfg: Config{
				Host: testHost,
				User: testUser,
				Pass: testPass,
			},
			localPath:      "non_existent_file.csv",
			remoteFileName: testFile,
			expectError:    true,
			errorContains:  "sftp: dial error", // This is what actually happens first in the real code
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := UploadFile(ctx, tc.cfg, tc.localPath, tc.remoteFileName)

			if tc.expectError {
				if err == nil {
					t.Errorf("Expected error, got nil")
				} else if tc.errorContains != "" && !strings.Contains(err.Error(), tc.errorContains) {
					t.Errorf("Expected error to contain %q, got %q", tc.errorContains, err.Error())
				}
			} else if err != nil {
				t.Errorf("Expected no error, got %v", err)
			}
		})
	}
}
