package credentials

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".augment", "credentials")
	store := NewStoreAt(path)

	want := &Credentials{
		APIToken:     "augment_token_0123456789",
		EnterpriseID: "ent-42",
	}
	require.NoError(t, store.Save(want))

	got, err := store.Load()
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, want.APIToken, got.APIToken)
	assert.Equal(t, want.EnterpriseID, got.EnterpriseID)
}

func TestStorePermissions(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".augment", "credentials")
	store := NewStoreAt(path)

	require.NoError(t, store.Save(&Credentials{APIToken: "augment_token_0123456789"}))

	fileInfo, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), fileInfo.Mode().Perm(), "credentials file should be owner-only")

	dirInfo, err := os.Stat(filepath.Dir(path))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o700), dirInfo.Mode().Perm(), "credentials directory should be owner-only")
}

func TestStoreLoadAbsent(t *testing.T) {
	store := NewStoreAt(filepath.Join(t.TempDir(), "missing"))

	got, err := store.Load()
	require.NoError(t, err, "a missing file is not an error")
	assert.Nil(t, got)
}

func TestStoreLoadCorrupt(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"not json", "augment_token_0123456789"},
		{"wrong shape", `[1, 2, 3]`},
		{"empty token", `{"augment_api_token": "", "enterprise_id": "ent-42"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "credentials")
			require.NoError(t, os.WriteFile(path, []byte(tt.body), 0o600))

			got, err := NewStoreAt(path).Load()
			require.NoError(t, err)
			assert.Nil(t, got, "unusable files are treated as absent")
		})
	}
}

func TestStoreSaveRejectsEmpty(t *testing.T) {
	store := NewStoreAt(filepath.Join(t.TempDir(), "credentials"))

	assert.Error(t, store.Save(nil))
	assert.Error(t, store.Save(&Credentials{EnterpriseID: "ent-42"}))
}

func TestStoreClear(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credentials")
	store := NewStoreAt(path)

	require.NoError(t, store.Save(&Credentials{APIToken: "augment_token_0123456789"}))
	require.NoError(t, store.Clear())

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	// Clearing again is a no-op.
	assert.NoError(t, store.Clear())
}

func TestValidateTokenFormat(t *testing.T) {
	tests := []struct {
		name    string
		token   string
		wantErr bool
	}{
		{"valid token", "augment_token_0123456789", false},
		{"valid with surrounding space", "  augment_token_0123456789  ", false},
		{"too short", "abc123", true},
		{"empty", "", true},
		{"interior space", "augment token 0123456789", true},
		{"interior newline", "augment_token\n0123456789", true},
		{"interior tab", "augment_token\t0123456789", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTokenFormat(tt.token)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDefaultPath(t *testing.T) {
	path := DefaultPath()
	assert.Contains(t, path, ".augment")
	assert.Equal(t, "credentials", filepath.Base(path))
}
