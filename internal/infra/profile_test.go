package infra

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAWSConfigProfiles(t *testing.T) {
	// Cannot use t.Parallel() because subtests use t.Setenv

	tests := []struct {
		name   string
		config string
		want   map[string]string
	}{
		{
			name: "sso_account_id",
			config: `
[default]
sso_account_id = 111111111111

[profile production]
sso_account_id = 222222222222
`,
			want: map[string]string{"default": "111111111111", "production": "222222222222"},
		},
		{
			name: "role_arn",
			config: `
[profile assume-role]
role_arn = arn:aws:iam::444444444444:role/MyRole
source_profile = default
`,
			want: map[string]string{"assume-role": "444444444444"},
		},
		{
			name: "sso_account_id takes precedence over role_arn",
			config: `
[profile mixed]
sso_account_id = 666666666666
role_arn = arn:aws:iam::777777777777:role/ShouldBeIgnored
`,
			want: map[string]string{"mixed": "666666666666"},
		},
		{
			name: "profiles without account info and non-profile sections are skipped",
			config: `
[profile with-account]
sso_account_id = 888888888888

[profile without-account]
region = ap-northeast-1

[sso-session corp]
sso_account_id = 000000000000
`,
			want: map[string]string{"with-account": "888888888888"},
		},
		{
			name: "upper-case DEFAULT section",
			config: `
[DEFAULT]
sso_account_id = 999999999999
`,
			want: map[string]string{"default": "999999999999"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("AWS_CONFIG_FILE", createTempConfig(t, tt.config))
			assert.Equal(t, tt.want, parseAWSConfigProfiles())
		})
	}

	t.Run("missing config file", func(t *testing.T) {
		t.Setenv("AWS_CONFIG_FILE", "/nonexistent/path/config")
		assert.Nil(t, parseAWSConfigProfiles())
	})
}

func TestFindProfileByAccountID(t *testing.T) {
	// Cannot use t.Parallel() because subtests use t.Setenv

	const shared = `
[profile zebra]
sso_account_id = 123456789012

[profile alpha]
sso_account_id = 123456789012

[profile beta]
sso_account_id = 123456789012

[profile other]
sso_account_id = 111111111111
`

	tests := []struct {
		name           string
		awsProfile     string
		defaultProfile string
		accountID      string
		want           string
	}{
		{name: "alphabetically first match", accountID: "123456789012", want: "alpha"},
		{name: "no match", accountID: "999999999999", want: ""},
		{name: "AWS_PROFILE preferred", awsProfile: "beta", accountID: "123456789012", want: "beta"},
		{name: "AWS_PROFILE ignored on mismatch", awsProfile: "other", accountID: "123456789012", want: "alpha"},
		{name: "AWS_DEFAULT_PROFILE preferred", defaultProfile: "zebra", accountID: "123456789012", want: "zebra"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("AWS_CONFIG_FILE", createTempConfig(t, shared))
			t.Setenv("AWS_PROFILE", tt.awsProfile)
			t.Setenv("AWS_DEFAULT_PROFILE", tt.defaultProfile)

			for range 5 {
				assert.Equal(t, tt.want, findProfileByAccountID(tt.accountID))
			}
		})
	}

	t.Run("missing config file", func(t *testing.T) {
		t.Setenv("AWS_CONFIG_FILE", "/nonexistent/path/config")
		assert.Empty(t, findProfileByAccountID("123456789012"))
	})
}

func TestGetAWSConfigPath(t *testing.T) {
	// Cannot use t.Parallel() because subtests use t.Setenv

	t.Run("AWS_CONFIG_FILE", func(t *testing.T) {
		t.Setenv("AWS_CONFIG_FILE", "/custom/path/config")
		assert.Equal(t, "/custom/path/config", getAWSConfigPath())
	})

	t.Run("default path", func(t *testing.T) {
		t.Setenv("AWS_CONFIG_FILE", "")

		home, err := os.UserHomeDir()
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(home, ".aws", "config"), getAWSConfigPath())
	})
}

func TestOptions_LoadOptions(t *testing.T) {
	t.Parallel()

	assert.Empty(t, Options{}.loadOptions())
	assert.Len(t, Options{Region: "us-east-1"}.loadOptions(), 1)
	assert.Len(t, Options{Region: "us-east-1", Profile: "prod"}.loadOptions(), 2)
}

func createTempConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}
