package infra

import (
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/samber/lo"
	"gopkg.in/ini.v1"
)

// getAWSConfigPath returns the shared config file path, honouring AWS_CONFIG_FILE.
func getAWSConfigPath() string {
	if path := os.Getenv("AWS_CONFIG_FILE"); path != "" {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	return filepath.Join(home, ".aws", "config")
}

// parseAWSConfigProfiles maps profile names to account IDs found in the shared
// config file. sso_account_id wins over the account embedded in role_arn.
// Returns nil when the file cannot be read.
func parseAWSConfigProfiles() map[string]string {
	path := getAWSConfigPath()
	if path == "" {
		return nil
	}

	cfg, err := ini.Load(path)
	if err != nil {
		return nil
	}

	profiles := make(map[string]string)

	for _, section := range cfg.Sections() {
		name := profileName(section.Name())
		if name == "" {
			continue
		}

		if account := accountFromSection(section); account != "" {
			profiles[name] = account
		}
	}

	return profiles
}

func profileName(section string) string {
	if strings.EqualFold(section, ini.DefaultSection) {
		return "default"
	}

	if name, ok := strings.CutPrefix(section, "profile "); ok {
		return strings.TrimSpace(name)
	}

	return ""
}

func accountFromSection(section *ini.Section) string {
	if id := section.Key("sso_account_id").String(); id != "" {
		return id
	}

	// arn:aws:iam::<account>:role/<name>
	parts := strings.Split(section.Key("role_arn").String(), ":")
	if len(parts) >= 5 { //nolint:mnd // account ID is the fifth ARN component
		return parts[4]
	}

	return ""
}

// findProfileByAccountID returns the profile configured for accountID.
// AWS_PROFILE, then AWS_DEFAULT_PROFILE, are preferred when they match;
// otherwise the alphabetically first matching profile is returned.
func findProfileByAccountID(accountID string) string {
	profiles := parseAWSConfigProfiles()
	if len(profiles) == 0 {
		return ""
	}

	for _, env := range []string{"AWS_PROFILE", "AWS_DEFAULT_PROFILE"} {
		if p := os.Getenv(env); p != "" && profiles[p] == accountID {
			return p
		}
	}

	matches := lo.Keys(lo.PickByValues(profiles, []string{accountID}))
	if len(matches) == 0 {
		return ""
	}

	slices.Sort(matches)

	return matches[0]
}
