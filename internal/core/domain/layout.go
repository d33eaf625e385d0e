package domain

const (
	// TOMLFileName is the canonical configuration file name.
	TOMLFileName = "scout.toml"

	// YAMLFileName is the alternate YAML configuration file name.
	YAMLFileName = "scout.yaml"

	// SettingsKey is the reserved top-level configuration key holding
	// run options. Every other top-level key names a package.
	SettingsKey = "settings"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// PrivateFilePerm is the default permission for private files (rw-------).
	PrivateFilePerm = 0o600
)
