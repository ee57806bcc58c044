package step

// Kind identifies the provisioning action a descriptor performs.
type Kind string

const (
	// KindPackageInstall installs OS packages through the host package
	// manager.
	KindPackageInstall Kind = "package-install"
	// KindEnvVar sets a process-wide environment variable.
	KindEnvVar Kind = "env-var"
	// KindLocaleSet generates a locale and exports its env variables.
	KindLocaleSet Kind = "locale-set"
	// KindGitIdentity sets repository-local user.name and user.email.
	KindGitIdentity Kind = "git-identity"
	// KindGitRemote adds or updates a credential-bearing remote.
	KindGitRemote Kind = "git-remote"
)

// String returns the string representation of the kind.
func (k Kind) String() string {
	return string(k)
}

// Valid reports whether the kind is one of the enumerated values.
func (k Kind) Valid() bool {
	switch k {
	case KindPackageInstall, KindEnvVar, KindLocaleSet, KindGitIdentity, KindGitRemote:
		return true
	}
	return false
}

// RequiresSecret reports whether descriptors of this kind must be
// declared containsSecret. Remote URLs embed a token, so git-remote
// steps are never allowed to opt out of redaction.
func (k Kind) RequiresSecret() bool {
	return k == KindGitRemote
}

// ParseKind converts a string into a Kind.
func ParseKind(s string) (Kind, error) {
	k := Kind(s)
	if !k.Valid() {
		return "", &UnknownKindError{Value: s}
	}
	return k, nil
}
