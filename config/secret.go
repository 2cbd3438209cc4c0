package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// Secret is a reference to a secret value: "env:NAME", "file:PATH", "raw:VALUE" or "vault:URL,PATH/KEY".
type Secret string

type SecretType string

var Env SecretType = "env"
var Vault SecretType = "vault"
var Raw SecretType = "raw"
var File SecretType = "file"

var errInvalidSource = errors.New("invalid secret source for: ***")

func (s Secret) Load() (string, error) {
	return GetSecret(string(s))
}
func (s Secret) LoadOrBlank() string {
	deref, _ := GetSecret(string(s))
	return deref
}

func NewRawSecret(secret string) Secret {
	return Secret(fmt.Sprintf("raw:%s", secret))
}

func HasTypePrefix(secretRef string) bool {
	switch SecretType(strings.Split(secretRef, ":")[0]) {
	case Env, Vault, Raw, File:
		return true
	}
	return false
}

// ParseSecret splits a reference into its type and argument.  The argument may contain ':'.
func ParseSecret(uri string) (SecretType, string, error) {
	kind, arg, ok := strings.Cut(uri, ":")
	if !ok || !HasTypePrefix(uri) {
		return "", "", errInvalidSource
	}
	return SecretType(kind), arg, nil
}

// GetSecret resolves a secret reference.  Values are trimmed of surrounding whitespace.
func GetSecret(uri string) (string, error) {
	kind, arg, err := ParseSecret(uri)
	if err != nil {
		return "", err
	}
	switch kind {
	case Env:
		return strings.TrimSpace(os.Getenv(arg)), nil
	case Raw:
		return arg, nil
	case File:
		path := arg
		if len(path) > 1 && path[0] == '~' {
			path = strings.Replace(path, "~", os.Getenv("HOME"), 1)
		}
		result, err := os.ReadFile(path)
		if err != nil {
			return "", err
		}
		return strings.TrimSpace(string(result)), nil
	case Vault:
		return getVaultSecret(arg)
	}
	return "", errInvalidSource
}
