package shellconfig

import (
	"os"
	"os/user"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

func newValidator() *validator.Validate {
	v := validator.New()
	// Registration only fails for an empty tag or a nil func.
	_ = v.RegisterValidation("nospace", noSpace)
	return v
}

// noSpace rejects values containing whitespace.
func noSpace(fl validator.FieldLevel) bool {
	return !strings.ContainsFunc(fl.Field().String(), unicode.IsSpace)
}

func toUserFriendlyPath(absPath string) string {
	usr, err := user.Current()
	if err != nil {
		return absPath
	}
	homeDir := usr.HomeDir
	if homeDir == "" || !strings.HasPrefix(absPath, homeDir) {
		return absPath
	}
	if absPath == homeDir {
		return "~"
	}
	rest := strings.TrimPrefix(absPath, homeDir+string(os.PathSeparator))
	if rest == absPath {
		return absPath
	}
	return filepath.Join("~", rest)
}
