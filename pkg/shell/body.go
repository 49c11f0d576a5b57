package shell

import (
	"errors"
	"io/fs"

	"github.com/a-h/templ"
)

// ErrBody is returned when the page markup cannot be read.
var ErrBody = errors.New("failed to read page body")

// BodyFile reads the trusted page markup at name in fsys.
func BodyFile(fsys fs.FS, name string) (templ.Component, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, errors.Join(ErrBody, err)
	}
	return templ.Raw(string(data)), nil
}
