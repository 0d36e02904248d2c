package seedweaver

import (
	"os"
	"path/filepath"
)

// FileReader is the capability used to read raw fixture text. The default
// implementation hits the filesystem; tests inject in-memory readers.
type FileReader interface {
	ReadFile(filename, baseDir string) (string, error)
}

// FileReaderFunc adapts a plain function to the FileReader interface.
type FileReaderFunc func(filename, baseDir string) (string, error)

// ReadFile implements the FileReader interface.
func (f FileReaderFunc) ReadFile(filename, baseDir string) (string, error) {
	return f(filename, baseDir)
}

// OSFileReader reads fixture files from disk. filename is joined onto
// baseDir; a relative baseDir resolves against the current working directory.
var OSFileReader FileReader = FileReaderFunc(func(filename, baseDir string) (string, error) {
	path := filepath.Join(baseDir, filename)
	data, err := os.ReadFile(path)
	if err != nil {
		return "", NewReadError(path, err)
	}
	return string(data), nil
})
