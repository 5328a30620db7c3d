package catalog

import (
	"embed"
	"io/fs"
	"sync"
)

//go:embed data/*.json
var embedded embed.FS

// Data returns the catalog files bundled with the binary.
func Data() fs.FS {
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		panic(err)
	}
	return sub
}

var loadDefault = sync.OnceValues(func() (*Catalog, error) {
	return Load(Data())
})

// Default returns the catalog built from the bundled data. It is loaded on
// first use exactly once; concurrent callers wait for that load and share
// its result.
func Default() (*Catalog, error) {
	return loadDefault()
}
