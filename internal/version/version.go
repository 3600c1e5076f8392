package version

import (
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/goccy/go-json"
)

// Заполняются при сборке через -ldflags "-X .../internal/version.Release=...".
var (
	Release   = "UNKNOWN"
	BuildDate = "UNKNOWN"
	GitHash   = "UNKNOWN"
)

type Info struct {
	Release   string
	BuildDate string
	GitHash   string
	GoVersion string
}

func Get() Info {
	return Info{
		Release:   Release,
		BuildDate: BuildDate,
		GitHash:   GitHash,
		GoVersion: runtime.Version(),
	}
}

func (i Info) String() string {
	return fmt.Sprintf("%s (%s, built %s, %s)", i.Release, i.GitHash, i.BuildDate, i.GoVersion)
}

// Fprint пишет информацию о сборке одной JSON-строкой.
func Fprint(w io.Writer) error {
	return json.NewEncoder(w).Encode(Get())
}

func PrintVersion() {
	if err := Fprint(os.Stdout); err != nil {
		fmt.Printf("error while encode version info: %v\n", err)
	}
}
